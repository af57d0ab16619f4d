package frameworks

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/output"
	"github.com/solwire/cli/internal/testutil"
)

const appLayout = `import './globals.css';

export const metadata = { title: 'demo' };

export default function RootLayout({ children }) {
  return (
    <html lang="en">
      <body>{children}</body>
    </html>
  );
}
`

const pagesApp = `import '../styles/globals.css';

export default function App({ Component, pageProps }) {
  return <Component {...pageProps} />;
}
`

const nextConfig = `/** @type {import('next').NextConfig} */
const nextConfig = {
  reactStrictMode: true,
};

module.exports = nextConfig;
`

func TestNextAppRouterPatch(t *testing.T) {
	in, _ := projectInput(t, detect.FrameworkNext, map[string]string{
		"app/layout.tsx": appLayout,
		"next.config.js": nextConfig,
	}, func(p *detect.ProjectInfo, _ *config.Config) {
		p.AppRouter = true
		p.TypeScript = true
	})

	results, err := Next{}.Patch(in)
	require.NoError(t, err)
	require.Len(t, results, 2)

	layout := testutil.ReadFile(t, filepath.Join(in.Project.Root, "app", "layout.tsx"))
	assert.Contains(t, layout, "import { WalletContextProvider } from '../components/WalletContextProvider';")
	assert.Contains(t, layout, "<body><WalletContextProvider>{children}</WalletContextProvider></body>")

	cfg := testutil.ReadFile(t, filepath.Join(in.Project.Root, "next.config.js"))
	assert.Contains(t, cfg,
		"transpilePackages: ['@solana/wallet-adapter-base', '@solana/wallet-adapter-react', "+
			"'@solana/wallet-adapter-react-ui', '@solana/wallet-adapter-wallets'],")
}

func TestNextAppRouterPatchIdempotent(t *testing.T) {
	in, _ := projectInput(t, detect.FrameworkNext, map[string]string{
		"app/layout.tsx": appLayout,
		"next.config.js": nextConfig,
	}, func(p *detect.ProjectInfo, _ *config.Config) {
		p.AppRouter = true
	})

	_, err := Next{}.Patch(in)
	require.NoError(t, err)
	layoutOnce := testutil.ReadFile(t, filepath.Join(in.Project.Root, "app", "layout.tsx"))
	cfgOnce := testutil.ReadFile(t, filepath.Join(in.Project.Root, "next.config.js"))

	results, err := Next{}.Patch(in)
	require.NoError(t, err)
	for _, fr := range results {
		assert.False(t, fr.Wrote)
	}
	assert.Equal(t, layoutOnce, testutil.ReadFile(t, filepath.Join(in.Project.Root, "app", "layout.tsx")))
	assert.Equal(t, cfgOnce, testutil.ReadFile(t, filepath.Join(in.Project.Root, "next.config.js")))
}

func TestNextMergesExistingTranspilePackages(t *testing.T) {
	in, _ := projectInput(t, detect.FrameworkNext, map[string]string{
		"app/layout.tsx": appLayout,
		"next.config.js": "const nextConfig = {\n  transpilePackages: ['@solana/wallet-adapter-base'],\n};\n\nmodule.exports = nextConfig;\n",
	}, func(p *detect.ProjectInfo, _ *config.Config) {
		p.AppRouter = true
	})

	_, err := Next{}.Patch(in)
	require.NoError(t, err)

	cfg := testutil.ReadFile(t, filepath.Join(in.Project.Root, "next.config.js"))
	assert.Contains(t, cfg,
		"transpilePackages: ['@solana/wallet-adapter-base', '@solana/wallet-adapter-react', "+
			"'@solana/wallet-adapter-react-ui', '@solana/wallet-adapter-wallets'],")
}

func TestNextPagesRouterPatch(t *testing.T) {
	in, _ := projectInput(t, detect.FrameworkNext, map[string]string{
		"pages/_app.jsx": pagesApp,
		"next.config.js": nextConfig,
	}, nil)

	results, err := Next{}.Patch(in)
	require.NoError(t, err)
	require.Len(t, results, 2)

	app := testutil.ReadFile(t, filepath.Join(in.Project.Root, "pages", "_app.jsx"))
	assert.Contains(t, app, "import { WalletContextProvider } from '../components/WalletContextProvider';")
	assert.Contains(t, app, "return <WalletContextProvider><Component {...pageProps} /></WalletContextProvider>;")
}

func TestNextAppKitSkipsTranspilePatch(t *testing.T) {
	in, _ := projectInput(t, detect.FrameworkNext, map[string]string{
		"app/layout.tsx": appLayout,
		"next.config.js": nextConfig,
	}, func(p *detect.ProjectInfo, c *config.Config) {
		p.AppRouter = true
		c.Variant = config.VariantAppKit
		c.AppKit.ProjectID = "pid"
	})

	results, err := Next{}.Patch(in)
	require.NoError(t, err)
	require.Len(t, results, 1)

	layout := testutil.ReadFile(t, filepath.Join(in.Project.Root, "app", "layout.tsx"))
	assert.Contains(t, layout, "<body><AppKitProvider>{children}</AppKitProvider></body>")

	cfg := testutil.ReadFile(t, filepath.Join(in.Project.Root, "next.config.js"))
	assert.Equal(t, nextConfig, cfg)
}

func TestNextMissingLayoutWarns(t *testing.T) {
	in, rec := projectInput(t, detect.FrameworkNext, map[string]string{
		"next.config.js": nextConfig,
	}, func(p *detect.ProjectInfo, _ *config.Config) {
		p.AppRouter = true
	})

	results, err := Next{}.Patch(in)
	require.NoError(t, err)
	require.Len(t, results, 1) // only next.config was patched

	warns := rec.Messages(output.LevelWarn)
	require.Len(t, warns, 1)
	assert.Equal(t, "no app/layout file found, provider not wired", warns[0])
}

func TestNextSrcDirLayout(t *testing.T) {
	in, _ := projectInput(t, detect.FrameworkNext, map[string]string{
		"src/app/layout.jsx": appLayout,
		"next.config.mjs":    "export default {\n  reactStrictMode: true,\n};\n",
	}, func(p *detect.ProjectInfo, _ *config.Config) {
		p.AppRouter = true
	})

	_, err := Next{}.Patch(in)
	require.NoError(t, err)

	layout := testutil.ReadFile(t, filepath.Join(in.Project.Root, "src", "app", "layout.jsx"))
	assert.Contains(t, layout, "<body><WalletContextProvider>{children}</WalletContextProvider></body>")

	cfg := testutil.ReadFile(t, filepath.Join(in.Project.Root, "next.config.mjs"))
	assert.Contains(t, cfg, "transpilePackages: ['@solana/wallet-adapter-base'")
}
