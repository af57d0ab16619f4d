package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/exec"
	"github.com/solwire/cli/internal/output"
	"github.com/solwire/cli/internal/testutil"
)

// stubRunner records package-manager invocations without running anything.
type stubRunner struct {
	calls []stubCall
	exit  int
}

type stubCall struct {
	name string
	args []string
	dir  string
}

func (s *stubRunner) Run(_ context.Context, name string, args []string, opts exec.RunOpts) (exec.Result, error) {
	s.calls = append(s.calls, stubCall{name: name, args: args, dir: opts.Dir})
	return exec.Result{ExitCode: s.exit}, nil
}

const reactMain = `import { StrictMode } from 'react'
import { createRoot } from 'react-dom/client'
import App from './App.jsx'

createRoot(document.getElementById('root')).render(
  <StrictMode>
    <App />
  </StrictMode>,
)
`

// reactProject lays out a minimal Vite React project and returns its root.
func reactProject(t *testing.T) string {
	t.Helper()
	dir, cleanup := testutil.TempDir(t)
	t.Cleanup(cleanup)
	testutil.WriteFile(t, dir, "package.json",
		`{"name":"demo","dependencies":{"react":"^18.2.0","react-dom":"^18.2.0"}}`)
	testutil.WriteFile(t, dir, "src/main.jsx", reactMain)
	return dir
}

func TestOptionsValidate(t *testing.T) {
	assert.Error(t, Options{}.Validate())
	assert.NoError(t, Options{Dir: "."}.Validate())
}

// TestRun_FullSequence verifies a complete run over a real project tree:
// detection, install via the stub runner, template generation, entry-file
// patching, and the persisted settings and env files.
func TestRun_FullSequence(t *testing.T) {
	dir := reactProject(t)
	runner := &stubRunner{}
	ig := New(runner, output.NewRecorder())

	result, err := ig.Run(context.Background(), Options{Dir: dir})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "react", result.Framework)
	assert.Equal(t, config.VariantAdapter, result.Variant)
	assert.False(t, result.HasWarnings())

	// One npm invocation for the runtime packages, none for dev.
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "npm", runner.calls[0].name)
	assert.Equal(t, "install", runner.calls[0].args[0])
	assert.Equal(t, dir, runner.calls[0].dir)
	assert.NotEmpty(t, result.Installed)

	assert.Contains(t, result.Generated, "components/WalletContextProvider.jsx")
	require.Len(t, result.Patched, 1)
	assert.Equal(t, 2, result.AppliedPatches())

	main := testutil.ReadFile(t, filepath.Join(dir, "src", "main.jsx"))
	assert.Contains(t, main, "<WalletContextProvider><StrictMode>")

	saved := testutil.ReadFile(t, filepath.Join(dir, config.FileName))
	assert.Contains(t, saved, `"network": "devnet"`)

	assert.Equal(t, filepath.Join(dir, ".env"), result.EnvPath)
	env := testutil.ReadFile(t, result.EnvPath)
	assert.Equal(t, "VITE_SOLANA_RPC_URL=https://api.devnet.solana.com\nVITE_SOLANA_NETWORK=devnet\n", env)
}

// TestRun_Rerun verifies that running twice is a sequence of no-ops: the
// second run rewrites templates but patches nothing and the entry file stays
// byte-identical.
func TestRun_Rerun(t *testing.T) {
	dir := reactProject(t)
	ig := New(&stubRunner{}, output.NewRecorder())

	_, err := ig.Run(context.Background(), Options{Dir: dir})
	require.NoError(t, err)
	once := testutil.ReadFile(t, filepath.Join(dir, "src", "main.jsx"))

	result, err := ig.Run(context.Background(), Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 0, result.AppliedPatches())
	assert.Equal(t, once, testutil.ReadFile(t, filepath.Join(dir, "src", "main.jsx")))
}

// TestRun_SkipInstall verifies the package manager is never invoked with
// SkipInstall set.
func TestRun_SkipInstall(t *testing.T) {
	dir := reactProject(t)
	runner := &stubRunner{}
	ig := New(runner, output.NewRecorder())

	result, err := ig.Run(context.Background(), Options{Dir: dir, SkipInstall: true})
	require.NoError(t, err)
	assert.Empty(t, runner.calls)
	assert.Empty(t, result.Installed)
}

// TestRun_DetectFailure_Fatal verifies a missing project directory returns a
// fatal error with a nil Result; no downstream phase runs.
func TestRun_DetectFailure_Fatal(t *testing.T) {
	runner := &stubRunner{}
	ig := New(runner, output.NewRecorder())

	result, err := ig.Run(context.Background(), Options{Dir: "/nonexistent/project/path"})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Empty(t, runner.calls)
}

// TestRun_InstallFailure_Fatal verifies a non-zero package-manager exit
// aborts the run before any file is generated or patched.
func TestRun_InstallFailure_Fatal(t *testing.T) {
	dir := reactProject(t)
	ig := New(&stubRunner{exit: 1}, output.NewRecorder())

	result, err := ig.Run(context.Background(), Options{Dir: dir})
	assert.Error(t, err)
	assert.Nil(t, result)

	original := testutil.ReadFile(t, filepath.Join(dir, "src", "main.jsx"))
	assert.Equal(t, reactMain, original)
	_, statErr := os.Stat(filepath.Join(dir, config.FileName))
	assert.True(t, os.IsNotExist(statErr))
}

// TestRun_UnsupportedVariant_Fatal verifies that a variant with no template
// set for the framework aborts in the generate phase.
func TestRun_UnsupportedVariant_Fatal(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	t.Cleanup(cleanup)
	testutil.WriteFile(t, dir, "package.json", `{"name":"demo","dependencies":{"vue":"^3.4.0"}}`)
	testutil.WriteFile(t, dir, "src/main.ts", "import { createApp } from 'vue'\nimport App from './App.vue'\n\ncreateApp(App).mount('#app')\n")

	cfg := config.Default()
	cfg.Variant = config.VariantAppKit
	cfg.AppKit.ProjectID = "pid"

	ig := New(&stubRunner{}, output.NewRecorder())
	result, err := ig.Run(context.Background(), Options{Dir: dir, Config: cfg})
	assert.Error(t, err)
	assert.Nil(t, result)
}

// TestRun_PatchMiss_Warning verifies that a file whose anchor never matches
// is reported as a warning, left byte-identical, and does not abort the run.
func TestRun_PatchMiss_Warning(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	t.Cleanup(cleanup)
	testutil.WriteFile(t, dir, "package.json",
		`{"name":"demo","dependencies":{"react":"^18.2.0"}}`)
	noRender := "import App from './App.jsx'\n\nconsole.log(App)\n"
	testutil.WriteFile(t, dir, "src/main.jsx", noRender)

	ig := New(&stubRunner{}, output.NewRecorder())
	result, err := ig.Run(context.Background(), Options{Dir: dir})
	require.NoError(t, err)

	require.True(t, result.HasWarnings())
	assert.Contains(t, result.Warnings[0].String(), "could not apply")
	assert.Equal(t, noRender, testutil.ReadFile(t, filepath.Join(dir, "src", "main.jsx")))
}

// TestRun_ContextCanceled_Fatal verifies cancellation surfaces after the
// install step.
func TestRun_ContextCanceled_Fatal(t *testing.T) {
	dir := reactProject(t)
	ig := New(&stubRunner{}, output.NewRecorder())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := ig.Run(ctx, Options{Dir: dir})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_PackageManagerOverride verifies the override reaches the installer.
func TestRun_PackageManagerOverride(t *testing.T) {
	dir := reactProject(t)
	runner := &stubRunner{}
	ig := New(runner, output.NewRecorder())

	_, err := ig.Run(context.Background(), Options{Dir: dir, PackageManager: detect.PMPnpm})
	require.NoError(t, err)
	require.NotEmpty(t, runner.calls)
	assert.Equal(t, "pnpm", runner.calls[0].name)
	assert.Equal(t, "add", runner.calls[0].args[0])
}
