package frameworks

import (
	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/patch"
	"github.com/solwire/cli/internal/render"
)

// Next wires the provider into a Next.js app. App Router projects get the
// root layout's <body> children wrapped; Pages Router projects get the
// returned <Component {...pageProps} /> wrapped in pages/_app. Adapter
// installs also merge the wallet packages into transpilePackages in
// next.config so their untranspiled sources pass the Next build.
type Next struct{}

func (Next) Name() string { return "nextjs" }

func (Next) Context(in *Input) render.Context {
	return baseContext(in, "      ")
}

func (n Next) Generate(in *Input) ([]string, error) {
	return generateSet(in, n)
}

var (
	layoutPatterns = []string{
		"app/layout.{tsx,jsx,ts,js}",
		"src/app/layout.{tsx,jsx,ts,js}",
	}
	pagesAppPatterns = []string{
		"pages/_app.{tsx,jsx,ts,js}",
		"src/pages/_app.{tsx,jsx,ts,js}",
	}
	nextConfigPatterns = []string{"next.config.{js,mjs,ts}"}
)

// transpiled lists the wallet packages Next must transpile for the adapter
// variant.
var transpiled = []string{
	"@solana/wallet-adapter-base",
	"@solana/wallet-adapter-react",
	"@solana/wallet-adapter-react-ui",
	"@solana/wallet-adapter-wallets",
}

func (n Next) Patch(in *Input) ([]*patch.FileResult, error) {
	p := patch.NewPatcher(in.Log)
	provider := providerName(in.Config.Variant)
	// Both layout and _app files sit one directory below wherever the
	// components land, with or without a src directory.
	importOp := patch.InsertImport(
		"import { " + provider + " } from '../components/" + provider + "';")

	var results []*patch.FileResult

	if in.Project.AppRouter {
		layout, ok := detect.FindFirst(in.Project.Root, layoutPatterns...)
		if !ok {
			in.Log.Warn("no app/layout file found, provider not wired",
				"fix", "wrap {children} inside <body> with <"+provider+">",
			)
		} else {
			fr, err := p.PatchFile(layout, []patch.Op{
				importOp,
				patch.WrapChildren("body", "{children}",
					"<"+provider+">", "</"+provider+">", "<"+provider+">"),
			})
			if err != nil {
				return results, err
			}
			results = append(results, fr)
		}
	} else {
		app, ok := detect.FindFirst(in.Project.Root, pagesAppPatterns...)
		if !ok {
			in.Log.Warn("no pages/_app file found, provider not wired",
				"fix", "wrap <Component {...pageProps} /> with <"+provider+">",
			)
		} else {
			fr, err := p.PatchFile(app, []patch.Op{
				importOp,
				patch.WrapReturned("<Component {...pageProps} />",
					"<"+provider+">", "</"+provider+">", "<"+provider+">"),
			})
			if err != nil {
				return results, err
			}
			results = append(results, fr)
		}
	}

	if in.Config.Variant == config.VariantAdapter {
		cfgPath, ok := detect.FindFirst(in.Project.Root, nextConfigPatterns...)
		if !ok {
			in.Log.Warn("no next.config found, transpilePackages not set",
				"fix", "add transpilePackages for the @solana/wallet-adapter packages",
			)
			return results, nil
		}
		fr, err := p.PatchFile(cfgPath, transpileOps())
		if err != nil {
			return results, err
		}
		results = append(results, fr)
	}
	return results, nil
}

// transpileOps merges each wallet package into transpilePackages. The first
// op injects the field when it is absent; the rest then merge into it.
func transpileOps() []patch.Op {
	ops := make([]patch.Op, 0, len(transpiled))
	for _, pkg := range transpiled {
		entry := "'" + pkg + "'"
		ops = append(ops, patch.MergeConfigList(
			"transpilePackages", entry, "transpilePackages: ["+entry+"],"))
	}
	return ops
}
