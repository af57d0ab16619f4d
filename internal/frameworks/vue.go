package frameworks

import (
	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/patch"
	"github.com/solwire/cli/internal/render"
)

// Vue wires solana-wallets-vue into a Vue project. Vue 3 entries get the
// plugin chained onto createApp; Vue 2 entries get a Vue.use call after the
// import block. With the polyfills feature on, vite configs also get the
// node-polyfills plugin registered.
type Vue struct{}

func (Vue) Name() string { return "vue" }

func (Vue) Context(in *Input) render.Context {
	return baseContext(in, "    ")
}

func (v Vue) Generate(in *Input) ([]string, error) {
	return generateSet(in, v)
}

var (
	vueEntryPatterns   = []string{"src/main.{ts,js}", "main.{ts,js}"}
	viteConfigPatterns = []string{"vite.config.{ts,js,mjs}"}
)

func (v Vue) Patch(in *Input) ([]*patch.FileResult, error) {
	p := patch.NewPatcher(in.Log)
	var results []*patch.FileResult

	entry, ok := detect.FindFirst(in.Project.Root, vueEntryPatterns...)
	if !ok {
		in.Log.Warn("no entry file found, plugin not wired",
			"searched", "src/main.*",
			"fix", "register SolanaWallets with your app instance",
		)
	} else {
		fr, err := p.PatchFile(entry, vueEntryOps(in.Project))
		if err != nil {
			return results, err
		}
		results = append(results, fr)
	}

	if in.Config.Features.Polyfills {
		cfgPath, ok := detect.FindFirst(in.Project.Root, viteConfigPatterns...)
		if !ok {
			in.Log.Warn("no vite.config found, node polyfills not registered",
				"fix", "add nodePolyfills() to the plugins array",
			)
			return results, nil
		}
		fr, err := p.PatchFile(cfgPath, []patch.Op{
			patch.InsertImport("import { nodePolyfills } from 'vite-plugin-node-polyfills';"),
			patch.InjectPluginEntry("plugins", "nodePolyfills()", "plugins: [nodePolyfills()],"),
		})
		if err != nil {
			return results, err
		}
		results = append(results, fr)
	}
	return results, nil
}

// vueEntryOps builds the entry-file ops for the detected Vue major version.
// Unknown versions are treated as Vue 3, the createApp era.
func vueEntryOps(info *detect.ProjectInfo) []patch.Op {
	ops := []patch.Op{
		patch.InsertImport("import SolanaWallets from 'solana-wallets-vue';"),
		patch.InsertImport("import { walletOptions } from './walletOptions';"),
	}
	if detect.MajorVersion(info.DependencySpec("vue")) == 2 {
		return append(ops, patch.AppendAfterImports(
			"Vue.use(SolanaWallets, walletOptions);", "Vue.use(SolanaWallets"))
	}
	return append(ops, patch.ChainAfterCall(
		"createApp", ".use(SolanaWallets, walletOptions)", ".use(SolanaWallets"))
}
