package frameworks

import (
	"strings"

	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/envfile"
	"github.com/solwire/cli/internal/render"
)

// adapterNames maps config wallet names to the adapter constructors exported
// by @solana/wallet-adapter-wallets.
var adapterNames = map[string]string{
	"phantom":  "PhantomWalletAdapter",
	"solflare": "SolflareWalletAdapter",
	"coinbase": "CoinbaseWalletAdapter",
	"ledger":   "LedgerWalletAdapter",
}

// baseContext builds the placeholder data shared by every integration.
// adapterIndent is the continuation indent of the wallet list in the set's
// templates, which differs between the React and Vue trees.
func baseContext(in *Input, adapterIndent string) render.Context {
	info, cfg := in.Project, in.Config

	compExt, scriptExt := "jsx", "js"
	if info.TypeScript {
		compExt, scriptExt = "tsx", "ts"
	}

	ctx := render.Context{
		"project": map[string]interface{}{
			"name":       info.Name,
			"typescript": info.TypeScript,
		},
		"ext": map[string]interface{}{
			"component": compExt,
			"script":    scriptExt,
		},
		"solana": map[string]interface{}{
			"network":      cfg.Network,
			"rpcUrl":       rpcURL(cfg.Network),
			"endpointExpr": endpointExpr(info, cfg),
		},
		"wallets": map[string]interface{}{
			"imports":  walletImports(cfg.Wallets),
			"adapters": walletAdapters(cfg.Wallets, adapterIndent),
		},
	}

	if cfg.Variant == config.VariantAppKit {
		ctx["appkit"] = map[string]interface{}{
			"projectId": cfg.AppKit.ProjectID,
		}
	}
	return ctx
}

func rpcURL(network string) string {
	url, _ := envfile.RPCURL(network)
	return url
}

// endpointExpr is the JS expression the generated code evaluates to find its
// RPC endpoint: the framework's public env var with the configured network's
// URL as the literal fallback, so the code works before any env file exists.
func endpointExpr(info *detect.ProjectInfo, cfg *config.Config) string {
	return envReadExpr(info) + envfile.KeySuffix + " ?? '" + rpcURL(cfg.Network) + "'"
}

// EnvPrefix returns the env var prefix the project's bundler exposes to
// client code.
func EnvPrefix(info *detect.ProjectInfo) string {
	switch {
	case info.Framework == detect.FrameworkNext:
		return "NEXT_PUBLIC_"
	case info.Framework == detect.FrameworkVue && info.HasDependency("@vue/cli-service"):
		return "VUE_APP_"
	default:
		return "VITE_"
	}
}

// envReadExpr is how client code reads such a variable: Vite injects them on
// import.meta.env, the webpack-based stacks on process.env.
func envReadExpr(info *detect.ProjectInfo) string {
	prefix := EnvPrefix(info)
	if prefix == "VITE_" {
		return "import.meta.env." + prefix
	}
	return "process.env." + prefix
}

// EnvFileName returns the env file the framework's tooling loads by default.
func EnvFileName(info *detect.ProjectInfo) string {
	if info.Framework == detect.FrameworkNext {
		return ".env.local"
	}
	return ".env"
}

// EnvEntries builds the env file entries for the configured network. Existing
// values are never overwritten by the writer, so these are safe defaults.
func EnvEntries(info *detect.ProjectInfo, cfg *config.Config) []envfile.Entry {
	prefix := EnvPrefix(info)
	entries := []envfile.Entry{
		{Key: prefix + envfile.KeySuffix, Value: rpcURL(cfg.Network)},
		{Key: prefix + "SOLANA_NETWORK", Value: cfg.Network},
	}
	if cfg.Variant == config.VariantAppKit {
		entries = append(entries, envfile.Entry{
			Key:   prefix + "APPKIT_PROJECT_ID",
			Value: cfg.AppKit.ProjectID,
		})
	}
	return entries
}

// walletImports renders the import list for the selected wallets, one name
// per line at the templates' two-space member indent.
func walletImports(wallets []string) string {
	return strings.Join(selectedAdapters(wallets), ",\n  ") + ","
}

// walletAdapters renders the constructor list for the selected wallets.
func walletAdapters(wallets []string, indent string) string {
	names := selectedAdapters(wallets)
	ctors := make([]string, 0, len(names))
	for _, n := range names {
		ctors = append(ctors, "new "+n+"()")
	}
	return strings.Join(ctors, ",\n"+indent) + ","
}

// selectedAdapters resolves wallet names in configured order, skipping any
// the catalog does not know. An empty selection falls back to phantom so the
// rendered list is never empty.
func selectedAdapters(wallets []string) []string {
	var names []string
	for _, w := range wallets {
		if n, ok := adapterNames[w]; ok {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		names = append(names, adapterNames["phantom"])
	}
	return names
}
