// Package deps owns the npm package catalog per integration and drives the
// host package manager to install it.
package deps

import (
	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/detect"
)

// Package is one npm dependency to install.
type Package struct {
	Name    string
	Version string

	// Dev marks a devDependency (build plugins, polyfills).
	Dev bool
}

// Spec renders the package-manager argument, name@version.
func (p Package) Spec() string {
	if p.Version == "" {
		return p.Name
	}
	return p.Name + "@" + p.Version
}

// Pinned versions for everything the templates import. One place to bump.
var (
	web3 = Package{Name: "@solana/web3.js", Version: "^1.95.3"}

	adapterBase    = Package{Name: "@solana/wallet-adapter-base", Version: "^0.9.23"}
	adapterReact   = Package{Name: "@solana/wallet-adapter-react", Version: "^0.15.35"}
	adapterReactUI = Package{Name: "@solana/wallet-adapter-react-ui", Version: "^0.9.35"}
	adapterWallets = Package{Name: "@solana/wallet-adapter-wallets", Version: "^0.19.32"}

	appkit       = Package{Name: "@reown/appkit", Version: "^1.6.8"}
	appkitSolana = Package{Name: "@reown/appkit-adapter-solana", Version: "^1.6.8"}

	walletsVue = Package{Name: "solana-wallets-vue", Version: "^0.6.1"}

	nodePolyfills = Package{Name: "vite-plugin-node-polyfills", Version: "^0.22.0", Dev: true}
)

// Packages returns the install set for a detected project and its chosen
// variant and features.
func Packages(fw detect.Framework, variant config.Variant, feats config.Features) []Package {
	var out []Package

	switch fw {
	case detect.FrameworkReact, detect.FrameworkNext:
		if variant == config.VariantAppKit {
			out = append(out, web3, appkit, appkitSolana)
		} else {
			out = append(out, web3, adapterBase, adapterReact, adapterReactUI, adapterWallets)
		}
	case detect.FrameworkVue:
		out = append(out, web3, walletsVue, adapterWallets)
	}

	// Vite serves react SPAs and vue; Next.js bundles its own polyfills.
	if feats.Polyfills && fw != detect.FrameworkNext {
		out = append(out, nodePolyfills)
	}
	return out
}
