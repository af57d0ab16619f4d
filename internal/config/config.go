// Package config provides loading, saving, and diffing of the per-project
// solwire.json settings file.
package config

import (
	"strings"

	"github.com/solwire/cli/internal/errors"
)

// FileName is the settings file kept at the project root.
const FileName = "solwire.json"

// Networks the tool can point a project at, in display order.
var Networks = []string{"mainnet-beta", "devnet", "testnet", "localnet"}

// KnownWallets are the adapter wallets the templates can pre-register.
var KnownWallets = []string{"phantom", "solflare", "coinbase", "ledger"}

// Variant selects the integration flavor.
type Variant string

const (
	// VariantAdapter is the classic wallet-adapter provider stack.
	VariantAdapter Variant = "wallet-adapter"

	// VariantAppKit is the hosted AppKit widget; it needs a project ID.
	VariantAppKit Variant = "appkit"
)

// AppKitConfig carries AppKit-only settings.
type AppKitConfig struct {
	// ProjectID is the AppKit cloud project identifier.
	ProjectID string `json:"projectId,omitempty"`
}

// Features toggles optional template subtrees and patches.
type Features struct {
	// Airdrop generates the devnet airdrop hook.
	Airdrop bool `json:"airdrop"`

	// Polyfills registers the node-polyfills plugin in vite configs.
	Polyfills bool `json:"polyfills"`
}

// Config is the persisted project configuration.
type Config struct {
	Network  string       `json:"network"`
	Wallets  []string     `json:"wallets"`
	Variant  Variant      `json:"variant"`
	AppKit   AppKitConfig `json:"appkit,omitempty"`
	Features Features     `json:"features"`
}

// Default returns the configuration used when no solwire.json exists.
func Default() *Config {
	return &Config{
		Network: "devnet",
		Wallets: []string{"phantom", "solflare"},
		Variant: VariantAdapter,
	}
}

// Clone returns a copy that shares nothing with the receiver, so update can
// mutate a proposal while keeping the loaded config for the diff.
func (c *Config) Clone() *Config {
	out := *c
	out.Wallets = append([]string(nil), c.Wallets...)
	return &out
}

// WithDefaults fills zero-valued fields from Default without touching
// anything the user set.
func (c *Config) WithDefaults() *Config {
	d := Default()
	if c.Network == "" {
		c.Network = d.Network
	}
	if len(c.Wallets) == 0 {
		c.Wallets = append([]string(nil), d.Wallets...)
	}
	if c.Variant == "" {
		c.Variant = d.Variant
	}
	return c
}

// Validate checks the fields against the known sets. Call after WithDefaults.
func (c *Config) Validate() error {
	if !contains(Networks, c.Network) {
		return errors.NewValidationError(
			"unknown network: "+c.Network,
			FileName,
			"network",
			"Use one of: "+strings.Join(Networks, ", "),
		)
	}
	if c.Variant != VariantAdapter && c.Variant != VariantAppKit {
		return errors.NewValidationError(
			"unknown variant: "+string(c.Variant),
			FileName,
			"variant",
			"Use one of: wallet-adapter, appkit",
		)
	}
	for _, w := range c.Wallets {
		if !contains(KnownWallets, w) {
			return errors.NewValidationError(
				"unknown wallet: "+w,
				FileName,
				"wallets",
				"Use any of: "+strings.Join(KnownWallets, ", "),
			)
		}
	}
	if c.Variant == VariantAppKit && c.AppKit.ProjectID == "" {
		return errors.NewValidationError(
			"the appkit variant needs a project ID",
			FileName,
			"appkit.projectId",
			"Set appkit.projectId, or pass --project-id",
		)
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
