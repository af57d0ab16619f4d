// Package templates holds the embedded wallet-integration template trees and
// renders them into a project. One set exists per framework and variant;
// each set has a base subtree that always renders and feature subtrees that
// render when the matching feature flag is on.
package templates

import (
	"github.com/solwire/cli/internal/config"
	"github.com/solwire/cli/internal/detect"
	"github.com/solwire/cli/internal/errors"
)

// Set identifies one embedded template tree.
type Set struct {
	// Framework and Variant key the registry.
	Framework detect.Framework
	Variant   config.Variant

	// Root is the subtree path inside the embedded filesystem.
	Root string

	// Description is shown by the detect command.
	Description string
}

var sets = map[detect.Framework]map[config.Variant]Set{
	detect.FrameworkReact: {
		config.VariantAdapter: {
			Framework:   detect.FrameworkReact,
			Variant:     config.VariantAdapter,
			Root:        "react/adapter",
			Description: "wallet-adapter provider, modal, and hooks for a React SPA",
		},
		config.VariantAppKit: {
			Framework:   detect.FrameworkReact,
			Variant:     config.VariantAppKit,
			Root:        "react/appkit",
			Description: "AppKit widget setup for a React SPA",
		},
	},
	detect.FrameworkNext: {
		config.VariantAdapter: {
			Framework:   detect.FrameworkNext,
			Variant:     config.VariantAdapter,
			Root:        "nextjs/adapter",
			Description: "client-side wallet-adapter providers and hooks for Next.js",
		},
		config.VariantAppKit: {
			Framework:   detect.FrameworkNext,
			Variant:     config.VariantAppKit,
			Root:        "nextjs/appkit",
			Description: "AppKit widget setup for Next.js",
		},
	},
	detect.FrameworkVue: {
		config.VariantAdapter: {
			Framework:   detect.FrameworkVue,
			Variant:     config.VariantAdapter,
			Root:        "vue/adapter",
			Description: "solana-wallets-vue plugin options, components, and composables",
		},
	},
}

// Get returns the template set for a framework and variant.
func Get(fw detect.Framework, variant config.Variant) (Set, error) {
	byVariant, ok := sets[fw]
	if !ok {
		return Set{}, errors.NewNotFoundError(
			"no templates for framework "+string(fw),
			"",
			"Supported frameworks: react, nextjs, vue",
		)
	}
	set, ok := byVariant[variant]
	if !ok {
		return Set{}, errors.NewNotFoundError(
			"no "+string(variant)+" templates for "+string(fw),
			"",
			"The appkit variant is available for react and nextjs projects",
		)
	}
	return set, nil
}

// List returns every registered set in a stable order.
func List() []Set {
	var out []Set
	for _, fw := range []detect.Framework{detect.FrameworkReact, detect.FrameworkNext, detect.FrameworkVue} {
		for _, v := range []config.Variant{config.VariantAdapter, config.VariantAppKit} {
			if set, ok := sets[fw][v]; ok {
				out = append(out, set)
			}
		}
	}
	return out
}
