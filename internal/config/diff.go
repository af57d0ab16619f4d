package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
)

// Diff renders a human-readable report of what changes between two
// configurations, shown by update before it rewrites solwire.json. Returns
// the empty string when nothing differs.
func Diff(old, new *Config) (string, error) {
	from, err := configInput("current", old)
	if err != nil {
		return "", err
	}
	to, err := configInput("proposed", new)
	if err != nil {
		return "", err
	}

	report, err := dyff.CompareInputFiles(from, to)
	if err != nil {
		return "", fmt.Errorf("comparing configurations: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", nil
	}

	var buf bytes.Buffer
	human := &dyff.HumanReport{
		Report:       report,
		NoTableStyle: true,
		OmitHeader:   true,
	}
	if err := human.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("rendering configuration diff: %w", err)
	}
	return buf.String(), nil
}

// configInput marshals a config to a document dyff can compare. JSON is a
// YAML subset, so the YAML loader handles it directly.
func configInput(name string, cfg *Config) (ytbx.InputFile, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, err
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}
