package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	info := Get()

	require.NotEmpty(t, info.GoVersion, "GoVersion should be populated")
	require.NotEmpty(t, info.Version, "Version should carry the dev default")
}

func TestInfoString(t *testing.T) {
	info := Info{
		Version:   "v1.0.0",
		GitCommit: "abc123",
		BuildDate: "2026-01-29",
		GoVersion: "go1.25",
	}

	str := info.String()

	assert.Contains(t, str, "v1.0.0")
	assert.Contains(t, str, "abc123")
	assert.Contains(t, str, "2026-01-29")
	assert.Contains(t, str, "go1.25")
}

func TestExtractVersion(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{name: "plain", output: "v22.11.0\n", want: "v22.11.0"},
		{name: "no prefix", output: "18.19.1", want: "v18.19.1"},
		{name: "prerelease", output: "v23.0.0-nightly20250101\n", want: "v23.0.0-nightly20250101"},
		{name: "garbage", output: "command not found", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractVersion(tt.output)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodeVersionCompatible(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v22.11.0", true},
		{"v18.0.0", true},
		{"18.19.1", true},
		{"v16.20.2", false},
		{"v17.9.1", false},
		{"", false},
		{"not-a-version", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, NodeVersionCompatible(tt.version))
		})
	}
}

func TestNodeBinaryInfoString(t *testing.T) {
	missing := NodeBinaryInfo{Found: false}
	assert.Contains(t, missing.String(), "not found")

	old := NodeBinaryInfo{
		Version:    "v16.20.2",
		Path:       "/usr/bin/node",
		Found:      true,
		Compatible: false,
		Message:    "incompatible - Node 18 or newer required",
	}
	str := old.String()
	assert.Contains(t, str, "v16.20.2")
	assert.Contains(t, str, "Node 18 or newer")
	assert.Contains(t, str, "/usr/bin/node")
}
