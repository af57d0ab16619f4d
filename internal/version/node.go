package version

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
)

// nodeVersionRegex matches node version output like "v22.11.0".
var nodeVersionRegex = regexp.MustCompile(`v?\d+\.\d+\.\d+(?:-[a-zA-Z0-9.]+)?`)

// MinNodeMajor is the lowest Node.js major version the generated projects
// support. Vite 5 and Next.js 14 both require Node 18 or newer.
const MinNodeMajor = 18

// NodeBinaryInfo contains Node.js runtime version information.
type NodeBinaryInfo struct {
	// Version is the Node.js binary version.
	Version string `json:"version"`

	// Path is the path to the node binary.
	Path string `json:"path"`

	// Compatible indicates the runtime can run the generated project.
	Compatible bool `json:"compatible"`

	// Found indicates a node binary was found on PATH.
	Found bool `json:"found"`

	// Message provides additional information about compatibility.
	Message string `json:"message,omitempty"`
}

// DetectNodeBinary finds and checks the Node.js installation.
func DetectNodeBinary() NodeBinaryInfo {
	path, err := exec.LookPath("node")
	if err != nil {
		return NodeBinaryInfo{
			Found:      false,
			Compatible: false,
			Message:    "node binary not found in PATH",
		}
	}

	nodeVersion, err := getNodeVersion(path)
	if err != nil {
		return NodeBinaryInfo{
			Path:       path,
			Found:      true,
			Compatible: false,
			Message:    "failed to get node version: " + err.Error(),
		}
	}

	compatible := NodeVersionCompatible(nodeVersion)
	message := "compatible"
	if !compatible {
		message = fmt.Sprintf("incompatible - Node %d or newer required", MinNodeMajor)
	}

	return NodeBinaryInfo{
		Version:    nodeVersion,
		Path:       path,
		Found:      true,
		Compatible: compatible,
		Message:    message,
	}
}

// getNodeVersion executes 'node --version' and extracts the version string.
func getNodeVersion(nodePath string) (string, error) {
	cmd := exec.Command(nodePath, "--version")
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", err
	}

	return extractVersion(out.String())
}

// extractVersion extracts the version number from node --version output.
func extractVersion(output string) (string, error) {
	match := nodeVersionRegex.FindString(output)
	if match == "" {
		return "", &versionParseError{output: output}
	}

	if !strings.HasPrefix(match, "v") {
		match = "v" + match
	}

	return match, nil
}

// versionParseError indicates failure to parse node version output.
type versionParseError struct {
	output string
}

func (e *versionParseError) Error() string {
	return "failed to parse node version from output: " + e.output
}

// NodeVersionCompatible reports whether the given Node.js version meets the
// MinNodeMajor floor.
func NodeVersionCompatible(nodeVersion string) bool {
	nodeVersion = strings.TrimPrefix(nodeVersion, "v")

	parts := strings.Split(nodeVersion, ".")
	if len(parts) == 0 || parts[0] == "" {
		return false
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}

	return major >= MinNodeMajor
}

// String returns a human-readable Node.js runtime info string.
func (n NodeBinaryInfo) String() string {
	if !n.Found {
		return "  Version: not found\n  Path:    -"
	}

	status := "compatible"
	if !n.Compatible {
		status = n.Message
	}

	return fmt.Sprintf("  Version: %s (%s)\n  Path:    %s", n.Version, status, n.Path)
}
