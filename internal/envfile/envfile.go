// Package envfile writes the project's dotenv entries for the selected
// Solana network. Existing files are extended, never rewritten: only keys
// the file does not already define are appended, so user-edited values
// survive every run.
package envfile

import (
	"os"
	"strings"
)

// RPCEndpoints is the fixed network table.
var RPCEndpoints = map[string]string{
	"mainnet-beta": "https://api.mainnet-beta.solana.com",
	"devnet":       "https://api.devnet.solana.com",
	"testnet":      "https://api.testnet.solana.com",
	"localnet":     "http://127.0.0.1:8899",
}

// KeySuffix is the variable name without its framework prefix.
const KeySuffix = "SOLANA_RPC_URL"

// RPCURL returns the endpoint for a network.
func RPCURL(network string) (string, bool) {
	url, ok := RPCEndpoints[network]
	return url, ok
}

// Entry is one KEY=value line.
type Entry struct {
	Key   string
	Value string
}

func (e Entry) line() string { return e.Key + "=" + e.Value }

// Status says what Write did to the file.
type Status string

const (
	StatusCreated   Status = "created"
	StatusUpdated   Status = "updated"
	StatusUnchanged Status = "unchanged"
)

// WriteResult reports the outcome and which keys were appended.
type WriteResult struct {
	Status Status
	Added  []string
}

// Write creates path with the entries, or appends the entries whose keys the
// existing file lacks. A key that is already defined keeps its current value
// no matter what the entry says. The file always ends with a newline.
func Write(path string, entries []Entry) (*WriteResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		var b strings.Builder
		added := make([]string, 0, len(entries))
		for _, e := range entries {
			b.WriteString(e.line())
			b.WriteString("\n")
			added = append(added, e.Key)
		}
		if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
			return nil, err
		}
		return &WriteResult{Status: StatusCreated, Added: added}, nil
	}

	existing := definedKeys(string(content))
	var missing []Entry
	for _, e := range entries {
		if _, ok := existing[e.Key]; !ok {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return &WriteResult{Status: StatusUnchanged}, nil
	}

	out := string(content)
	if len(out) > 0 && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	added := make([]string, 0, len(missing))
	for _, e := range missing {
		out += e.line() + "\n"
		added = append(added, e.Key)
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return nil, err
	}
	return &WriteResult{Status: StatusUpdated, Added: added}, nil
}

// definedKeys scans dotenv content for the keys it assigns. Comment lines
// and lines without = are ignored; whitespace around the key is tolerated,
// as is an export prefix.
func definedKeys(content string) map[string]struct{} {
	keys := make(map[string]struct{})
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		trimmed = strings.TrimPrefix(trimmed, "export ")
		eq := strings.Index(trimmed, "=")
		if eq <= 0 {
			continue
		}
		key := strings.TrimSpace(trimmed[:eq])
		if key != "" {
			keys[key] = struct{}{}
		}
	}
	return keys
}
