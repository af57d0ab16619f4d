package detect

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/solwire/cli/internal/errors"
)

// packageJSON holds the manifest fields detection cares about.
type packageJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// findManifest walks up from start until it finds a package.json. The
// directory holding it becomes the project root. A malformed manifest is a
// validation error, not a detection miss: the project exists, its manifest
// is broken.
func findManifest(start string) (string, *packageJSON, error) {
	dir := start
	for {
		path := filepath.Join(dir, "package.json")
		data, err := os.ReadFile(path)
		if err == nil {
			var pkg packageJSON
			if err := json.Unmarshal(data, &pkg); err != nil {
				return "", nil, errors.NewValidationError(
					"package.json is not valid JSON: "+err.Error(),
					path,
					"",
					"Fix the manifest and re-run",
				)
			}
			return dir, &pkg, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, errors.NewNotFoundError(
				"no package.json found in this directory or any parent",
				start,
				"Run solwire inside a web project, or pass its path",
			)
		}
		dir = parent
	}
}
