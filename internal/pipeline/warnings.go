package pipeline

import (
	"fmt"

	"github.com/solwire/cli/internal/patch"
)

// PatchWarning describes one skipped patch and how to finish it by hand.
type PatchWarning struct {
	// File is the path of the file the patch could not anchor in.
	File string

	// Op names the patch operation.
	Op string

	// Fix is the manual instruction shown to the user.
	Fix string
}

func (w PatchWarning) String() string {
	return fmt.Sprintf("%s: could not apply %q: %s", w.File, w.Op, w.Fix)
}

// collectPatchWarnings flattens the missed ops of every file result.
func collectPatchWarnings(files []*patch.FileResult) []PatchWarning {
	var out []PatchWarning
	for _, fr := range files {
		for _, miss := range fr.Missed() {
			out = append(out, PatchWarning{
				File: fr.Path,
				Op:   miss.Op,
				Fix:  miss.ManualFix,
			})
		}
	}
	return out
}
