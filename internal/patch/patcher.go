package patch

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/solwire/cli/internal/errors"
	"github.com/solwire/cli/internal/output"
)

// Outcome classifies how a single op ended.
type Outcome int

const (
	// OutcomeApplied means the op changed the working content.
	OutcomeApplied Outcome = iota

	// OutcomeAlreadyApplied means the guard fired or the merge found its
	// entry in place; nothing to do.
	OutcomeAlreadyApplied

	// OutcomeAnchorNotFound means every locator tier gave up; the file is
	// left untouched and the manual fix is surfaced to the user.
	OutcomeAnchorNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeAlreadyApplied:
		return "already applied"
	case OutcomeAnchorNotFound:
		return "anchor not found"
	default:
		return "unknown"
	}
}

// Op is one declarative edit against a file: an idempotency marker, a
// locator for the closed anchor set, and a transform built from the
// appliers. ManualFix is the instruction shown when the anchor is missing.
type Op struct {
	Name      string
	Marker    string
	Locator   Locator
	Transform func(src string, a Anchor) string
	ManualFix string
}

// Result is the outcome of one op.
type Result struct {
	Op        string
	Outcome   Outcome
	ManualFix string
}

// FileResult collects the per-op outcomes for one file. When any op misses
// its anchor the whole write is discarded and Wrote is false, so the file
// stays byte-identical no matter how many earlier ops succeeded.
type FileResult struct {
	Path    string
	Results []Result
	Wrote   bool
}

// Applied counts ops that changed content.
func (fr *FileResult) Applied() int {
	n := 0
	for _, r := range fr.Results {
		if r.Outcome == OutcomeApplied {
			n++
		}
	}
	return n
}

// Missed returns the results whose anchor was never found.
func (fr *FileResult) Missed() []Result {
	var out []Result
	for _, r := range fr.Results {
		if r.Outcome == OutcomeAnchorNotFound {
			out = append(out, r)
		}
	}
	return out
}

// Clean reports whether every op either applied or was already in place.
func (fr *FileResult) Clean() bool {
	return len(fr.Missed()) == 0
}

// Patcher applies ops to files one at a time. The logger is injected by the
// caller; a test can pass an output.Recorder and assert on what was said.
type Patcher struct {
	Log output.Logger
}

func NewPatcher(log output.Logger) *Patcher {
	return &Patcher{Log: log}
}

// PatchFile reads path fresh, runs the ops in order against an in-memory
// copy, and writes the result back only if every op located its anchor and
// at least one of them changed something. A missed anchor downgrades to a
// warning and leaves the file byte-identical on disk; a read or write
// failure is a real error.
func (p *Patcher) PatchFile(path string, ops []Op) (*FileResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapNotFound(err, "read patch target")
	}
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	original := string(raw)
	working := original
	fr := &FileResult{Path: path}

	for _, op := range ops {
		if AlreadyApplied(working, op.Marker) {
			p.Log.Debug("patch already applied", "file", path, "op", op.Name)
			fr.Results = append(fr.Results, Result{Op: op.Name, Outcome: OutcomeAlreadyApplied})
			continue
		}
		a, ok := op.Locator.Locate(working)
		if !ok {
			p.Log.Warn("could not locate anchor",
				"file", path, "op", op.Name, "anchor", op.Locator.Kind(), "fix", op.ManualFix)
			fr.Results = append(fr.Results, Result{Op: op.Name, Outcome: OutcomeAnchorNotFound, ManualFix: op.ManualFix})
			continue
		}
		next := op.Transform(working, a)
		if next == working {
			p.Log.Debug("patch effect already present", "file", path, "op", op.Name)
			fr.Results = append(fr.Results, Result{Op: op.Name, Outcome: OutcomeAlreadyApplied})
			continue
		}
		working = next
		fr.Results = append(fr.Results, Result{Op: op.Name, Outcome: OutcomeApplied})
	}

	if !fr.Clean() {
		p.Log.Debug("discarding patch, file left untouched", "file", path)
		return fr, nil
	}
	if working == original {
		return fr, nil
	}
	if err := os.WriteFile(path, []byte(working), mode); err != nil {
		return fr, fmt.Errorf("write patched file: %w", err)
	}
	fr.Wrote = true
	return fr, nil
}
