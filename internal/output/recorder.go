package output

import "sync"

// Level identifies a recorded log level.
type Level string

// Recorded levels.
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Entry is one captured log call.
type Entry struct {
	Level   Level
	Message string
	Keyvals []interface{}
}

// Recorder is a Logger that captures entries for test assertions.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) record(level Level, msg interface{}, keyvals []interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := msg.(string)
	if !ok {
		s = ""
	}
	r.entries = append(r.entries, Entry{Level: level, Message: s, Keyvals: keyvals})
}

// Debug records a debug entry.
func (r *Recorder) Debug(msg interface{}, keyvals ...interface{}) {
	r.record(LevelDebug, msg, keyvals)
}

// Info records an info entry.
func (r *Recorder) Info(msg interface{}, keyvals ...interface{}) {
	r.record(LevelInfo, msg, keyvals)
}

// Warn records a warn entry.
func (r *Recorder) Warn(msg interface{}, keyvals ...interface{}) {
	r.record(LevelWarn, msg, keyvals)
}

// Error records an error entry.
func (r *Recorder) Error(msg interface{}, keyvals ...interface{}) {
	r.record(LevelError, msg, keyvals)
}

// Entries returns a copy of all captured entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ByLevel returns the captured entries at the given level.
func (r *Recorder) ByLevel(level Level) []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Entry
	for _, e := range r.entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Messages returns the messages of all entries at the given level.
func (r *Recorder) Messages(level Level) []string {
	var out []string
	for _, e := range r.ByLevel(level) {
		out = append(out, e.Message)
	}
	return out
}
