package icongen

// EventKind classifies a progress event.
type EventKind int

const (
	// FileWritten reports one output file landing on disk.
	FileWritten EventKind = iota
	// StageDone reports a whole pipeline stage (ico, icns, android)
	// finishing.
	StageDone
	// Warn reports a non-fatal condition, such as the bundle packager
	// falling back to a lower-fidelity strategy.
	Warn
)

// Event is one entry in the generator's progress stream. Path and Size are
// set for FileWritten, Stage for StageDone, Message for Warn.
type Event struct {
	Kind    EventKind
	Path    string
	Size    int
	Stage   string
	Message string
}

// Reporter receives progress events as the pipeline runs. Callers render
// them however they like; a nil Reporter discards them.
type Reporter func(Event)

func (r Reporter) emit(e Event) {
	if r != nil {
		r(e)
	}
}

func (r Reporter) wrote(path string, size int) {
	r.emit(Event{Kind: FileWritten, Path: path, Size: size})
}

func (r Reporter) stage(name string) {
	r.emit(Event{Kind: StageDone, Stage: name})
}

func (r Reporter) warn(msg string) {
	r.emit(Event{Kind: Warn, Message: msg})
}
