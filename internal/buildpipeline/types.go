// Package buildpipeline describes the progress of a multi-file compile:
// the stages a spec file passes through and the events reporting them.
package buildpipeline

import "time"

// Stage is one step a spec file goes through.
type Stage string

const (
	StageLoad     Stage = "load"
	StageValidate Stage = "validate"
	StageGenerate Stage = "generate"
	StageRender   Stage = "render"
	StageWrite    Stage = "write"
)

// Stages lists every stage in pipeline order.
var Stages = []Stage{StageLoad, StageValidate, StageGenerate, StageRender, StageWrite}

// Fraction is how far through the pipeline a file is once stage started.
func (s Stage) Fraction() float64 {
	switch s {
	case StageLoad:
		return 0.1
	case StageValidate:
		return 0.3
	case StageGenerate:
		return 0.5
	case StageRender:
		return 0.8
	case StageWrite:
		return 0.95
	default:
		return 0
	}
}

// Status is the state of a file within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusCached  Status = "cached"
	StatusDone    Status = "done"
	StatusError   Status = "error"
)

// Finished reports whether no further events follow for the file.
func (s Status) Finished() bool {
	return s == StatusDone || s == StatusError || s == StatusCached
}

// Event reports progress for a file, or for the whole run when File is "".
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use; files are compiled in parallel.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// FuncSink adapts a function.
type FuncSink func(Event)

func (f FuncSink) OnEvent(evt Event) { f(evt) }

// Emit sends evt to sink when there is one.
func Emit(sink ProgressSink, evt Event) {
	if sink != nil {
		sink.OnEvent(evt)
	}
}

// EmitQueued marks every file queued.
func EmitQueued(sink ProgressSink, files []string) {
	for _, f := range files {
		Emit(sink, Event{File: f, Status: StatusQueued})
	}
}
