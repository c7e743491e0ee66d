package port

// RunObserver receives fire-and-forget progress and log notifications from a
// pipeline run. Implementations must not block; the pipeline never waits on
// the observer.
type RunObserver interface {
	// Progress reports overall run progress in [0,100].
	Progress(percent int)
	// Log reports a human-readable status message.
	Log(msg string)
}

// NopObserver discards all notifications. It is the default when the caller
// supplies no observer; absence of an observer never changes pipeline behavior.
type NopObserver struct{}

func (NopObserver) Progress(int) {}
func (NopObserver) Log(string)   {}

// FuncObserver adapts plain callbacks to RunObserver. Nil callbacks are
// allowed and skipped.
type FuncObserver struct {
	OnProgress func(percent int)
	OnLog      func(msg string)
}

func (f FuncObserver) Progress(percent int) {
	if f.OnProgress != nil {
		f.OnProgress(percent)
	}
}

func (f FuncObserver) Log(msg string) {
	if f.OnLog != nil {
		f.OnLog(msg)
	}
}
