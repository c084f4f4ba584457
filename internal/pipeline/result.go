package pipeline

// PageState tracks a page through the per-page state machine. Terminal
// states are Registered, Skipped and Failed.
type PageState int

const (
	StatePending PageState = iota
	StateExtracted
	StateNarrated
	StateMixed
	StateRendered
	StateRegistered
	StateSkipped
	StateFailed
)

func (s PageState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateExtracted:
		return "extracted"
	case StateNarrated:
		return "narrated"
	case StateMixed:
		return "mixed"
	case StateRendered:
		return "rendered"
	case StateRegistered:
		return "registered"
	case StateSkipped:
		return "skipped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further stage runs for the page.
func (s PageState) Terminal() bool {
	switch s {
	case StateRegistered, StateSkipped, StateFailed:
		return true
	}
	return false
}

// PageResult is the explicit per-page outcome collected by the orchestrator.
// One bad page never aborts the batch; it just ends up Failed here.
type PageResult struct {
	Index     int
	State     PageState
	ClipPath  string
	Narration string
	Err       error
}
