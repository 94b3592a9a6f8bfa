package ratelog

// LineKind identifies what a Line carries.
type LineKind int

const (
	// LineImmediate is a new or different message, emitted verbatim.
	LineImmediate LineKind = iota + 1
	// LineSummary is a rendered repeat report, emitted when a limit is crossed.
	LineSummary
)

// Line is a single piece of output produced by Submit.
type Line struct {
	Kind LineKind
	Text string
}
