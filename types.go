package mdfences

// Recognized interactive fence types. The set is fixed: the client-side
// components that hydrate the emitted divs exist only for these five.
const (
	FenceQuiz            = "quiz"
	FenceTerminal        = "terminal"
	FenceCommandBuilder  = "command-builder"
	FenceExercise        = "exercise"
	FenceCodeWalkthrough = "code-walkthrough"
)

// fenceTypes lists the recognized types in declaration order.
var fenceTypes = []string{
	FenceQuiz,
	FenceTerminal,
	FenceCommandBuilder,
	FenceExercise,
	FenceCodeWalkthrough,
}

// fenceTypeSet enables O(1) lookup during matching. Built once at package
// init and never mutated afterwards.
var fenceTypeSet = func() map[string]bool {
	set := make(map[string]bool, len(fenceTypes))
	for _, t := range fenceTypes {
		set[t] = true
	}
	return set
}()

// FenceTypes returns the recognized fence type names.
// The returned slice is a copy; mutating it has no effect on matching.
func FenceTypes() []string {
	out := make([]string, len(fenceTypes))
	copy(out, fenceTypes)
	return out
}

// IsFenceType reports whether name is a recognized interactive fence type.
func IsFenceType(name string) bool {
	return fenceTypeSet[name]
}
