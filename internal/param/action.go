package param

// Action is executed when a descriptor's flag is present on the command line.
// Value-taking flags receive the supplied value; flags without an argument
// receive Absent and their result is discarded.
type Action interface {
	Execute(v Value) any
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(v Value) any

// Execute calls f(v).
func (f ActionFunc) Execute(v Value) any {
	return f(v)
}

type helpAction struct{}

func (helpAction) Execute(Value) any { return nil }

type echoAction struct{}

func (echoAction) Execute(v Value) any {
	s, ok := v.Get()
	if !ok {
		return nil
	}
	return s
}

var (
	// Help is the designated help action. A descriptor carrying it turns its
	// flag into a help request that halts the session before any other
	// action runs.
	Help Action = helpAction{}

	// Echo returns the supplied string unchanged, or nil when absent.
	Echo Action = echoAction{}
)

// IsHelp reports whether a is the designated help action.
func IsHelp(a Action) bool {
	_, ok := a.(helpAction)
	return ok
}
