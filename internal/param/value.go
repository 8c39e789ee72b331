package param

// Value is the value supplied for a flag. A flag that was not given, or was
// given without an argument, carries the absent value.
type Value struct {
	s   string
	set bool
}

// Absent is the value passed to actions and rules when no argument was supplied.
var Absent = Value{}

// Some wraps a supplied argument. The empty string is a present value.
func Some(s string) Value {
	return Value{s: s, set: true}
}

// Get returns the supplied string and whether one was supplied.
func (v Value) Get() (string, bool) {
	return v.s, v.set
}

// IsAbsent reports whether no argument was supplied.
func (v Value) IsAbsent() bool {
	return !v.set
}

// Or returns the supplied string, or def when absent.
func (v Value) Or(def string) string {
	if !v.set {
		return def
	}
	return v.s
}

func (v Value) String() string {
	if !v.set {
		return "<absent>"
	}
	return v.s
}
