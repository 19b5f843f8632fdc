package vango

// Flag is an on/off signal. Panel visibility and element-local switches
// are flags.
type Flag struct {
	*Signal[bool]
}

// NewFlag creates a flag in the given state.
func NewFlag(on bool) *Flag {
	return &Flag{NewSignal(on)}
}

// Toggle flips the flag and returns the new state.
func (f *Flag) Toggle() bool {
	var now bool
	f.Update(func(on bool) bool {
		now = !on
		return now
	})
	return now
}
