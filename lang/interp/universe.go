package interp

// installUniverse binds the native-function surface into globals at
// interpreter construction (spec.md §4.3, §4.4 "Native-function surface").
// The teacher's machine package calls its built-in-binding set the
// Universe; loxrun's is smaller, fixed, and always present, so it is wired
// directly rather than exposed for runtime mutation.
func installUniverse(globals *Environment, clock func() float64) {
	globals.Define("clock", &NativeFunction{
		FnName:  "clock",
		FnArity: 0,
		Fn: func(it *Interpreter, _ []Value) (Value, error) {
			return Number(it.Clock()), nil
		},
	})
}
