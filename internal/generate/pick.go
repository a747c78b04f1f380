package generate

import "math/rand"

// Picker selects an index in [0,n). Every place the engine needs randomness
// goes through one of these so tests can inject a deterministic stub.
type Picker func(n int) int

// RandomPicker returns the production picker backed by math/rand's shared
// source, which is safe for concurrent callers.
func RandomPicker() Picker {
	return func(n int) int {
		if n <= 0 {
			return 0
		}
		return rand.Intn(n)
	}
}

func pickOne[T any](pick Picker, opts []T) T {
	var zero T
	if len(opts) == 0 {
		return zero
	}
	i := pick(len(opts))
	if i < 0 || i >= len(opts) {
		i = 0
	}
	return opts[i]
}
