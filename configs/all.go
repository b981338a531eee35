package configs

import "iter"

// All yields the value at path from every file that defines it, in precedence order.
func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(wrapf(err, "decode %s", path))
			}
			if !yield(v) {
				return
			}
		}
	}
}
