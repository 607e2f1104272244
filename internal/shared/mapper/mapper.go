// Package mapper provides small generic helpers for mapping slices between
// layers.
package mapper

// MapSlice applies fn to every element of in and returns the results.
func MapSlice[In any, Out any](in []In, fn func(In) Out) []Out {
	out := make([]Out, 0, len(in))
	for _, item := range in {
		out = append(out, fn(item))
	}
	return out
}
