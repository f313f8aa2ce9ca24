package validators

import "context"

// inputKey is parameterised by the input type so every request type gets
// its own context slot.
type inputKey[T any] struct{}

// WithInput returns a copy of ctx carrying the validated value v.
func WithInput[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, inputKey[T]{}, v)
}

// InputFromContext returns the validated value of type T stored by
// [WithInput].
func InputFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(inputKey[T]{}).(T)
	return v, ok
}
