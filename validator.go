package commandline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Validator validates an options model after it was parsed.
type Validator[T any] interface {
	// Validate returns a non-nil error if model is invalid.
	Validate(ctx context.Context, model *T) error
}

// ValidatorFunc adapts a function to a Validator.
type ValidatorFunc[T any] func(ctx context.Context, model *T) error

// Validate implements Validator.
func (f ValidatorFunc[T]) Validate(ctx context.Context, model *T) error { return f(ctx, model) }

// validate runs all validators on model concurrently and waits for all of
// them. Failures are returned as ValidationErrors in order of validators.
func validate[T any](ctx context.Context, model *T, validators []Validator[T]) (errs []error) {
	if len(validators) == 0 {
		return nil
	}
	results := make([]error, len(validators))
	var g errgroup.Group
	for i, v := range validators {
		g.Go(func() error {
			results[i] = v.Validate(ctx, model)
			return nil
		})
	}
	_ = g.Wait()
	for _, err := range results {
		if err != nil {
			errs = append(errs, &ValidationError{Err: err})
		}
	}
	return
}
