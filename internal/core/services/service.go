package services

import "context"

type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}

// Func adapts an ordinary function to Service.
type Func[T any, S any] func(ctx context.Context, input T) (S, error)

func (f Func[T, S]) Run(ctx context.Context, input T) (S, error) {
	return f(ctx, input)
}
