package adapter

import "context"

// DefaultName is the name of the identity adapter.
const DefaultName = "default"

type defaultAdapter struct{}

// NewDefaultAdapter returns the identity adapter used for unknown
// operations and in bypass mode.
func NewDefaultAdapter() Adapter {
	return defaultAdapter{}
}

func (defaultAdapter) Name() string {
	return DefaultName
}

func (defaultAdapter) Forward(_ context.Context, op Operation) (Operation, error) {
	return op, nil
}

func (defaultAdapter) Map(_ context.Context, resp Response) Response {
	return resp
}
