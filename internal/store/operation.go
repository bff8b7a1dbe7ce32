package store

import (
	"context"
	"sync/atomic"
)

// VagueRequest is the request text used for parameterless generation.
const VagueRequest = "Any request for my time or attention, right now."

// Operation is a single-use unit of work executed against an ExcuseRepository.
type Operation interface {
	// Execute runs the operation. A second call returns ErrOperationConsumed.
	Execute(ctx context.Context, repo ExcuseRepository) (string, error)
}

// once guards an operation against being executed more than once.
type once struct {
	used atomic.Bool
}

func (o *once) claim() error {
	if !o.used.CompareAndSwap(false, true) {
		return ErrOperationConsumed
	}
	return nil
}

// GetExcuse fetches an excuse for one validated request.
type GetExcuse struct {
	once
	request string
}

// NewGetExcuse validates request and returns an operation bound to its
// trimmed form. A blank request never yields an operation.
func NewGetExcuse(request string) (*GetExcuse, error) {
	trimmed, err := ValidateRequest(request)
	if err != nil {
		return nil, err
	}
	return &GetExcuse{request: trimmed}, nil
}

// Request returns the validated request text.
func (op *GetExcuse) Request() string {
	return op.request
}

// Execute implements Operation.
func (op *GetExcuse) Execute(ctx context.Context, repo ExcuseRepository) (string, error) {
	if err := op.claim(); err != nil {
		return "", err
	}
	return repo.Fetch(ctx, op.request)
}

// GetVague fetches an excuse without any caller-supplied request.
type GetVague struct {
	once
}

// NewGetVague returns a parameterless excuse operation.
func NewGetVague() *GetVague {
	return &GetVague{}
}

// Execute implements Operation.
func (op *GetVague) Execute(ctx context.Context, repo ExcuseRepository) (string, error) {
	if err := op.claim(); err != nil {
		return "", err
	}
	return repo.Fetch(ctx, VagueRequest)
}
