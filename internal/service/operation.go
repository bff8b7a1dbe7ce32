package service

import (
	"context"
	"sync/atomic"

	"github.com/phrazzld/excuse-api/internal/store"
)

// Operation names, used in errors, logs and metrics.
const (
	OpGenerateExcuse = "generate_excuse"
	OpGenerateVague  = "generate_vague"
)

// State is the lifecycle position of an Operation.
type State int32

// Operation states. Created -> Executing -> Succeeded | Failed.
const (
	StateCreated State = iota
	StateExecuting
	StateSucceeded
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateExecuting:
		return "executing"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Operation is a single-use unit of work dispatched by ExcuseService.Execute.
type Operation interface {
	// Name identifies the operation kind.
	Name() string
	// Run executes the operation against svc. It may be called once.
	Run(ctx context.Context, svc *ExcuseService) (string, error)
}

// lifecycle tracks State for an operation and enforces single execution.
type lifecycle struct {
	state atomic.Int32
}

// State returns the current lifecycle state.
func (l *lifecycle) State() State {
	return State(l.state.Load())
}

func (l *lifecycle) begin() bool {
	return l.state.CompareAndSwap(int32(StateCreated), int32(StateExecuting))
}

// finish settles the state. A run that panics never sets ok and so ends
// as Failed.
func (l *lifecycle) finish(ok bool) {
	if ok {
		l.state.Store(int32(StateSucceeded))
		return
	}
	l.state.Store(int32(StateFailed))
}

// GenerateExcuse produces an excuse for one request.
type GenerateExcuse struct {
	lifecycle
	request string
}

var _ Operation = (*GenerateExcuse)(nil)

// NewGenerateExcuse validates request and binds its trimmed form to a new
// operation. It fails with an *InvalidRequestError for blank input.
func NewGenerateExcuse(request string) (*GenerateExcuse, error) {
	trimmed, err := store.ValidateRequest(request)
	if err != nil {
		return nil, NewInvalidRequestError(OpGenerateExcuse, "request text cannot be empty", nil)
	}
	return &GenerateExcuse{request: trimmed}, nil
}

// Name implements Operation.
func (op *GenerateExcuse) Name() string {
	return OpGenerateExcuse
}

// Request returns the validated request text.
func (op *GenerateExcuse) Request() string {
	return op.request
}

// Run implements Operation by fetching directly from the service's repository.
func (op *GenerateExcuse) Run(ctx context.Context, svc *ExcuseService) (string, error) {
	if !op.begin() {
		return "", ErrOperationConsumed
	}
	ok := false
	defer func() { op.finish(ok) }()

	excuse, err := svc.repository.Fetch(ctx, op.request)
	if err != nil {
		return "", translateRepositoryError(OpGenerateExcuse, err)
	}
	ok = true
	return excuse, nil
}

// GenerateVague produces an excuse without a caller-supplied request.
type GenerateVague struct {
	lifecycle
}

var _ Operation = (*GenerateVague)(nil)

// NewGenerateVague returns a parameterless generation operation.
func NewGenerateVague() *GenerateVague {
	return &GenerateVague{}
}

// Name implements Operation.
func (op *GenerateVague) Name() string {
	return OpGenerateVague
}

// Run implements Operation by dispatching a repository-tier operation.
func (op *GenerateVague) Run(ctx context.Context, svc *ExcuseService) (string, error) {
	if !op.begin() {
		return "", ErrOperationConsumed
	}
	ok := false
	defer func() { op.finish(ok) }()

	excuse, err := svc.repository.Execute(ctx, store.NewGetVague())
	if err != nil {
		return "", translateRepositoryError(OpGenerateVague, err)
	}
	ok = true
	return excuse, nil
}

// translateRepositoryError maps a repository-tier error to the service tier.
//
//	store.ErrInvalidRequest -> *InvalidRequestError
//	*store.GenerationError  -> *GenerationFailureError
//	anything else           -> *GenerationFailureError
func translateRepositoryError(operation string, err error) error {
	switch {
	case store.IsInvalidRequest(err):
		return NewInvalidRequestError(operation, "request rejected by repository", err)
	case store.IsGenerationError(err):
		return NewGenerationFailureError(operation, "failed to generate excuse", err)
	default:
		return NewGenerationFailureError(operation, "unexpected error during excuse generation", err)
	}
}
