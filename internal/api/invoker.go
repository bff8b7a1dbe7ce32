package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/excuse-api/internal/service"
)

// ExcuseExecutor runs service operations. *service.ExcuseService satisfies it.
type ExcuseExecutor interface {
	Execute(ctx context.Context, op service.Operation) (string, error)
}

// Invoker adapts boundary events to service operations.
type Invoker struct {
	executor ExcuseExecutor
	metadata map[string]string
	logger   *slog.Logger
}

// NewInvoker creates an Invoker. metadata is attached to every success body
// and may be nil.
func NewInvoker(executor ExcuseExecutor, metadata map[string]string, logger *slog.Logger) (*Invoker, error) {
	if executor == nil {
		return nil, errors.New("executor cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	copied := make(map[string]string, len(metadata))
	for k, v := range metadata {
		copied[k] = v
	}

	return &Invoker{
		executor: executor,
		metadata: copied,
		logger:   logger.With("component", "invoker"),
	}, nil
}

// Invoke generates an excuse for ev.Request.
func (i *Invoker) Invoke(ctx context.Context, ev Event) Result {
	op, err := service.NewGenerateExcuse(ev.Request)
	if err != nil {
		return i.failure(ctx, err)
	}
	return i.run(ctx, op)
}

// InvokeVague generates an excuse without a request.
func (i *Invoker) InvokeVague(ctx context.Context) Result {
	return i.run(ctx, service.NewGenerateVague())
}

func (i *Invoker) run(ctx context.Context, op service.Operation) Result {
	excuse, err := i.executor.Execute(ctx, op)
	if err != nil {
		return i.failure(ctx, err)
	}

	return Result{
		Status: http.StatusOK,
		Body:   ExcuseResponse{Excuse: excuse, Metadata: i.metadata},
	}
}

func (i *Invoker) failure(ctx context.Context, err error) Result {
	status, body := MapError(err)
	if status == http.StatusInternalServerError && body.Error == ErrorLabelInternal {
		i.logger.ErrorContext(ctx, "unclassified error reached the boundary",
			"error", err,
			"error_type", fmt.Sprintf("%T", err))
	}
	return Result{Status: status, Body: body}
}
