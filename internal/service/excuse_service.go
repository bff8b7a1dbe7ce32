package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/excuse-api/internal/redact"
	"github.com/phrazzld/excuse-api/internal/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Outcome labels passed to an Observer.
const (
	OutcomeSuccess           = "success"
	OutcomeInvalidRequest    = "invalid_request"
	OutcomeGenerationFailure = "generation_failure"
	OutcomeError             = "error"
)

// Observer receives one notification per executed operation.
type Observer interface {
	ObserveExcuse(operation, outcome string, duration time.Duration)
}

// ExcuseService dispatches excuse operations against one repository.
// It is created once by the composition root and shared read-only across
// requests.
type ExcuseService struct {
	repository store.ExcuseRepository
	logger     *slog.Logger
	observer   Observer
	tracer     trace.Tracer
}

// Option configures an ExcuseService.
type Option func(*ExcuseService)

// WithObserver registers an Observer for operation outcomes.
func WithObserver(o Observer) Option {
	return func(s *ExcuseService) {
		s.observer = o
	}
}

// NewExcuseService creates a new ExcuseService.
// It returns an error if the repository is nil.
func NewExcuseService(repository store.ExcuseRepository, logger *slog.Logger, opts ...Option) (*ExcuseService, error) {
	if repository == nil {
		return nil, errors.New("repository cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &ExcuseService{
		repository: repository,
		logger:     logger.With("component", "excuse_service"),
		tracer:     otel.Tracer("github.com/phrazzld/excuse-api/internal/service"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Execute runs op against this service and returns its excuse.
//
// A panic raised below the service is recovered and reported as a
// *GenerationFailureError so that no failure escapes untyped.
func (s *ExcuseService) Execute(ctx context.Context, op Operation) (excuse string, err error) {
	if op == nil {
		return "", errors.New("operation cannot be nil")
	}

	ctx, span := s.tracer.Start(ctx, "excuse_service."+op.Name(),
		trace.WithAttributes(attribute.String("excuse.operation", op.Name())))
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = NewGenerationFailureError(op.Name(), "unexpected error during excuse generation",
				fmt.Errorf("panic: %v", r))
		}
		s.finish(ctx, span, op.Name(), time.Since(start), err)
	}()

	return op.Run(ctx, s)
}

func (s *ExcuseService) finish(ctx context.Context, span trace.Span, operation string, elapsed time.Duration, err error) {
	defer span.End()

	outcome := outcomeOf(err)
	span.SetAttributes(attribute.String("excuse.outcome", outcome))

	switch outcome {
	case OutcomeSuccess:
		s.logger.InfoContext(ctx, "excuse generated",
			"operation", operation,
			"duration_ms", elapsed.Milliseconds())
	case OutcomeInvalidRequest:
		s.logger.DebugContext(ctx, "excuse request rejected",
			"operation", operation,
			"error", redact.Error(err))
	default:
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		s.logger.ErrorContext(ctx, "excuse generation failed",
			"operation", operation,
			"outcome", outcome,
			"error", redact.Error(err),
			"duration_ms", elapsed.Milliseconds())
	}

	if s.observer != nil {
		s.observer.ObserveExcuse(operation, outcome, elapsed)
	}
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrInvalidRequest):
		return OutcomeInvalidRequest
	case errors.Is(err, ErrGenerationFailed):
		return OutcomeGenerationFailure
	default:
		return OutcomeError
	}
}
