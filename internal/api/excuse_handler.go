package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/excuse-api/internal/api/shared"
)

// MaxEventBytes bounds the request body accepted by ExcuseHandler.
const MaxEventBytes = 1 << 20

// ExcuseHandler serves excuse generation over HTTP.
type ExcuseHandler struct {
	invoker *Invoker
}

// NewExcuseHandler creates a new ExcuseHandler.
func NewExcuseHandler(invoker *Invoker) *ExcuseHandler {
	return &ExcuseHandler{invoker: invoker}
}

// GenerateExcuse handles POST /api/excuses requests.
func (h *ExcuseHandler) GenerateExcuse(w http.ResponseWriter, r *http.Request) {
	ev, err := DecodeEvent(http.MaxBytesReader(w, r.Body, MaxEventBytes))
	if err != nil {
		message := "request body must be a JSON object"
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			message = "request body too large"
		}
		h.write(w, r, Result{
			Status: http.StatusBadRequest,
			Body:   ErrorResponse{Error: ErrorLabelInvalidRequest, Message: message},
		})
		return
	}

	h.write(w, r, h.invoker.Invoke(r.Context(), ev))
}

// GenerateVague handles GET /api/excuses/vague requests.
func (h *ExcuseHandler) GenerateVague(w http.ResponseWriter, r *http.Request) {
	h.write(w, r, h.invoker.InvokeVague(r.Context()))
}

func (h *ExcuseHandler) write(w http.ResponseWriter, r *http.Request, res Result) {
	if body, ok := res.Body.(ErrorResponse); ok {
		body.TraceID = shared.GetTraceID(r.Context())
		res.Body = body

		slog.Log(r.Context(), shared.LogLevelForStatus(res.Status), "API error response",
			"trace_id", body.TraceID,
			"path", r.URL.Path,
			"method", r.Method,
			"status_code", res.Status,
			"user_message", body.Message)
	}

	shared.RespondWithJSON(w, r, res.Status, res.Body)
}
