// Package handler exposes the expense engine over HTTP with JSON bodies.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/rachaai/internal/domain/cultural"
	"github.com/FACorreiaa/rachaai/internal/domain/expense"
)

const maxBodyBytes = 64 << 10

// ExpenseService is the request layer the handler depends on.
type ExpenseService interface {
	ProcessExpenseText(ctx context.Context, text, region string) (*expense.ExpenseInterpretation, error)
	AnalyzeCulturalContext(ctx context.Context, text, region string) (cultural.CulturalContext, error)
}

var _ ExpenseService = (*expense.Service)(nil)

// ExpenseHandler handles the expense HTTP endpoints
type ExpenseHandler struct {
	svc    ExpenseService
	logger *slog.Logger
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(svc ExpenseService, logger *slog.Logger) *ExpenseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExpenseHandler{
		svc:    svc,
		logger: logger,
	}
}

// TextRequest is the body of both engine endpoints.
type TextRequest struct {
	Text   string `json:"text"`
	Region string `json:"region,omitempty"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// Register mounts the routes on mux.
func (h *ExpenseHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/expenses/interpret", h.Interpret)
	mux.HandleFunc("POST /v1/cultural-context", h.CulturalContext)
	mux.HandleFunc("GET /healthz", h.Healthz)
}

// Interpret reads a shared-expense message and returns its interpretation
func (h *ExpenseHandler) Interpret(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	result, err := h.svc.ProcessExpenseText(r.Context(), req.Text, req.Region)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// CulturalContext returns only the cultural reading of a message
func (h *ExpenseHandler) CulturalContext(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r)
	if !ok {
		return
	}

	result, err := h.svc.AnalyzeCulturalContext(r.Context(), req.Text, req.Region)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

// Healthz reports liveness. The engine has no external dependencies to probe.
func (h *ExpenseHandler) Healthz(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ExpenseHandler) decode(w http.ResponseWriter, r *http.Request) (TextRequest, bool) {
	var req TextRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		h.writeJSON(w, status, ErrorResponse{
			Error:     "invalid request body",
			RequestID: RequestIDFromContext(r.Context()),
		})
		return req, false
	}
	return req, true
}

func (h *ExpenseHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	requestID := RequestIDFromContext(r.Context())

	if expense.IsValidationError(err) {
		h.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), RequestID: requestID})
		return
	}

	h.logger.Error("failed to handle expense request",
		slog.String("path", r.URL.Path),
		slog.String("request_id", requestID),
		slog.Any("error", err),
	)
	h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal error", RequestID: requestID})
}

func (h *ExpenseHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to write response", slog.Any("error", err))
	}
}
