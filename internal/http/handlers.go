package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/vokinneberg/ctbto-agent/internal/agent"
	"github.com/vokinneberg/ctbto-agent/internal/types"
)

//go:generate mockgen -source=handlers.go -destination=mock_queryprocessor.go -package=http QueryProcessor

// QueryProcessor defines the interface for the agent operations exposed over HTTP
type QueryProcessor interface {
	Process(ctx context.Context, userText, previousResponseID string) agent.Result
	ProcessSimple(ctx context.Context, userText string) string
	IsTopicRelated(message string) bool
}

// QueryReq is the /query body. Message is a pointer so that an absent field
// can be told apart from an empty string, which is forwarded as-is.
type QueryReq struct {
	Message            *string `json:"message"`
	PreviousResponseID string  `json:"previous_response_id,omitempty"`
}

type MessageReq struct {
	Message *string `json:"message"`
}

type Handler struct {
	processor QueryProcessor
}

// NewHandlers initializes handlers with dependencies
func NewHandlers(processor QueryProcessor) *Handler {
	return &Handler{
		processor: processor,
	}
}

// QueryHandler always answers 200 once the body is valid; a failed remote call is reported in the record.
func (h *Handler) QueryHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req QueryReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Message == nil {
		errorResponse(w, http.StatusBadRequest, "Message is required", nil)
		return
	}

	result := h.processor.Process(r.Context(), *req.Message, req.PreviousResponseID)
	if !result.Success {
		slog.Warn("Query failed", "error", result.ErrorDetail, "previous_response_id", req.PreviousResponseID)
	}

	writeJSON(w, http.StatusOK, types.QueryResponse{
		Text:       result.Text,
		ResponseID: result.ResponseID,
		Success:    result.Success,
		Error:      result.ErrorDetail,
	})
}

func (h *Handler) SimpleQueryHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req MessageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Message == nil {
		errorResponse(w, http.StatusBadRequest, "Message is required", nil)
		return
	}

	text := h.processor.ProcessSimple(r.Context(), *req.Message)

	writeJSON(w, http.StatusOK, types.SimpleResponse{Text: text})
}

func (h *Handler) ClassifyHandler(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req MessageReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Message == nil {
		errorResponse(w, http.StatusBadRequest, "Message is required", nil)
		return
	}

	writeJSON(w, http.StatusOK, types.ClassifyResponse{
		Related: h.processor.IsTopicRelated(*req.Message),
	})
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = fmt.Sprintf("%s: %v", message, err)
	}

	writeJSON(w, status, types.ErrorResponse{
		Error:   http.StatusText(status),
		Message: errorMsg,
	})
}
