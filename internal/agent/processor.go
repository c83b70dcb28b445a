package agent

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/vokinneberg/ctbto-agent/internal/llm"
	"github.com/vokinneberg/ctbto-agent/internal/metrics"
)

//go:generate mockgen -source=processor.go -destination=mock_responseclient.go -package=agent ResponseClient

// ResponseClient defines the interface for the remote completion call
type ResponseClient interface {
	Respond(ctx context.Context, req llm.Request) (*llm.Response, error)
}

// Result is the normalized outcome of one query.
//
// On success Text is the reply and ResponseID can be passed to the next call.
// On failure ResponseID is empty, Text still holds a readable sentence ending
// with the fault description, and ErrorDetail repeats that description.
type Result struct {
	Text        string
	ResponseID  string
	Success     bool
	ErrorDetail string

	// Err is the underlying fault, nil on success
	Err error
}

// Processor turns a user question into a single Responses API call
type Processor struct {
	client  ResponseClient
	profile Profile
	logger  *slog.Logger
}

// NewProcessor creates a new processor for the given profile
func NewProcessor(client ResponseClient, profile Profile, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		client:  client,
		profile: profile,
		logger:  logger,
	}
}

// Profile returns the profile the processor was built with
func (p *Processor) Profile() Profile {
	return p.profile
}

// Process forwards userText as-is and never returns an error: faults of the
// outbound call are folded into a failed Result. An empty previousResponseID
// starts a new conversation.
func (p *Processor) Process(ctx context.Context, userText, previousResponseID string) Result {
	req := llm.Request{
		Instructions:       p.profile.Instructions,
		Model:              p.profile.Model,
		Input:              userText,
		Temperature:        p.profile.Temperature,
		PreviousResponseID: previousResponseID,
	}

	start := time.Now()
	res, err := p.client.Respond(ctx, req)
	took := time.Since(start)

	if err == nil && res == nil {
		err = &llm.RemoteError{Kind: llm.ErrInvalidResponse, Err: errors.New("empty response")}
	}
	if err != nil {
		metrics.ObserveQuery(metrics.StatusFailure, took)
		p.logger.ErrorContext(ctx, "Remote call failed",
			"error", err,
			"previous_response_id", previousResponseID,
			"duration", took,
		)
		return p.failure(err)
	}

	metrics.ObserveQuery(metrics.StatusSuccess, took)
	p.logger.DebugContext(ctx, "Remote call succeeded",
		"response_id", res.ID,
		"previous_response_id", previousResponseID,
		"duration", took,
	)

	text := res.Text
	if text == "" {
		text = p.profile.EmptyReply
	}

	return Result{
		Text:       text,
		ResponseID: res.ID,
		Success:    true,
	}
}

// ProcessSimple is Process without conversation continuity, returning only the reply text
func (p *Processor) ProcessSimple(ctx context.Context, userText string) string {
	return p.Process(ctx, userText, "").Text
}

// IsTopicRelated reports whether message concerns the profile's subject
func (p *Processor) IsTopicRelated(message string) bool {
	related := p.profile.IsTopicRelated(message)
	metrics.IncTopicCheck(related)
	return related
}

func (p *Processor) failure(err error) Result {
	detail := err.Error()

	text := p.profile.ErrorApology
	if p.profile.ErrorReassurance != "" {
		text += " " + p.profile.ErrorReassurance
	}
	text += " Error: " + detail

	return Result{
		Text:        text,
		Success:     false,
		ErrorDetail: detail,
		Err:         err,
	}
}
