package llm

import (
	"context"
	"errors"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/responses"
	"github.com/openai/openai-go/shared"
)

// Request is a single call to the Responses API
type Request struct {
	Instructions string
	Model        string
	Input        string
	Temperature  float64

	// PreviousResponseID links this call to an earlier response. Empty means a fresh conversation.
	PreviousResponseID string
}

// Response holds the two fields the agent reads back from the service
type Response struct {
	ID   string
	Text string
}

// Respond performs one Responses API call. NewClient disables SDK retries, so a
// failure is returned after a single request.
func (c *Client) Respond(ctx context.Context, req Request) (*Response, error) {
	if c.apiKey == "" {
		return nil, &RemoteError{Kind: ErrAuth, Err: errors.New("OPENAI_API_KEY is not set")}
	}

	params := responses.ResponseNewParams{
		Model:        shared.ResponsesModel(req.Model),
		Instructions: openai.String(req.Instructions),
		// openai.String marks the value as set, so an empty input is still sent
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(req.Input),
		},
		Temperature: openai.Float(req.Temperature),
	}
	if req.PreviousResponseID != "" {
		params.PreviousResponseID = openai.String(req.PreviousResponseID)
	}

	res, err := c.client.Responses.New(ctx, params)
	if err != nil {
		return nil, classifyError(err)
	}

	if res.ID == "" {
		return nil, &RemoteError{Kind: ErrInvalidResponse, Err: errors.New("response has no id")}
	}

	return &Response{
		ID:   res.ID,
		Text: res.OutputText(),
	}, nil
}

// classifyError wraps an SDK error with the matching sentinel
func classifyError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return &RemoteError{Kind: ErrAuth, Err: err}
		}
	}
	return &RemoteError{Kind: ErrRemoteCall, Err: err}
}
