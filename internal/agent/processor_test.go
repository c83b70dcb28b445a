package agent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/vokinneberg/ctbto-agent/internal/llm"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessor_Process(t *testing.T) {
	profile := DefaultProfile()

	tests := []struct {
		name           string
		userText       string
		previousID     string
		setupMocks     func(*MockResponseClient)
		wantSuccess    bool
		wantText       string
		wantContains   []string
		wantResponseID string
		wantErr        error
	}{
		{
			name:     "successful query",
			userText: "What is the CTBTO?",
			setupMocks: func(m *MockResponseClient) {
				m.EXPECT().Respond(gomock.Any(), llm.Request{
					Instructions: profile.Instructions,
					Model:        "gpt-4o",
					Input:        "What is the CTBTO?",
					Temperature:  0.7,
				}).Return(&llm.Response{ID: "resp_1", Text: "The CTBTO is going to save humanity."}, nil)
			},
			wantSuccess:    true,
			wantText:       "The CTBTO is going to save humanity.",
			wantResponseID: "resp_1",
		},
		{
			name:       "follow-up forwards previous response id",
			userText:   "Can you tell me more about their monitoring system?",
			previousID: "resp_1",
			setupMocks: func(m *MockResponseClient) {
				m.EXPECT().Respond(gomock.Any(), llm.Request{
					Instructions:       profile.Instructions,
					Model:              "gpt-4o",
					Input:              "Can you tell me more about their monitoring system?",
					Temperature:        0.7,
					PreviousResponseID: "resp_1",
				}).Return(&llm.Response{ID: "resp_2", Text: "The IMS has 337 facilities."}, nil)
			},
			wantSuccess:    true,
			wantText:       "The IMS has 337 facilities.",
			wantResponseID: "resp_2",
		},
		{
			name:     "empty user text is forwarded",
			userText: "",
			setupMocks: func(m *MockResponseClient) {
				m.EXPECT().Respond(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, req llm.Request) (*llm.Response, error) {
						if req.Input != "" {
							t.Errorf("Respond() input = %q, want empty", req.Input)
						}
						return &llm.Response{ID: "resp_3", Text: "Ask me about the CTBTO."}, nil
					},
				)
			},
			wantSuccess:    true,
			wantText:       "Ask me about the CTBTO.",
			wantResponseID: "resp_3",
		},
		{
			name:     "empty reply falls back to canned sentence",
			userText: "What is the CTBTO?",
			setupMocks: func(m *MockResponseClient) {
				m.EXPECT().Respond(gomock.Any(), gomock.Any()).Return(&llm.Response{ID: "resp_4"}, nil)
			},
			wantSuccess:    true,
			wantText:       profile.EmptyReply,
			wantResponseID: "resp_4",
		},
		{
			name:     "remote call fails",
			userText: "What is the CTBTO?",
			setupMocks: func(m *MockResponseClient) {
				m.EXPECT().Respond(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantSuccess: false,
			wantContains: []string{
				profile.ErrorApology,
				profile.ErrorReassurance,
				"Error: connection refused",
			},
		},
		{
			name:     "authentication fault keeps sentinel",
			userText: "What is the CTBTO?",
			setupMocks: func(m *MockResponseClient) {
				m.EXPECT().Respond(gomock.Any(), gomock.Any()).Return(nil, llm.ErrAuth)
			},
			wantSuccess:  false,
			wantContains: []string{llm.ErrAuth.Error()},
			wantErr:      llm.ErrAuth,
		},
		{
			name:     "nil response without error",
			userText: "What is the CTBTO?",
			setupMocks: func(m *MockResponseClient) {
				m.EXPECT().Respond(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantSuccess:  false,
			wantContains: []string{"Error: empty response"},
			wantErr:      llm.ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockResponseClient(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(mockClient)
			}

			p := NewProcessor(mockClient, profile, discardLogger())
			got := p.Process(context.Background(), tt.userText, tt.previousID)

			if got.Success != tt.wantSuccess {
				t.Fatalf("Process() success = %v, want %v (text %q)", got.Success, tt.wantSuccess, got.Text)
			}
			if got.Text == "" {
				t.Errorf("Process() text is empty")
			}

			if tt.wantSuccess {
				if got.Text != tt.wantText {
					t.Errorf("Process() text = %q, want %q", got.Text, tt.wantText)
				}
				if got.ResponseID != tt.wantResponseID {
					t.Errorf("Process() response id = %q, want %q", got.ResponseID, tt.wantResponseID)
				}
				if got.ErrorDetail != "" || got.Err != nil {
					t.Errorf("Process() error detail = %q, err = %v, want none", got.ErrorDetail, got.Err)
				}
				return
			}

			if got.ResponseID != "" {
				t.Errorf("Process() response id = %q, want empty on failure", got.ResponseID)
			}
			if got.ErrorDetail == "" {
				t.Errorf("Process() error detail is empty on failure")
			}
			if !strings.Contains(got.Text, got.ErrorDetail) {
				t.Errorf("Process() text = %q, want containing error detail %q", got.Text, got.ErrorDetail)
			}
			if !strings.HasPrefix(got.Text, profile.ErrorApology) {
				t.Errorf("Process() text = %q, want prefix %q", got.Text, profile.ErrorApology)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got.Text, want) {
					t.Errorf("Process() text = %q, want containing %q", got.Text, want)
				}
			}
			if tt.wantErr != nil && !errors.Is(got.Err, tt.wantErr) {
				t.Errorf("Process() err = %v, want errors.Is %v", got.Err, tt.wantErr)
			}
		})
	}
}

func TestProcessor_ProcessSimple(t *testing.T) {
	tests := []struct {
		name     string
		response *llm.Response
		err      error
	}{
		{
			name:     "success",
			response: &llm.Response{ID: "resp_1", Text: "The CTBTO is going to save humanity."},
		},
		{
			name: "failure",
			err:  errors.New("timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockResponseClient(ctrl)
			// ProcessSimple never threads a previous response id
			mockClient.EXPECT().Respond(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, req llm.Request) (*llm.Response, error) {
					if req.PreviousResponseID != "" {
						t.Errorf("Respond() previous response id = %q, want empty", req.PreviousResponseID)
					}
					return tt.response, tt.err
				},
			).Times(2)

			p := NewProcessor(mockClient, DefaultProfile(), discardLogger())

			simple := p.ProcessSimple(context.Background(), "Tell me about nuclear test ban verification")
			full := p.Process(context.Background(), "Tell me about nuclear test ban verification", "")

			if simple != full.Text {
				t.Errorf("ProcessSimple() = %q, want %q", simple, full.Text)
			}
		})
	}
}

func TestProcessor_Conversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockResponseClient(ctrl)

	var captured []llm.Request
	mockClient.EXPECT().Respond(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, req llm.Request) (*llm.Response, error) {
			captured = append(captured, req)
			return &llm.Response{ID: fmt.Sprintf("resp_%d", len(captured)), Text: "ok"}, nil
		},
	).Times(2)

	p := NewProcessor(mockClient, DefaultProfile(), discardLogger())

	first := p.Process(context.Background(), "What is the CTBTO?", "")
	second := p.Process(context.Background(), "Can you tell me more about their monitoring system?", first.ResponseID)

	if captured[0].PreviousResponseID != "" {
		t.Errorf("first request previous response id = %q, want empty", captured[0].PreviousResponseID)
	}
	if captured[1].PreviousResponseID != first.ResponseID {
		t.Errorf("second request previous response id = %q, want %q", captured[1].PreviousResponseID, first.ResponseID)
	}
	if second.ResponseID != "resp_2" {
		t.Errorf("second response id = %q, want %q", second.ResponseID, "resp_2")
	}
}

func TestProcessor_CustomProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	profile := Profile{
		Instructions: "You answer questions about seismology.",
		Model:        "gpt-4o-mini",
		Temperature:  0.2,
		EmptyReply:   "No answer.",
		ErrorApology: "Sorry.",
		Keywords:     []string{"quake"},
	}

	mockClient := NewMockResponseClient(ctrl)
	mockClient.EXPECT().Respond(gomock.Any(), llm.Request{
		Instructions: "You answer questions about seismology.",
		Model:        "gpt-4o-mini",
		Input:        "hi",
		Temperature:  0.2,
	}).Return(nil, errors.New("boom"))

	p := NewProcessor(mockClient, profile, discardLogger())
	got := p.Process(context.Background(), "hi", "")

	if got.Text != "Sorry. Error: boom" {
		t.Errorf("Process() text = %q, want %q", got.Text, "Sorry. Error: boom")
	}
	if !p.IsTopicRelated("Big QUAKE today") {
		t.Errorf("IsTopicRelated() = false, want true for profile keyword")
	}
	if p.IsTopicRelated("Tell me about the CTBTO") {
		t.Errorf("IsTopicRelated() = true, want false outside profile keywords")
	}
}

func TestProcessor_Process_SingleOutboundRequest(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"message": "upstream exploded", "type": "server_error"}}`))
	}))
	defer srv.Close()

	p := NewProcessor(llm.NewClient("sk-test", srv.URL+"/"), DefaultProfile(), discardLogger())
	got := p.Process(context.Background(), "hi", "")

	if got.Success {
		t.Fatalf("Process() success = true, want false")
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("Process() sent %d outbound requests, want exactly 1", n)
	}
	if !errors.Is(got.Err, llm.ErrRemoteCall) {
		t.Errorf("Process() err = %v, want errors.Is ErrRemoteCall", got.Err)
	}
	if strings.HasPrefix(got.ErrorDetail, llm.ErrRemoteCall.Error()) {
		t.Errorf("Process() error detail = %q, want the fault description without sentinel prefix", got.ErrorDetail)
	}
}

func TestProcessor_Process_MissingKeyDetail(t *testing.T) {
	p := NewProcessor(llm.NewClient("", ""), DefaultProfile(), discardLogger())
	got := p.Process(context.Background(), "What is the CTBTO?", "")

	if got.ErrorDetail != "OPENAI_API_KEY is not set" {
		t.Errorf("Process() error detail = %q, want %q", got.ErrorDetail, "OPENAI_API_KEY is not set")
	}
	if !strings.HasSuffix(got.Text, "Error: OPENAI_API_KEY is not set") {
		t.Errorf("Process() text = %q, want fault description at the end", got.Text)
	}
	if !errors.Is(got.Err, llm.ErrAuth) {
		t.Errorf("Process() err = %v, want errors.Is ErrAuth", got.Err)
	}
}
