// Command ask runs sample exchanges against the agent and prints them.
//
//	export OPENAI_API_KEY=sk-...
//	go run ./cmd/ask
//	go run ./cmd/ask -interactive
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/vokinneberg/ctbto-agent/internal/agent"
	"github.com/vokinneberg/ctbto-agent/internal/config"
	"github.com/vokinneberg/ctbto-agent/internal/llm"
)

var sampleQuestions = []string{
	"Tell me about nuclear test ban verification",
	"How does the CTBTO help with global peace?",
	"What is the weather like today?",
}

func main() {
	if err := config.LoadEnvFiles(); err != nil {
		slog.Error("Failed to load env files", "error", err)
		os.Exit(1)
	}

	var interactive bool
	cfg, err := config.LoadConfig("ask", os.Args[1:], func(fs *flag.FlagSet) {
		fs.BoolVar(&interactive, "interactive", false, "Chat in a prompt loop instead of running the sample exchanges")
	})
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Printf("ERROR: %v\n", err)
		fmt.Println("Please set your OpenAI API key: export OPENAI_API_KEY='your-api-key-here'")
		os.Exit(1)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	profile, err := agent.LoadProfile(cfg.ProfilePath)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}

	processor := agent.NewProcessor(llm.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL), profile, logger)

	ctx := context.Background()
	if interactive {
		err = runInteractive(ctx, os.Stdout, processor, askQuestion)
	} else {
		runSamples(ctx, os.Stdout, processor)
	}
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		os.Exit(1)
	}
}

// runSamples prints a two-turn conversation, then the simple interface over sampleQuestions
func runSamples(ctx context.Context, w io.Writer, p *agent.Processor) {
	fmt.Fprintln(w, "=== Conversation State ===")

	question1 := "What is the CTBTO?"
	fmt.Fprintf(w, "\nQuestion 1: %s\n", question1)
	result1 := p.Process(ctx, question1, "")
	fmt.Fprintf(w, "Response 1: %s\n", result1.Text)
	fmt.Fprintf(w, "Response ID: %s\n", displayID(result1))

	question2 := "Can you tell me more about their monitoring system?"
	fmt.Fprintf(w, "\nQuestion 2: %s\n", question2)
	result2 := p.Process(ctx, question2, result1.ResponseID)
	fmt.Fprintf(w, "Response 2: %s\n", result2.Text)
	fmt.Fprintf(w, "Response ID: %s\n", displayID(result2))

	fmt.Fprintln(w, "\n=== Simple Interface ===")

	for _, question := range sampleQuestions {
		fmt.Fprintf(w, "\nQuestion: %s\n", question)
		fmt.Fprintf(w, "Topic related: %v\n", p.IsTopicRelated(question))
		fmt.Fprintf(w, "Response: %s\n", p.ProcessSimple(ctx, question))
		fmt.Fprintln(w, strings.Repeat("-", 80))
	}
}

// askFunc reads one line from the user; io.EOF ends the session
type askFunc func() (string, error)

func askQuestion() (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: "You:"}, &answer); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", io.EOF
		}
		return "", err
	}
	return answer, nil
}

// runInteractive keeps threading the last successful response id into the next question.
// A failed turn leaves the conversation pointer where it was.
func runInteractive(ctx context.Context, w io.Writer, p *agent.Processor, ask askFunc) error {
	fmt.Fprintln(w, "Chat with the agent (type 'quit' to exit)")

	previousID := ""
	for {
		question, err := ask()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		question = strings.TrimSpace(question)
		if question == "" {
			continue
		}
		if question == "quit" || question == "exit" {
			return nil
		}

		result := p.Process(ctx, question, previousID)
		if result.Success {
			previousID = result.ResponseID
		}

		fmt.Fprintf(w, "Agent: %s\n", result.Text)
		fmt.Fprintf(w, "  [topic related: %v, response id: %s]\n", p.IsTopicRelated(question), displayID(result))
	}
}

func displayID(r agent.Result) string {
	if r.ResponseID == "" {
		return "none"
	}
	return r.ResponseID
}
