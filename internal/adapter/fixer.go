package adapter

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	m "github.com/mouse-blink/remedy/internal/model"
)

const fixSystemPrompt = "You are an automated bot that fixes Python code issues based on the provided issue report."

const fixPromptTemplate = `Fix the following issue in the Python code:

Issue description:
%s

Problematic line:
%s

Here's the current content of the file:

%s

Please provide only the entire fixed content of the file addressing the issue listed above, do not provide any explanation, do not wrap the response with backticks.`

// FixerAdapter asks an external text-generation service for replacement file
// content addressing one issue. Implementations must be safe for concurrent
// use; one shared handle serves every in-flight file.
type FixerAdapter interface {
	// ProposeFix returns new content for the file the issue belongs to, built
	// against the current (possibly already mutated) content. The response is
	// returned verbatim: no validation that it differs, parses, or actually
	// addresses the issue.
	ProposeFix(ctx context.Context, issue m.Issue, content string) (string, error)
}

// OpenAIFixerAdapter drives an OpenAI-compatible chat-completion endpoint.
type OpenAIFixerAdapter struct {
	client *openai.Client
	model  string
}

// NewOpenAIFixerAdapter constructs a fixer against the given credential.
// baseURL overrides the service endpoint when non-empty, for compatible
// self-hosted gateways.
func NewOpenAIFixerAdapter(apiKey, baseURL, model string) *OpenAIFixerAdapter {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &OpenAIFixerAdapter{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// ProposeFix sends one remediation request and returns the raw replacement
// content from the first choice.
func (a *OpenAIFixerAdapter) ProposeFix(ctx context.Context, issue m.Issue, content string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fixSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildFixPrompt(issue, content)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("fix request for %s: %w", issue.Filename, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("fix response for %s contained no choices", issue.Filename)
	}

	return resp.Choices[0].Message.Content, nil
}

// buildFixPrompt embeds the issue message, the offending line looked up in
// the current content, and the entire content.
func buildFixPrompt(issue m.Issue, content string) string {
	return fmt.Sprintf(fixPromptTemplate, issue.Message, issueLine(content, issue.Location.Row), content)
}

// issueLine returns the 1-indexed row from content. Rows are never
// recomputed after a fix shifts the content, so a row past the end resolves
// to an empty line rather than an error.
func issueLine(content string, row uint) string {
	if row == 0 {
		return ""
	}

	lines := strings.Split(content, "\n")
	if int(row) > len(lines) {
		return ""
	}

	return lines[row-1]
}
