package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/orgablast/sembconnect/internal/entities"
)

const maxTokens = 1024

// Claude asks an Anthropic model which employee groupings a draft targets.
type Claude struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClaude creates a model-backed suggester.
func NewClaude(apiKey, model string) Claude {
	return Claude{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  anthropic.Model(model),
	}
}

// Suggest implements Suggester.
func (c Claude) Suggest(ctx context.Context, content string, employees []entities.Employee) (*Groupings, error) {
	roster, err := json.Marshal(employees)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(content, string(roster)))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call model: %w", err)
	}

	if len(msg.Content) == 0 {
		return nil, fmt.Errorf("empty model response")
	}

	raw, err := extractJSON(msg.Content[0].Text)
	if err != nil {
		return nil, err
	}

	var out Groupings
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model response: %w", err)
	}

	if len(out.SuggestedGroupings) == 0 {
		return nil, fmt.Errorf("model suggested no groupings")
	}

	return &out, nil
}

func buildPrompt(content, roster string) string {
	return fmt.Sprintf(`You are an internal communications assistant.

Given the announcement draft below and the employee roster, suggest which groupings of employees the announcement should be delivered to.

Announcement:
%s

Employee roster:
%s

Output ONLY a valid JSON object matching this exact schema:
{
  "suggestedGroupings": ["<grouping name>", "..."],
  "reasoning": "<one or two sentences explaining the choice>"
}

Rules:
- Grouping names are departments, roles, or "All Employees"
- Suggest the narrowest set of groupings that covers everyone affected
- Output ONLY the JSON, no markdown, no explanations`, content, roster)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}

	raw := s[start : end+1]
	if !json.Valid([]byte(raw)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}

	return raw, nil
}
