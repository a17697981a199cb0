package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"swasthya-bot/internal/intent"
	"swasthya-bot/internal/lang"
)

// ErrUnavailable is returned when the backend is not configured or gave no
// usable output. Callers must treat it as "no answer" and fall back to
// static content; it is never surfaced to the user.
var ErrUnavailable = errors.New("llm: backend unavailable")

// Generator produces free-form guidance text under the safety preamble.
type Generator interface {
	Generate(ctx context.Context, prompt string, tag lang.Language) (string, error)
}

// Classifier maps raw user text to a structured intent. A nil intent with
// a nil error means the classifier could not produce a usable result.
type Classifier interface {
	Classify(ctx context.Context, text string, tag lang.Language) (*intent.Intent, error)
}

// OpenAIClient implements Generator and Classifier against the OpenAI chat
// completion API. Credentials and the model name are loaded from
// environment variables.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient constructs an OpenAI-backed client. It reads the API key
// and model name from the environment and falls back to a sensible default
// model. With no API key the client stays nil and every call reports
// ErrUnavailable.
func NewOpenAIClient() *OpenAIClient {
	apiKey := os.Getenv("OPENAI_API_KEY")
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}
	c := &OpenAIClient{model: model}
	if apiKey != "" {
		c.client = openai.NewClient(apiKey)
	}
	return c
}

// Generate sends prompt under the safety preamble and returns the model's
// text. Errors and empty completions both report ErrUnavailable so the
// caller's static fallback always kicks in.
func (c *OpenAIClient) Generate(ctx context.Context, prompt string, tag lang.Language) (string, error) {
	if c.client == nil {
		return "", ErrUnavailable
	}
	user := prompt
	if tag != lang.Default {
		user = fmt.Sprintf("Language: %s.\n%s", tag, prompt)
	}
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SafetyPreamble},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	text := firstChoice(resp)
	if text == "" {
		return "", ErrUnavailable
	}
	return text, nil
}

// Classify asks the model for a structured intent over the raw user text.
// The reply is parsed leniently: the payload is extracted between the
// outermost braces and any parse failure or missing name yields (nil, nil),
// which callers treat identically to an unknown intent.
func (c *OpenAIClient) Classify(ctx context.Context, text string, tag lang.Language) (*intent.Intent, error) {
	if c.client == nil || text == "" {
		return nil, nil
	}
	var b strings.Builder
	b.WriteString(classifierInstructions)
	b.WriteString("\n")
	b.WriteString(classifierSchema)
	if tag != lang.Default {
		fmt.Fprintf(&b, "\nLanguage: %s.", tag)
	}
	b.WriteString("\nMessage: ")
	b.WriteString(text)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: b.String()},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, nil
	}
	return ParseIntentJSON(firstChoice(resp)), nil
}

// ParseIntentJSON extracts and decodes the classifier's structured payload
// from surrounding text. It returns nil for anything that does not decode
// to an intent with a valid name.
func ParseIntentJSON(out string) *intent.Intent {
	start := strings.Index(out, "{")
	end := strings.LastIndex(out, "}")
	if start == -1 || end == -1 || end < start {
		return nil
	}
	var payload struct {
		Name      string  `json:"name"`
		Disease   *string `json:"disease"`
		Area      *string `json:"area"`
		ChildName *string `json:"childName"`
		DOB       *string `json:"dob"`
	}
	if err := json.Unmarshal([]byte(out[start:end+1]), &payload); err != nil {
		return nil
	}
	name := intent.Name(payload.Name)
	if payload.Name == "" || !name.Valid() {
		return nil
	}
	it := &intent.Intent{Name: name}
	if payload.Disease != nil {
		it.Disease = *payload.Disease
	}
	if payload.Area != nil {
		it.Area = *payload.Area
	}
	if payload.ChildName != nil {
		it.ChildName = *payload.ChildName
	}
	if payload.DOB != nil {
		it.DOB = *payload.DOB
	}
	return it
}

func firstChoice(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
