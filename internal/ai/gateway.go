// Package ai is the thin boundary to the external generative model. It
// builds schema-constrained prompts, sends them through langchaingo, and
// decodes the JSON replies into typed results. It holds no state of its own.
package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"kitchen-app-go/internal/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/schema"
)

// ExpenseItem is one proposed ledger line parsed from text or a receipt.
type ExpenseItem struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	Date        string  `json:"date,omitempty"`
}

// BookkeepingResult is the model's answer to a bookkeeping turn.
type BookkeepingResult struct {
	ResponseText string        `json:"responseText"`
	Items        []ExpenseItem `json:"items"`
}

// RecipeIngredient is one ingredient line of an imported recipe draft.
type RecipeIngredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount,omitempty"`
	Unit   string  `json:"unit,omitempty"`
}

// RecipeStep is one instruction of an imported recipe draft.
type RecipeStep struct {
	Instruction string `json:"instruction"`
	Image       string `json:"image,omitempty"`
}

// RecipeDraft is a structured recipe parsed from freeform text. It is not a
// domain recipe yet; the assistant holds it until the user confirms or
// cancels the import.
type RecipeDraft struct {
	Name        string             `json:"name"`
	Category    string             `json:"category,omitempty"`
	Image       string             `json:"image,omitempty"`
	Ingredients []RecipeIngredient `json:"ingredients"`
	Steps       []RecipeStep       `json:"steps"`
}

const bookkeepingPrompt = `You are a bookkeeping assistant for a household kitchen app.
The user describes spending in freeform text and/or attaches a receipt photo.
Extract every expense you can find and answer ONLY with a JSON object of this exact shape:
{"items":[{"amount":number,"description":string,"category":string,"date":"YYYY-MM-DD"}],"responseText":string}
"amount" and "description" are required for every item.
"category" must be one of: eat, life, rent, play.
Omit "date" if the user did not mention one.
"responseText" is a short friendly acknowledgement of what you logged.
If there is nothing to log, return an empty items array and explain in responseText.`

const recipePrompt = `You are a recipe parser for a household kitchen app.
The user pastes freeform recipe text. Convert it and answer ONLY with a JSON object of this exact shape:
{"name":string,"category":string,"image":string,"ingredients":[{"name":string,"amount":number,"unit":string}],"steps":[{"instruction":string,"image":string}]}
"name", "ingredients" and "steps" are required. Preserve the step order of the source text.
Omit fields you cannot determine.`

// Client calls the configured generative model.
type Client struct {
	llm     llms.Model
	timeout time.Duration
}

func NewClient(ctx context.Context, cfg config.AIConfig) (*Client, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("ai: init client: %w", err)
	}
	return &Client{llm: llm, timeout: cfg.Timeout}, nil
}

// ParseExpenses sends a bookkeeping turn: instructions, today's date, the
// user text, and the receipt image when present (as a binary part with the
// MIME type sniffed from its data-URI prefix).
func (c *Client) ParseExpenses(ctx context.Context, text, imageDataURI string) (*BookkeepingResult, error) {
	parts := []llms.ContentPart{
		llms.TextPart(fmt.Sprintf("Today is %s.", time.Now().Format("2006-01-02"))),
	}
	if imageDataURI != "" {
		mime, data, err := DecodeDataURI(imageDataURI)
		if err != nil {
			return nil, &ParseError{Err: err}
		}
		parts = append(parts, llms.BinaryPart(mime, data))
	}
	if text != "" {
		parts = append(parts, llms.TextPart(text))
	}

	raw, err := c.generate(ctx, bookkeepingPrompt, parts)
	if err != nil {
		return nil, err
	}

	return decodeBookkeeping(raw)
}

// ParseRecipe sends a recipe-import request for a block of freeform text.
func (c *Client) ParseRecipe(ctx context.Context, text string) (*RecipeDraft, error) {
	raw, err := c.generate(ctx, recipePrompt, []llms.ContentPart{llms.TextPart(text)})
	if err != nil {
		return nil, err
	}

	return decodeRecipe(raw)
}

func (c *Client) generate(ctx context.Context, system string, parts []llms.ContentPart) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	messages := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		{Role: schema.ChatMessageTypeHuman, Parts: parts},
	}

	resp, err := c.llm.GenerateContent(ctx, messages, llms.WithJSONMode())
	if err != nil {
		return "", classify(err)
	}
	if len(resp.Choices) == 0 {
		return "", &APIError{Err: fmt.Errorf("empty response")}
	}

	return resp.Choices[0].Content, nil
}

func decodeBookkeeping(raw string) (*BookkeepingResult, error) {
	var result BookkeepingResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, &ParseError{Err: err}
	}

	items := make([]ExpenseItem, 0, len(result.Items))
	for _, item := range result.Items {
		if strings.TrimSpace(item.Description) == "" {
			continue
		}
		items = append(items, item)
	}
	result.Items = items

	return &result, nil
}

func decodeRecipe(raw string) (*RecipeDraft, error) {
	var draft RecipeDraft
	if err := json.Unmarshal([]byte(stripFences(raw)), &draft); err != nil {
		return nil, &ParseError{Err: err}
	}
	if strings.TrimSpace(draft.Name) == "" || len(draft.Ingredients) == 0 || len(draft.Steps) == 0 {
		return nil, &ParseError{Err: fmt.Errorf("missing required recipe fields")}
	}
	return &draft, nil
}

// stripFences removes a markdown code fence around a JSON reply. Models add
// them even when asked not to.
func stripFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// DecodeDataURI splits a data URI into MIME type and raw bytes. Input without
// a recognizable prefix is treated as bare base64 jpeg data.
func DecodeDataURI(uri string) (string, []byte, error) {
	mime := "image/jpeg"
	payload := uri

	if strings.HasPrefix(uri, "data:") {
		rest := strings.TrimPrefix(uri, "data:")
		meta, encoded, found := strings.Cut(rest, ",")
		if !found {
			return "", nil, fmt.Errorf("malformed data uri")
		}
		if detected, _, ok := strings.Cut(meta, ";"); ok && detected != "" {
			mime = detected
		} else if meta != "" && !strings.Contains(meta, ";") {
			mime = meta
		}
		payload = encoded
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode image: %w", err)
	}

	return mime, data, nil
}
