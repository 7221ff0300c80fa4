package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"DishCraft-Backend/domain"

	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.groq.com/openai/v1"
	defaultModel   = "llama-3.3-70b-versatile"

	// The model occasionally rambles; cap output so a runaway completion
	// cannot stall the request.
	maxTokens = 1000

	systemPrompt = "You are a recipe generator. Return valid JSON in the specified language."
)

type (
	// GenerationClient calls the external model with a composed prompt and
	// returns a validated recipe, or an upstream format/schema error.
	GenerationClient interface {
		Generate(ctx context.Context, prompt string) (*GeneratedRecipe, error)
	}

	// GeneratedRecipe is the validated, renumbered model output.
	GeneratedRecipe struct {
		RecipeName  string
		Ingredients []string
		Steps       []domain.Step
	}

	groqClient struct {
		apiKey     string
		model      string
		baseURL    string
		httpClient *http.Client
		logger     *zap.Logger
	}
)

// Groq exposes an OpenAI-compatible chat completions API.
type (
	chatMessage struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}

	responseFormat struct {
		Type string `json:"type"`
	}

	chatCompletionRequest struct {
		Model          string         `json:"model"`
		Messages       []chatMessage  `json:"messages"`
		ResponseFormat responseFormat `json:"response_format"`
		MaxTokens      int            `json:"max_tokens"`
	}

	chatCompletionResponse struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
)

func NewGroqClient(apiKey, model, baseURL string, logger *zap.Logger) GenerationClient {
	if model == "" {
		model = defaultModel
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &groqClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

func (c *groqClient) Generate(ctx context.Context, prompt string) (*GeneratedRecipe, error) {
	body := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
		MaxTokens:      maxTokens,
	}

	requestJSON, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("groq API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("groq API returned no choices")
	}

	return c.parseRecipe(completion.Choices[0].Message.Content)
}

// parseRecipe enforces the structured-output contract. A response that is not
// JSON at all is a format error; JSON of the wrong shape is a schema error.
// The raw payload is logged in both cases so bad completions can be diagnosed.
func (c *groqClient) parseRecipe(content string) (*GeneratedRecipe, error) {
	var node interface{}
	if err := json.Unmarshal([]byte(content), &node); err != nil {
		c.logger.Error("model response is not valid JSON",
			zap.String("raw_response", content),
			zap.Error(err),
		)
		return nil, domain.ErrUpstreamFormat
	}

	obj, ok := node.(map[string]interface{})
	if !ok {
		return nil, c.schemaError(content, "top-level value is not an object")
	}

	name, _ := obj["recipe"].(string)
	if name == "" {
		// Some completions put the title under "description" instead.
		name, _ = obj["description"].(string)
	}
	if name == "" {
		return nil, c.schemaError(content, "missing recipe name")
	}

	rawIngredients, ok := obj["ingredients"].([]interface{})
	if !ok {
		return nil, c.schemaError(content, "ingredients is not an array")
	}
	ingredients := make([]string, 0, len(rawIngredients))
	for _, raw := range rawIngredients {
		ing, ok := raw.(string)
		if !ok {
			return nil, c.schemaError(content, "ingredient is not a string")
		}
		ingredients = append(ingredients, ing)
	}

	rawSteps, ok := obj["steps"].([]interface{})
	if !ok || len(rawSteps) == 0 {
		return nil, c.schemaError(content, "steps missing or empty")
	}

	// Number steps by position. Whatever numbering the model supplied is
	// discarded; the contract is 1..N with no gaps.
	steps := make([]domain.Step, 0, len(rawSteps))
	for i, raw := range rawSteps {
		stepObj, ok := raw.(map[string]interface{})
		if !ok {
			return nil, c.schemaError(content, "step is not an object")
		}
		instruction, ok := stepObj["instruction"].(string)
		if !ok || instruction == "" {
			return nil, c.schemaError(content, "step missing instruction")
		}
		stepTime, _ := stepObj["time"].(string)
		steps = append(steps, domain.Step{
			StepNumber:  i + 1,
			Instruction: instruction,
			Time:        stepTime,
		})
	}

	return &GeneratedRecipe{
		RecipeName:  name,
		Ingredients: ingredients,
		Steps:       steps,
	}, nil
}

func (c *groqClient) schemaError(content, reason string) error {
	c.logger.Error("model response has invalid recipe structure",
		zap.String("reason", reason),
		zap.String("raw_response", content),
	)
	return domain.ErrUpstreamSchema
}
