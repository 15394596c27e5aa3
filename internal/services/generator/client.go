// Package generator produces quiz questions and scramble words through an
// external text-generation API. The API is strictly best-effort: any
// transport, shape, or validation failure is recovered locally by
// substituting the built-in fallback content, so a game can always start.
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Difficulty selects the content difficulty band
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ErrInvalidDifficulty is returned when parsing an unknown difficulty
var ErrInvalidDifficulty = errors.New("difficulty must be easy, medium or hard")

// ParseDifficulty validates a difficulty string
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(s)) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(strings.ToLower(s)), nil
	}
	return "", ErrInvalidDifficulty
}

// QuestionCount is the fixed number of questions per quiz session
const QuestionCount = 10

// WordCount is the fixed number of words per scramble session
const WordCount = 5

// OptionCount is the fixed number of options per question
const OptionCount = 4

// Question is one multiple-choice quiz question
type Question struct {
	ID            int      `json:"id"`
	Prompt        string   `json:"question"`
	Options       []string `json:"options"`
	CorrectOption int      `json:"correctAnswer"`
}

// Config holds generation API settings
type Config struct {
	// APIKey authorizes requests; when empty, the client serves fallback
	// content without attempting any network call
	APIKey string

	// BaseURL is the API root (overridable for tests)
	BaseURL string

	// Model is the generation model name
	Model string

	// Timeout bounds each generation request
	Timeout time.Duration
}

// DefaultConfig returns the default generation settings
func DefaultConfig() Config {
	return Config{
		BaseURL: "https://generativelanguage.googleapis.com",
		Model:   "gemini-1.5-flash",
		Timeout: 15 * time.Second,
	}
}

// Client calls the generation API and validates its responses
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new generation client
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Questions returns a validated question set for the topic and difficulty.
// The second return value reports whether the set was remotely generated;
// false means the built-in fallback set was substituted.
func (c *Client) Questions(ctx context.Context, topic string, difficulty Difficulty) ([]Question, bool) {
	prompt := fmt.Sprintf(`Generate %d multiple choice questions about %s at %s difficulty level.
Each question must have exactly %d options and one correct answer.
Return JSON in the format: {"questions": [{"id": 1, "question": "...", "options": ["...", "...", "...", "..."], "correctAnswer": 0}]}`,
		QuestionCount, topic, difficulty, OptionCount)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("question generation failed, using fallback set",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)
		return FallbackQuestions(topic), false
	}

	var parsed struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		c.logger.Warn("question response unparseable, using fallback set",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)
		return FallbackQuestions(topic), false
	}

	if err := ValidateQuestions(parsed.Questions); err != nil {
		c.logger.Warn("question response invalid, using fallback set",
			slog.String("topic", topic),
			slog.String("error", err.Error()),
		)
		return FallbackQuestions(topic), false
	}

	return parsed.Questions, true
}

// Words returns a validated word set for the difficulty. The second return
// value reports whether the set was remotely generated.
func (c *Client) Words(ctx context.Context, difficulty Difficulty) ([]string, bool) {
	prompt := fmt.Sprintf(`Generate %d %s difficulty level words for a word scramble game.
The words should have these exact lengths:
- Easy: 4-5 letters, common words
- Medium: 5-6 letters, slightly challenging words
- Hard: 7-8 letters, complex or technical words

Return JSON in the format: {"words": ["word1", "word2", "word3", "word4", "word5"]}`,
		WordCount, difficulty)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("word generation failed, using fallback set",
			slog.String("difficulty", string(difficulty)),
			slog.String("error", err.Error()),
		)
		return FallbackWords(difficulty), false
	}

	var parsed struct {
		Words []string `json:"words"`
	}
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		c.logger.Warn("word response unparseable, using fallback set",
			slog.String("difficulty", string(difficulty)),
			slog.String("error", err.Error()),
		)
		return FallbackWords(difficulty), false
	}

	words := make([]string, len(parsed.Words))
	for i, w := range parsed.Words {
		words[i] = strings.ToUpper(strings.TrimSpace(w))
	}

	if err := ValidateWords(words, difficulty); err != nil {
		c.logger.Warn("word response invalid, using fallback set",
			slog.String("difficulty", string(difficulty)),
			slog.String("error", err.Error()),
		)
		return FallbackWords(difficulty), false
	}

	return words, true
}

// generate performs one generation request and extracts the response text
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.New("no API key configured")
	}

	body, err := json.Marshal(map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generation API returned status %d", resp.StatusCode)
	}

	text := gjson.GetBytes(respBody, "candidates.0.content.parts.0.text").String()
	if text == "" {
		return "", errors.New("generation response missing text")
	}

	return stripCodeFences(text), nil
}

// stripCodeFences removes a markdown code fence the model sometimes wraps
// its JSON in
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

// ValidateQuestions checks a question set's shape: exactly QuestionCount
// questions, each with OptionCount options and an in-range answer index
func ValidateQuestions(questions []Question) error {
	if len(questions) != QuestionCount {
		return fmt.Errorf("expected %d questions, got %d", QuestionCount, len(questions))
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Prompt) == "" {
			return fmt.Errorf("question %d has an empty prompt", i+1)
		}
		if len(q.Options) != OptionCount {
			return fmt.Errorf("question %d has %d options, want %d", i+1, len(q.Options), OptionCount)
		}
		if q.CorrectOption < 0 || q.CorrectOption >= OptionCount {
			return fmt.Errorf("question %d has answer index %d out of range", i+1, q.CorrectOption)
		}
	}
	return nil
}

// wordLengthBand returns the allowed word length range per difficulty
func wordLengthBand(difficulty Difficulty) (min, max int) {
	switch difficulty {
	case DifficultyMedium:
		return 5, 6
	case DifficultyHard:
		return 7, 8
	default:
		return 4, 5
	}
}

// ValidateWords checks a word set's shape: exactly WordCount words, each
// alphabetic and inside the difficulty's length band
func ValidateWords(words []string, difficulty Difficulty) error {
	if len(words) != WordCount {
		return fmt.Errorf("expected %d words, got %d", WordCount, len(words))
	}
	min, max := wordLengthBand(difficulty)
	for i, w := range words {
		if len(w) < min || len(w) > max {
			return fmt.Errorf("word %d (%q) outside %d-%d letter band", i+1, w, min, max)
		}
		for _, c := range w {
			if c < 'A' || c > 'Z' {
				return fmt.Errorf("word %d (%q) is not alphabetic", i+1, w)
			}
		}
	}
	return nil
}
