package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// geminiStub wraps generated text in the API's response envelope
func geminiStub(t *testing.T, text string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"parts": []map[string]string{{"text": text}},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func newTestClient(serverURL string) *Client {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = serverURL
	return New(cfg, discardLogger())
}

func validQuestionsJSON() string {
	questions := make([]Question, QuestionCount)
	for i := range questions {
		questions[i] = Question{
			ID:            i + 1,
			Prompt:        fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectOption: i % OptionCount,
		}
	}
	data, _ := json.Marshal(map[string]any{"questions": questions})
	return string(data)
}

func TestQuestionsGenerated(t *testing.T) {
	server := geminiStub(t, validQuestionsJSON(), http.StatusOK)
	defer server.Close()

	questions, generated := newTestClient(server.URL).Questions(context.Background(), "Go", DifficultyMedium)
	assert.True(t, generated)
	require.Len(t, questions, QuestionCount)
	assert.Equal(t, "Question 1?", questions[0].Prompt)
}

func TestQuestionsCodeFencedResponse(t *testing.T) {
	server := geminiStub(t, "```json\n"+validQuestionsJSON()+"\n```", http.StatusOK)
	defer server.Close()

	questions, generated := newTestClient(server.URL).Questions(context.Background(), "Go", DifficultyEasy)
	assert.True(t, generated)
	assert.Len(t, questions, QuestionCount)
}

func TestQuestionsFallbackWithoutAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	client := New(cfg, discardLogger())

	questions, generated := client.Questions(context.Background(), "Go", DifficultyEasy)
	assert.False(t, generated)
	require.Len(t, questions, QuestionCount)
	assert.Contains(t, questions[0].Prompt, "Go")
}

func TestQuestionsFallbackOnServerError(t *testing.T) {
	server := geminiStub(t, "", http.StatusInternalServerError)
	defer server.Close()

	_, generated := newTestClient(server.URL).Questions(context.Background(), "Go", DifficultyEasy)
	assert.False(t, generated)
}

func TestQuestionsFallbackOnMalformedJSON(t *testing.T) {
	server := geminiStub(t, "this is not json", http.StatusOK)
	defer server.Close()

	_, generated := newTestClient(server.URL).Questions(context.Background(), "Go", DifficultyEasy)
	assert.False(t, generated)
}

func TestQuestionsFallbackOnWrongShape(t *testing.T) {
	// Nine questions instead of ten
	questions := make([]Question, QuestionCount-1)
	for i := range questions {
		questions[i] = Question{Prompt: "Q?", Options: []string{"A", "B", "C", "D"}}
	}
	data, _ := json.Marshal(map[string]any{"questions": questions})

	server := geminiStub(t, string(data), http.StatusOK)
	defer server.Close()

	_, generated := newTestClient(server.URL).Questions(context.Background(), "Go", DifficultyEasy)
	assert.False(t, generated)
}

func TestWordsGenerated(t *testing.T) {
	data, _ := json.Marshal(map[string]any{"words": []string{"apple", "house", "water", "bread", "chair"}})
	server := geminiStub(t, string(data), http.StatusOK)
	defer server.Close()

	words, generated := newTestClient(server.URL).Words(context.Background(), DifficultyMedium)
	assert.True(t, generated)
	assert.Equal(t, []string{"APPLE", "HOUSE", "WATER", "BREAD", "CHAIR"}, words)
}

func TestWordsFallbackOnLengthBandViolation(t *testing.T) {
	// "go" is far below the medium band
	data, _ := json.Marshal(map[string]any{"words": []string{"go", "house", "water", "bread", "chair"}})
	server := geminiStub(t, string(data), http.StatusOK)
	defer server.Close()

	words, generated := newTestClient(server.URL).Words(context.Background(), DifficultyMedium)
	assert.False(t, generated)
	assert.Equal(t, FallbackWords(DifficultyMedium), words)
}

func TestValidateQuestions(t *testing.T) {
	valid := make([]Question, QuestionCount)
	for i := range valid {
		valid[i] = Question{Prompt: "Q?", Options: []string{"A", "B", "C", "D"}, CorrectOption: 3}
	}
	assert.NoError(t, ValidateQuestions(valid))

	tooFew := valid[:5]
	assert.Error(t, ValidateQuestions(tooFew))

	badIndex := make([]Question, QuestionCount)
	copy(badIndex, valid)
	badIndex[4].CorrectOption = 4
	assert.Error(t, ValidateQuestions(badIndex))

	threeOptions := make([]Question, QuestionCount)
	copy(threeOptions, valid)
	threeOptions[0].Options = []string{"A", "B", "C"}
	assert.Error(t, ValidateQuestions(threeOptions))
}

func TestValidateWords(t *testing.T) {
	assert.NoError(t, ValidateWords([]string{"BOOK", "TREE", "FISH", "LAMP", "STAR"}, DifficultyEasy))
	assert.NoError(t, ValidateWords([]string{"PROGRAM", "NETWORK", "SCIENCE", "LIBRARY", "JOURNEY"}, DifficultyHard))

	// Wrong count
	assert.Error(t, ValidateWords([]string{"BOOK"}, DifficultyEasy))
	// Outside band
	assert.Error(t, ValidateWords([]string{"BO", "TREE", "FISH", "LAMP", "STAR"}, DifficultyEasy))
	// Non-alphabetic
	assert.Error(t, ValidateWords([]string{"B00K", "TREE", "FISH", "LAMP", "STAR"}, DifficultyEasy))
}

func TestFallbackSetsAreValid(t *testing.T) {
	assert.NoError(t, ValidateQuestions(FallbackQuestions("Go")))
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		assert.NoError(t, ValidateWords(FallbackWords(d), d))
	}
}

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty("Easy")
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, d)

	_, err = ParseDifficulty("impossible")
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}
