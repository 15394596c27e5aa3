package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case AllLeaderboards:
		for _, game := range []string{"technicalQuiz", "towerOfHanoi", "wordScramble"} {
			if board, ok := v[game]; ok {
				o.printLeaderboard(board)
				fmt.Println()
			}
		}
	case QuizSession:
		o.printQuizSession(v)
	case AnswerResult:
		o.printAnswerResult(v)
	case HanoiSession:
		o.printHanoiSession(v)
	case GuessResult:
		o.printGuessResult(v)
	case ScrambleSession:
		o.printScrambleSession(v)
	case HealthResult:
		fmt.Printf("Server status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Age       int    `json:"age"`
	CreatedAt string `json:"createdAt"`
	Scores    struct {
		TechnicalQuiz int `json:"technicalQuiz"`
		TowerOfHanoi  int `json:"towerOfHanoi"`
		WordScramble  int `json:"wordScramble"`
	} `json:"scores"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// Leaderboard response type
type Leaderboard struct {
	Game    string             `json:"game"`
	Podium  []LeaderboardEntry `json:"podium"`
	Entries []LeaderboardEntry `json:"entries"`
}

// AllLeaderboards maps game keys to boards
type AllLeaderboards map[string]Leaderboard

// Question response type
type Question struct {
	Number  int      `json:"number"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

// QuizSession response type
type QuizSession struct {
	ID         string    `json:"id"`
	State      string    `json:"state"`
	Topic      string    `json:"topic"`
	Difficulty string    `json:"difficulty"`
	Generated  bool      `json:"generated"`
	Current    int       `json:"current"`
	Total      int       `json:"total"`
	Correct    int       `json:"correct"`
	Score      int       `json:"score"`
	Question   *Question `json:"currentQuestion"`
}

// AnswerResult response type
type AnswerResult struct {
	Correct       bool        `json:"correct"`
	CorrectOption int         `json:"correctOption"`
	Session       QuizSession `json:"session"`
}

// HanoiSession response type
type HanoiSession struct {
	ID       string  `json:"id"`
	State    string  `json:"state"`
	Disks    int     `json:"disks"`
	Policy   string  `json:"policy"`
	Rods     [][]int `json:"rods"`
	Moves    int     `json:"moves"`
	MinMoves int     `json:"minMoves"`
	Score    int     `json:"score"`
}

// ScrambleSession response type
type ScrambleSession struct {
	ID         string `json:"id"`
	State      string `json:"state"`
	Difficulty string `json:"difficulty"`
	Generated  bool   `json:"generated"`
	Current    int    `json:"current"`
	Total      int    `json:"total"`
	Correct    int    `json:"correct"`
	Score      int    `json:"score"`
	Scrambled  string `json:"scrambledWord"`
}

// GuessResult response type
type GuessResult struct {
	Correct bool            `json:"correct"`
	Word    string          `json:"word"`
	Session ScrambleSession `json:"session"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s\n", p.Name)
	fmt.Printf("  ID:    %s\n", p.ID)
	fmt.Printf("  Email: %s\n", p.Email)
	fmt.Printf("  Age:   %d\n", p.Age)
	fmt.Println("  Scores:")
	fmt.Printf("    Technical Quiz: %d\n", p.Scores.TechnicalQuiz)
	fmt.Printf("    Tower of Hanoi: %d\n", p.Scores.TowerOfHanoi)
	fmt.Printf("    Word Scramble:  %d\n", p.Scores.WordScramble)
}

func (o *Output) printLeaderboard(b Leaderboard) {
	fmt.Printf("Leaderboard: %s\n", b.Game)
	if len(b.Podium) == 0 {
		fmt.Println("  (no scores yet)")
		return
	}
	for _, e := range b.Podium {
		fmt.Printf("  %2d. %-20s %4d\n", e.Rank, e.Name, e.Score)
	}
	for _, e := range b.Entries {
		fmt.Printf("  %2d. %-20s %4d\n", e.Rank, e.Name, e.Score)
	}
}

func (o *Output) printQuizSession(s QuizSession) {
	fmt.Printf("Quiz session %s [%s]\n", s.ID, s.State)
	fmt.Printf("  Topic: %s (%s)\n", s.Topic, s.Difficulty)
	if !s.Generated {
		fmt.Println("  (using built-in question set)")
	}
	fmt.Printf("  Progress: %d/%d answered, %d correct\n", s.Current, s.Total, s.Correct)
	if s.State == "completed" {
		fmt.Printf("  Final score: %d\n", s.Score)
		return
	}
	o.printQuestion(s.Question)
}

func (o *Output) printQuestion(q *Question) {
	if q == nil {
		return
	}
	fmt.Printf("\nQ%d: %s\n", q.Number, q.Prompt)
	for i, opt := range q.Options {
		fmt.Printf("  [%d] %s\n", i, opt)
	}
}

func (o *Output) printAnswerResult(r AnswerResult) {
	if r.Correct {
		fmt.Println("Correct!")
	} else {
		fmt.Printf("Wrong - the correct option was [%d]\n", r.CorrectOption)
	}
	if r.Session.State == "completed" {
		fmt.Printf("Quiz complete: %d/%d correct, score %d\n",
			r.Session.Correct, r.Session.Total, r.Session.Score)
		return
	}
	o.printQuestion(r.Session.Question)
}

func (o *Output) printHanoiSession(s HanoiSession) {
	fmt.Printf("Tower of Hanoi session %s [%s]\n", s.ID, s.State)
	fmt.Printf("  Disks: %d  Moves: %d (optimal %d)\n", s.Disks, s.Moves, s.MinMoves)
	for i, rod := range s.Rods {
		fmt.Printf("  Rod %d: %s\n", i, formatRod(rod))
	}
	if s.State == "completed" {
		fmt.Printf("  Final score: %d\n", s.Score)
	}
}

func formatRod(rod []int) string {
	if len(rod) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(rod))
	for i, d := range rod {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return strings.Join(parts, " ")
}

func (o *Output) printScrambleSession(s ScrambleSession) {
	fmt.Printf("Word scramble session %s [%s]\n", s.ID, s.State)
	fmt.Printf("  Difficulty: %s\n", s.Difficulty)
	if !s.Generated {
		fmt.Println("  (using built-in word set)")
	}
	fmt.Printf("  Progress: %d/%d words, %d correct\n", s.Current, s.Total, s.Correct)
	if s.State == "completed" {
		fmt.Printf("  Final score: %d\n", s.Score)
		return
	}
	fmt.Printf("\nUnscramble: %s\n", s.Scrambled)
}

func (o *Output) printGuessResult(r GuessResult) {
	if r.Correct {
		fmt.Printf("Correct! The word was %s\n", r.Word)
	} else {
		fmt.Printf("Wrong - the word was %s\n", r.Word)
	}
	if r.Session.State == "completed" {
		fmt.Printf("Scramble complete: %d/%d correct, score %d\n",
			r.Session.Correct, r.Session.Total, r.Session.Score)
		return
	}
	fmt.Printf("\nUnscramble: %s\n", r.Session.Scrambled)
}
