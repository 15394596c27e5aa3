package response

import (
	"time"

	"github.com/Rishivarshney100/kuchbhi/internal/model"
	"github.com/Rishivarshney100/kuchbhi/internal/services/hanoi"
	"github.com/Rishivarshney100/kuchbhi/internal/services/quiz"
	"github.com/Rishivarshney100/kuchbhi/internal/services/scramble"
)

// Scores carries the per-game score map
type Scores struct {
	TechnicalQuiz int `json:"technicalQuiz"`
	TowerOfHanoi  int `json:"towerOfHanoi"`
	WordScramble  int `json:"wordScramble"`
}

// Player represents a player in API responses
type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
	Scores    Scores    `json:"scores"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:        string(p.ID),
		Name:      p.Name,
		Email:     p.Email,
		Age:       p.Age,
		CreatedAt: p.CreatedAt,
		Scores: Scores{
			TechnicalQuiz: p.Scores.TechnicalQuiz,
			TowerOfHanoi:  p.Scores.TowerOfHanoi,
			WordScramble:  p.Scores.WordScramble,
		},
	}
}

// LeaderboardEntry is one ranked row on a board
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// Leaderboard is the board for one game, split into the podium and the rest
type Leaderboard struct {
	Game    string             `json:"game"`
	Podium  []LeaderboardEntry `json:"podium"`
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromModel converts a ranked board
func LeaderboardFromModel(game model.GameKey, board model.Leaderboard) Leaderboard {
	return Leaderboard{
		Game:    string(game),
		Podium:  entriesFromModel(board.Podium()),
		Entries: entriesFromModel(board.Tail()),
	}
}

func entriesFromModel(entries model.Leaderboard) []LeaderboardEntry {
	out := make([]LeaderboardEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, LeaderboardEntry{
			Rank:     e.Rank,
			PlayerID: string(e.PlayerID),
			Name:     e.Name,
			Score:    e.Score,
		})
	}
	return out
}

// Question is the player-facing view of a quiz question; the correct option
// is never included
type Question struct {
	Number  int      `json:"number"`
	Prompt  string   `json:"question"`
	Options []string `json:"options"`
}

// QuizSession is the player-facing view of a quiz session
type QuizSession struct {
	ID         string    `json:"id"`
	State      string    `json:"state"`
	Topic      string    `json:"topic"`
	Difficulty string    `json:"difficulty"`
	Generated  bool      `json:"generated"`
	Current    int       `json:"current"`
	Total      int       `json:"total"`
	Correct    int       `json:"correct"`
	Score      int       `json:"score,omitempty"`
	Question   *Question `json:"currentQuestion,omitempty"`
}

// QuizSessionFromModel converts a quiz session snapshot
func QuizSessionFromModel(s *quiz.Session) QuizSession {
	out := QuizSession{
		ID:         string(s.ID),
		State:      string(s.State),
		Topic:      s.Topic,
		Difficulty: string(s.Difficulty),
		Generated:  s.Generated,
		Current:    s.Current,
		Total:      len(s.Questions),
		Correct:    s.Correct,
		Score:      s.Score,
	}
	if s.State == model.SessionInProgress && s.Current < len(s.Questions) {
		q := s.Questions[s.Current]
		out.Question = &Question{
			Number:  s.Current + 1,
			Prompt:  q.Prompt,
			Options: q.Options,
		}
	}
	return out
}

// AnswerResult reports how one answer was judged
type AnswerResult struct {
	Correct       bool        `json:"correct"`
	CorrectOption int         `json:"correctOption"`
	Session       QuizSession `json:"session"`
}

// AnswerResultFromOutcome converts an answer outcome
func AnswerResultFromOutcome(o *quiz.AnswerOutcome) AnswerResult {
	return AnswerResult{
		Correct:       o.Correct,
		CorrectOption: o.CorrectOption,
		Session:       QuizSessionFromModel(&o.Session),
	}
}

// HanoiSession is the player-facing view of a Tower of Hanoi session
type HanoiSession struct {
	ID       string  `json:"id"`
	State    string  `json:"state"`
	Disks    int     `json:"disks"`
	Policy   string  `json:"policy"`
	Rods     [][]int `json:"rods"`
	Moves    int     `json:"moves"`
	MinMoves int     `json:"minMoves"`
	Score    int     `json:"score,omitempty"`
}

// HanoiSessionFromModel converts a Tower of Hanoi session snapshot
func HanoiSessionFromModel(s *hanoi.Session) HanoiSession {
	rods := make([][]int, len(s.Rods))
	for i, rod := range s.Rods {
		if rod == nil {
			rod = []int{}
		}
		rods[i] = rod
	}
	return HanoiSession{
		ID:       string(s.ID),
		State:    string(s.State),
		Disks:    s.Disks,
		Policy:   string(s.Policy),
		Rods:     rods,
		Moves:    s.Moves,
		MinMoves: s.MinMoves,
		Score:    s.Score,
	}
}

// ScrambleSession is the player-facing view of a word scramble session; the
// unscrambled answers are never included
type ScrambleSession struct {
	ID         string `json:"id"`
	State      string `json:"state"`
	Difficulty string `json:"difficulty"`
	Generated  bool   `json:"generated"`
	Current    int    `json:"current"`
	Total      int    `json:"total"`
	Correct    int    `json:"correct"`
	Score      int    `json:"score,omitempty"`
	Scrambled  string `json:"scrambledWord,omitempty"`
}

// ScrambleSessionFromModel converts a scramble session snapshot
func ScrambleSessionFromModel(s *scramble.Session) ScrambleSession {
	out := ScrambleSession{
		ID:         string(s.ID),
		State:      string(s.State),
		Difficulty: string(s.Difficulty),
		Generated:  s.Generated,
		Current:    s.Current,
		Total:      len(s.Words),
		Correct:    s.Correct,
		Score:      s.Score,
	}
	if s.State == model.SessionInProgress && s.Current < len(s.Scrambled) {
		out.Scrambled = s.Scrambled[s.Current]
	}
	return out
}

// GuessResult reports how one guess was judged; Word is the revealed answer
type GuessResult struct {
	Correct bool            `json:"correct"`
	Word    string          `json:"word"`
	Session ScrambleSession `json:"session"`
}

// GuessResultFromOutcome converts a guess outcome
func GuessResultFromOutcome(o *scramble.GuessOutcome) GuessResult {
	return GuessResult{
		Correct: o.Correct,
		Word:    o.Word,
		Session: ScrambleSessionFromModel(&o.Session),
	}
}
