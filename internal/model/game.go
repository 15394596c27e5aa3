package model

// GameKey identifies one of the portal's games. The set is closed: a score
// field exists for exactly these three keys and nothing else.
type GameKey string

const (
	GameTechnicalQuiz GameKey = "technicalQuiz"
	GameTowerOfHanoi  GameKey = "towerOfHanoi"
	GameWordScramble  GameKey = "wordScramble"
)

// AllGames returns the game keys in display order
func AllGames() []GameKey {
	return []GameKey{GameTechnicalQuiz, GameTowerOfHanoi, GameWordScramble}
}

// ParseGameKey validates a string as a GameKey
func ParseGameKey(s string) (GameKey, error) {
	switch GameKey(s) {
	case GameTechnicalQuiz, GameTowerOfHanoi, GameWordScramble:
		return GameKey(s), nil
	}
	return "", ErrUnknownGame
}

// Valid reports whether the key is one of the three known games
func (g GameKey) Valid() bool {
	_, err := ParseGameKey(string(g))
	return err == nil
}

// Scores holds one integer score per game. A fixed-key record rather than a
// map so that introducing a fourth game without handling it everywhere is a
// compile error.
type Scores struct {
	TechnicalQuiz int `json:"technicalQuiz"`
	TowerOfHanoi  int `json:"towerOfHanoi"`
	WordScramble  int `json:"wordScramble"`
}

// Get returns the score for the given game, 0 for an unknown key
func (s Scores) Get(game GameKey) int {
	switch game {
	case GameTechnicalQuiz:
		return s.TechnicalQuiz
	case GameTowerOfHanoi:
		return s.TowerOfHanoi
	case GameWordScramble:
		return s.WordScramble
	}
	return 0
}

// Set replaces the score for the given game
func (s *Scores) Set(game GameKey, score int) error {
	switch game {
	case GameTechnicalQuiz:
		s.TechnicalQuiz = score
	case GameTowerOfHanoi:
		s.TowerOfHanoi = score
	case GameWordScramble:
		s.WordScramble = score
	default:
		return ErrUnknownGame
	}
	return nil
}
