// Package scoring converts raw gameplay outcomes into durable scores and
// decides how a fresh score reconciles with the stored one.
package scoring

import "math"

// HanoiPolicy selects which Tower of Hanoi scoring formula a session uses.
// The two formulas come from different iterations of the game and are not
// interchangeable; a session is configured with exactly one.
type HanoiPolicy string

const (
	// HanoiRatio scores round(minMoves/moves*100). Used with a configurable
	// disk count. moves >= minMoves always holds, so the 100 cap is a safety
	// net rather than a reachable branch.
	HanoiRatio HanoiPolicy = "ratio"

	// HanoiPenalty scores max(100 - 10*excessMoves, 10). Used with the fixed
	// three-disk layout.
	HanoiPenalty HanoiPolicy = "penalty"
)

// Valid reports whether the policy is one of the two known formulas
func (p HanoiPolicy) Valid() bool {
	return p == HanoiRatio || p == HanoiPenalty
}

// QuizScore converts a correct-answer tally into a percentage score in
// [0, 100]. Speed never affects the result; a timed-out question simply
// counts as incorrect.
func QuizScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	if correct < 0 {
		correct = 0
	}
	if correct > total {
		correct = total
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// MinMoves returns the optimal move count for a Tower of Hanoi puzzle with
// the given number of disks: 2^disks - 1.
func MinMoves(disks int) int {
	if disks <= 0 {
		return 0
	}
	return (1 << disks) - 1
}

// HanoiScore converts a completed puzzle's move count into a score under the
// given policy
func HanoiScore(policy HanoiPolicy, moves, minMoves int) int {
	if moves <= 0 || minMoves <= 0 {
		return 0
	}

	switch policy {
	case HanoiPenalty:
		excess := moves - minMoves
		if excess < 0 {
			excess = 0
		}
		score := 100 - 10*excess
		if score < 10 {
			score = 10
		}
		return score
	default:
		score := int(math.Round(float64(minMoves) / float64(moves) * 100))
		if score > 100 {
			score = 100
		}
		return score
	}
}

// PointsPerWord is the fixed contribution of each correctly unscrambled word
const PointsPerWord = 20

// ScrambleScore converts a correct-guess tally into an additive score.
// Incorrect and timed-out words contribute nothing; the score is never
// negative.
func ScrambleScore(correct int) int {
	if correct < 0 {
		return 0
	}
	return PointsPerWord * correct
}
