// internal/game/types.go
//
// Score keeping for one game session.
// Defines:
//   - Round: correct/wrong counters for the current level and the whole
//     session, and the rule that decides when a level is beaten.

package game

// WinThreshold is the margin (correct minus wrong) a round must strictly
// exceed to be won.
const WinThreshold = 3

// Round tracks the score of the current level ("round") and of the session.
// Overall counters only grow; round counters reset on NewRound.
type Round struct {
	OverallCorrect int    `json:"overallCorrect"`
	OverallWrong   int    `json:"overallWrong"`
	RoundCorrect   int    `json:"roundCorrect"`
	RoundWrong     int    `json:"roundWrong"`
	RoundName      string `json:"roundName"`
}

// Correct records a right answer.
func (r *Round) Correct() {
	r.RoundCorrect++
	r.OverallCorrect++
}

// Wrong records a wrong answer.
func (r *Round) Wrong() {
	r.RoundWrong++
	r.OverallWrong++
}

// NewRound starts scoring a new level.
func (r *Round) NewRound(name string) {
	r.RoundCorrect = 0
	r.RoundWrong = 0
	r.RoundName = name
}

// CheckRound reports whether the current round is won:
// RoundCorrect - RoundWrong > WinThreshold. Reaching the threshold exactly
// is not enough.
func (r *Round) CheckRound() bool {
	return r.RoundCorrect-r.RoundWrong > WinThreshold
}
