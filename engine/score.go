package engine

// ScoreTracker holds the score and streak counters
// Mutated by exactly two gameplay events: a resolved hit and a timeout
type ScoreTracker struct {
	score  int
	streak int
}

// OnHit records a resolved hit
func (s *ScoreTracker) OnHit() {
	s.score++
	s.streak++
}

// OnTimeout records an unresolved up-phase expiry; score is unchanged
func (s *ScoreTracker) OnTimeout() {
	s.streak = 0
}

// Reset zeroes both counters
func (s *ScoreTracker) Reset() {
	s.score = 0
	s.streak = 0
}

func (s *ScoreTracker) Score() int {
	return s.score
}

func (s *ScoreTracker) Streak() int {
	return s.streak
}
