package scoring

// Scoring tracks the score and level of the current run. Only ScoreEvent and
// Reset mutate CurrentScore and Level.
type Scoring struct {
	// public
	CurrentScore int
	Level        int
	HighScore    int // best score seen since the program started; survives resets
	// private
	scoreTable map[string]int
	levelTable map[string]int
}

// InitScoring creates a Scoring at score 0, level 1.
func InitScoring() *Scoring {
	s := &Scoring{
		scoreTable: getScoreTable(),
		levelTable: getLevelTable(),
	}
	s.Reset()
	return s
}

// ScoreEvent updates score and level for a game event. Unknown events leave
// both untouched.
func (s *Scoring) ScoreEvent(event string) {
	s.ensureTables()
	s.CurrentScore += s.scoreTable[event]
	s.Level += s.levelTable[event]
	if s.CurrentScore > s.HighScore {
		s.HighScore = s.CurrentScore
	}
}

// Reset puts score and level back to their starting values.
func (s *Scoring) Reset() {
	s.CurrentScore = 0
	s.Level = 1
}

// EventValue returns the points awarded for an event.
func (s *Scoring) EventValue(event string) int {
	s.ensureTables()
	return s.scoreTable[event]
}

// The zero value is usable, so tables are filled lazily.
func (s *Scoring) ensureTables() {
	if s.scoreTable == nil {
		s.scoreTable = getScoreTable()
	}
	if s.levelTable == nil {
		s.levelTable = getLevelTable()
	}
}

// getScoreTable returns the points for different scoring events.
func getScoreTable() map[string]int {
	return map[string]int{
		"win": 10,
	}
}

func getLevelTable() map[string]int {
	return map[string]int{
		"win": 1,
	}
}
