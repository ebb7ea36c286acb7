package scoring

import (
	"testing"
)

// TestInitScoring verifies that a fresh scoring starts at score 0, level 1.
func TestInitScoring(t *testing.T) {
	scoring := InitScoring()

	if scoring.CurrentScore != 0 {
		t.Errorf("expected initial score of 0, but got %d", scoring.CurrentScore)
	}
	if scoring.Level != 1 {
		t.Errorf("expected initial level of 1, but got %d", scoring.Level)
	}
	if scoring.HighScore != 0 {
		t.Errorf("expected initial high score of 0, but got %d", scoring.HighScore)
	}
}

// TestScoreEvent checks that a win adds 10 points and one level.
func TestScoreEvent(t *testing.T) {
	scoring := InitScoring()

	scoring.ScoreEvent("win")
	if scoring.CurrentScore != 10 {
		t.Errorf("win: expected score 10, got %d", scoring.CurrentScore)
	}
	if scoring.Level != 2 {
		t.Errorf("win: expected level 2, got %d", scoring.Level)
	}

	scoring.ScoreEvent("win")
	if scoring.CurrentScore != 20 || scoring.Level != 3 {
		t.Errorf("second win: expected 20/3, got %d/%d", scoring.CurrentScore, scoring.Level)
	}
}

// TestScoreEvent_Unknown ensures unknown events never touch score or level.
func TestScoreEvent_Unknown(t *testing.T) {
	scoring := InitScoring()
	scoring.ScoreEvent("collision")

	if scoring.CurrentScore != 0 || scoring.Level != 1 {
		t.Errorf("unknown event changed state: %d/%d", scoring.CurrentScore, scoring.Level)
	}
}

// TestReset checks that reset clears score and level but keeps the high score.
func TestReset(t *testing.T) {
	scoring := InitScoring()
	scoring.ScoreEvent("win")
	scoring.ScoreEvent("win")
	scoring.Reset()

	if scoring.CurrentScore != 0 {
		t.Errorf("expected score 0 after reset, got %d", scoring.CurrentScore)
	}
	if scoring.Level != 1 {
		t.Errorf("expected level 1 after reset, got %d", scoring.Level)
	}
	if scoring.HighScore != 20 {
		t.Errorf("expected high score 20 to survive reset, got %d", scoring.HighScore)
	}
}

// TestZeroValue makes sure a zero Scoring still scores events.
func TestZeroValue(t *testing.T) {
	var scoring Scoring
	scoring.Reset()
	scoring.ScoreEvent("win")

	if scoring.CurrentScore != 10 || scoring.Level != 2 {
		t.Errorf("zero value: expected 10/2, got %d/%d", scoring.CurrentScore, scoring.Level)
	}
	if scoring.EventValue("win") != 10 {
		t.Errorf("expected win value 10, got %d", scoring.EventValue("win"))
	}
}
