package tag

import "github.com/vovakirdan/tui-tag/internal/core"

// Event is something observable that happened during one Step.
type Event interface {
	tagEvent()
}

// TagEvent is emitted whenever the tagged slot changes hands.
// From is -1 for the first tag of a round.
type TagEvent struct {
	Tick  int
	From  int
	To    int
	Color core.Color // Color of the newly tagged player
}

func (TagEvent) tagEvent() {}

// RoundEndEvent is emitted on the tick a player's countdown reaches zero.
type RoundEndEvent struct {
	Summary Summary
}

func (RoundEndEvent) tagEvent() {}

// StepResult lists the events of one Step in emission order.
type StepResult struct {
	Events []Event
}

// Tagged reports whether the tag changed hands during the step.
func (r StepResult) Tagged() bool {
	for _, ev := range r.Events {
		if _, ok := ev.(TagEvent); ok {
			return true
		}
	}
	return false
}

// RoundEnded returns the summary if the round ended during the step.
func (r StepResult) RoundEnded() (Summary, bool) {
	for _, ev := range r.Events {
		if end, ok := ev.(RoundEndEvent); ok {
			return end.Summary, true
		}
	}
	return Summary{}, false
}

// RoundState is the round state machine: Playing -> Ended -> (restart) Playing.
type RoundState int

const (
	RoundPlaying RoundState = iota
	RoundEnded
)

func (s RoundState) String() string {
	switch s {
	case RoundPlaying:
		return "Playing"
	case RoundEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}
