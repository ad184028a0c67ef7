package quiz

import (
	"math/bits"
	"strings"
)

// HistoryCapacity is the number of most recent outcomes kept in AttemptHistory.Recent
const HistoryCapacity = 64

// AttemptHistory tracks the attempts of a single card or of a whole session.
// Recent is a shift register of the last HistoryCapacity outcomes, newest in the lowest bit.
type AttemptHistory struct {
	Attempts uint32
	Correct  uint32
	Recent   uint64
}

// Record adds the outcome of one attempt
func (h *AttemptHistory) Record(correct bool) {
	h.Attempts++
	h.Recent <<= 1
	if correct {
		h.Correct++
		h.Recent |= 1
	}
}

// RecentAttempts returns how many attempts the recent history covers
func (h AttemptHistory) RecentAttempts() uint32 {
	return min(HistoryCapacity, h.Attempts)
}

// RecentlyCorrect returns how many of the recent attempts were correct
func (h AttemptHistory) RecentlyCorrect() uint32 {
	return uint32(bits.OnesCount64(h.Recent))
}

func (h AttemptHistory) WrongAttempts() uint32 {
	return h.Attempts - h.Correct
}

// RecentAccuracy returns the percentage of recent attempts answered correctly.
// A card that has never been attempted counts as 100%.
func (h AttemptHistory) RecentAccuracy() float64 {
	recent := h.RecentAttempts()
	if recent == 0 {
		return 100.0
	}
	return float64(h.RecentlyCorrect()) / float64(recent) * 100.0
}

// Accuracy returns the percentage of all attempts answered correctly.
// ok is false when nothing has been attempted yet.
func (h AttemptHistory) Accuracy() (percent float64, ok bool) {
	if h.Attempts == 0 {
		return 0, false
	}
	return float64(h.Correct) / float64(h.Attempts) * 100.0, true
}

// Render formats the recent history oldest first, one symbol per attempt
func (h AttemptHistory) Render(correctSymbol, incorrectSymbol string) string {
	var b strings.Builder
	oldest := int(h.RecentAttempts())
	b.Grow(oldest * max(len(correctSymbol), len(incorrectSymbol)))
	for i := oldest - 1; i >= 0; i-- {
		if (h.Recent>>uint(i))&1 == 1 {
			b.WriteString(correctSymbol)
		} else {
			b.WriteString(incorrectSymbol)
		}
	}
	return b.String()
}
