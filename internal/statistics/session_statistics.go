package statistics

import (
	"sort"

	"github.com/vokabulatr/vokabulatr/internal/quiz"
)

// CardStatistics holds the results of one card that was attempted at least once
type CardStatistics struct {
	Index    int // position in load order
	Front    string
	Back     string
	Attempts uint32
	Correct  uint32
	Wrong    uint32
	History  string // recent outcomes, oldest first
}

// SessionStatistics holds per-card results and the totals of a drilling session
type SessionStatistics struct {
	Cards          []CardStatistics
	CardCount      int
	AttemptedCards int
	Attempts       uint32
	Correct        uint32
	Percent        float64 // only meaningful when HasAttempts is true
	HasAttempts    bool
	History        string
}

// Calculate builds statistics for every attempted card of the deck.
// Cards are ordered hardest first: most wrong attempts, then most attempts, then load order.
func Calculate(deck *quiz.Deck, correctSymbol, incorrectSymbol string) SessionStatistics {
	var cards []CardStatistics
	for i, card := range deck.Cards() {
		if card.History.Attempts == 0 {
			continue
		}
		cards = append(cards, CardStatistics{
			Index:    i,
			Front:    card.Front,
			Back:     card.Back,
			Attempts: card.History.Attempts,
			Correct:  card.History.Correct,
			Wrong:    card.History.WrongAttempts(),
			History:  card.History.Render(correctSymbol, incorrectSymbol),
		})
	}

	sort.SliceStable(cards, func(i, j int) bool {
		if cards[i].Wrong != cards[j].Wrong {
			return cards[i].Wrong > cards[j].Wrong
		}
		return cards[i].Attempts > cards[j].Attempts
	})

	aggregate := deck.Aggregate()
	percent, ok := aggregate.Accuracy()
	return SessionStatistics{
		Cards:          cards,
		CardCount:      deck.Len(),
		AttemptedCards: len(cards),
		Attempts:       aggregate.Attempts,
		Correct:        aggregate.Correct,
		Percent:        percent,
		HasAttempts:    ok,
		History:        aggregate.Render(correctSymbol, incorrectSymbol),
	}
}
