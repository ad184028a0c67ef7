package quiz

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"
)

// Pair is one question/answer record as produced by a loader
type Pair struct {
	Front string `yaml:"front"`
	Back  string `yaml:"back"`
}

// Card is a loaded pair together with its own attempt history.
// A card is identified by its position in the deck.
type Card struct {
	Front   string
	Back    string
	History AttemptHistory
}

// Deck holds every loaded card, the selection being drilled and the cursor into it.
// Cards are never added or removed after NewDeck.
type Deck struct {
	cards     []Card
	selection []int
	cursor    int
	aggregate AttemptHistory
	flipped   bool
	shuffle   func(n int, swap func(i, j int))
}

// NewDeck builds a deck over pairs with every card selected in load order
func NewDeck(pairs []Pair) (*Deck, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyDeck
	}
	cards := make([]Card, 0, len(pairs))
	for _, pair := range pairs {
		cards = append(cards, Card{
			Front: pair.Front,
			Back:  pair.Back,
		})
	}
	deck := &Deck{
		cards:   cards,
		shuffle: rand.Shuffle,
	}
	deck.SelectAll()
	return deck, nil
}

// Len returns the number of loaded cards
func (d *Deck) Len() int {
	return len(d.cards)
}

// Card returns a copy of the card at index i in load order
func (d *Deck) Card(i int) Card {
	return d.cards[i]
}

// Cards returns a copy of every card in load order
func (d *Deck) Cards() []Card {
	return slices.Clone(d.cards)
}

// Selection returns a copy of the selected card indices in drilling order
func (d *Deck) Selection() []int {
	return slices.Clone(d.selection)
}

// Cursor returns the position of the current card within the selection
func (d *Deck) Cursor() int {
	return d.cursor
}

func (d *Deck) Aggregate() AttemptHistory {
	return d.aggregate
}

// SelectAll selects every card in load order
func (d *Deck) SelectAll() {
	d.selection = make([]int, len(d.cards))
	for i := range d.selection {
		d.selection[i] = i
	}
	d.cursor = 0
}

// ShuffleSelection puts the current selection in a random order
func (d *Deck) ShuffleSelection() {
	d.shuffle(len(d.selection), func(i, j int) {
		d.selection[i], d.selection[j] = d.selection[j], d.selection[i]
	})
	d.cursor = 0
}

// SelectHardest narrows the current selection to the n cards answered wrong most often.
// Cards with the same number of wrong attempts keep their relative order.
func (d *Deck) SelectHardest(n int) error {
	if n < 1 {
		return fmt.Errorf("SelectHardest(%d) > %w", n, ErrInvalidCount)
	}
	ranked := slices.Clone(d.selection)
	slices.SortStableFunc(ranked, func(a, b int) int {
		return cmp.Compare(d.cards[b].History.WrongAttempts(), d.cards[a].History.WrongAttempts())
	})
	d.selection = ranked[:min(n, len(ranked))]
	d.cursor = 0
	return nil
}

// Current returns the card under the cursor.
// It panics when the selection is empty, which NewDeck and the selection methods never produce.
func (d *Deck) Current() *Card {
	if len(d.cards) == 0 || len(d.selection) == 0 {
		panic("quiz: Current called on an empty selection")
	}
	return &d.cards[d.selection[d.cursor]]
}

// Advance moves the cursor to the next selected card, wrapping at the end of the selection
func (d *Deck) Advance() {
	if len(d.selection) == 0 {
		panic("quiz: Advance called on an empty selection")
	}
	d.cursor = (d.cursor + 1) % len(d.selection)
}

// RecordAttempt records an outcome for the current card and for the whole session
func (d *Deck) RecordAttempt(correct bool) {
	d.Current().History.Record(correct)
	d.aggregate.Record(correct)
}

// Flip swaps which side of every card is asked and which is expected
func (d *Deck) Flip() {
	d.flipped = !d.flipped
}

func (d *Deck) Flipped() bool {
	return d.flipped
}

// Prompt returns the side of the current card shown to the user
func (d *Deck) Prompt() string {
	card := d.Current()
	if d.flipped {
		return card.Back
	}
	return card.Front
}

// Answer returns the side of the current card the user has to type
func (d *Deck) Answer() string {
	card := d.Current()
	if d.flipped {
		return card.Front
	}
	return card.Back
}
