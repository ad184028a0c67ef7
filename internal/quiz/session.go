package quiz

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode is the state of a drilling session
type Mode int

const (
	ModeQuizzing Mode = iota
	ModeMenu
	ModeQuit
)

func (m Mode) String() string {
	switch m {
	case ModeQuizzing:
		return "quizzing"
	case ModeMenu:
		return "menu"
	case ModeQuit:
		return "quit"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

const (
	DefaultCorrectSymbol   = "✔"
	DefaultIncorrectSymbol = "✗"
	DefaultQuitToken       = "q"
	DefaultHardestCount    = 10
)

// OutcomeKind is what happened to one line typed at the answer prompt
type OutcomeKind int

const (
	OutcomeCorrect OutcomeKind = iota
	OutcomeIncorrect
	OutcomeMenu
	OutcomeQuit
)

// Outcome is the result of Session.Submit.
// Expected holds the reference answer for OutcomeCorrect and OutcomeIncorrect.
type Outcome struct {
	Kind     OutcomeKind
	Expected string
}

// Command is a menu command accepted by Session.Command
type Command int

const (
	CommandResume Command = iota + 1
	CommandQuit
	CommandSelectAll
	CommandShuffle
	CommandFlip
	CommandSelectHardest
	CommandHelp
)

// Turn is everything the presentation needs to show the current card
type Turn struct {
	// Position is 1-based within the selection
	Position         int
	SelectionSize    int
	Prompt           string
	History          string
	AggregateHistory string
	RecentAccuracy   float64
}

// Report is the final summary of a session
type Report struct {
	Attempts uint32
	Correct  uint32
}

// Percent returns the share of correct attempts. ok is false when there were no attempts.
func (r Report) Percent() (percent float64, ok bool) {
	return AttemptHistory{Attempts: r.Attempts, Correct: r.Correct}.Accuracy()
}

type sessionOptions struct {
	correctSymbol   string
	incorrectSymbol string
	quitToken       string
	hardestCount    int
}

type SessionOption func(*sessionOptions)

// WithSymbols sets the glyphs used to render attempt histories
func WithSymbols(correct, incorrect string) SessionOption {
	return func(o *sessionOptions) {
		o.correctSymbol = correct
		o.incorrectSymbol = incorrect
	}
}

// WithQuitToken sets the answer that ends the session
func WithQuitToken(token string) SessionOption {
	return func(o *sessionOptions) {
		o.quitToken = token
	}
}

// WithHardestCount sets how many cards the "d" command keeps when no count is given
func WithHardestCount(n int) SessionOption {
	return func(o *sessionOptions) {
		o.hardestCount = n
	}
}

// Session drives the show, answer, record, advance loop over a deck
type Session struct {
	deck    *Deck
	policy  MatchPolicy
	mode    Mode
	options sessionOptions
}

func NewSession(deck *Deck, policy MatchPolicy, opts ...SessionOption) *Session {
	options := sessionOptions{
		correctSymbol:   DefaultCorrectSymbol,
		incorrectSymbol: DefaultIncorrectSymbol,
		quitToken:       DefaultQuitToken,
		hardestCount:    DefaultHardestCount,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return &Session{
		deck:    deck,
		policy:  policy,
		mode:    ModeQuizzing,
		options: options,
	}
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) Deck() *Deck {
	return s.deck
}

// Turn describes the current card
func (s *Session) Turn() Turn {
	card := s.deck.Current()
	aggregate := s.deck.Aggregate()
	return Turn{
		Position:         s.deck.Cursor() + 1,
		SelectionSize:    len(s.deck.selection),
		Prompt:           s.deck.Prompt(),
		History:          card.History.Render(s.options.correctSymbol, s.options.incorrectSymbol),
		AggregateHistory: aggregate.Render(s.options.correctSymbol, s.options.incorrectSymbol),
		RecentAccuracy:   card.History.RecentAccuracy(),
	}
}

// Submit handles one line typed at the answer prompt.
// A blank line opens the menu and the quit token ends the session.
// Any other input is judged and recorded; only a correct answer advances to the next card.
func (s *Session) Submit(input string) (Outcome, error) {
	if s.mode != ModeQuizzing {
		return Outcome{}, fmt.Errorf("Submit in %s mode > %w", s.mode, ErrWrongMode)
	}

	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		s.mode = ModeMenu
		return Outcome{Kind: OutcomeMenu}, nil
	}
	if trimmed == s.options.quitToken {
		s.mode = ModeQuit
		return Outcome{Kind: OutcomeQuit}, nil
	}

	expected := s.deck.Answer()
	correct := s.policy.Matches(expected, input)
	s.deck.RecordAttempt(correct)
	if !correct {
		return Outcome{Kind: OutcomeIncorrect, Expected: expected}, nil
	}
	s.deck.Advance()
	return Outcome{Kind: OutcomeCorrect, Expected: expected}, nil
}

// Command handles one line typed at the menu.
// Unknown input returns ErrUnknownCommand and leaves the session unchanged.
func (s *Session) Command(input string) (Command, error) {
	if s.mode != ModeMenu {
		return 0, fmt.Errorf("Command in %s mode > %w", s.mode, ErrWrongMode)
	}

	fields := strings.Fields(input)
	if len(fields) == 0 {
		return 0, ErrUnknownCommand
	}
	name, args := fields[0], fields[1:]

	switch {
	case name == "r" && len(args) == 0:
		s.mode = ModeQuizzing
		return CommandResume, nil
	case name == "q" && len(args) == 0:
		s.mode = ModeQuit
		return CommandQuit, nil
	case name == "a" && len(args) == 0:
		s.deck.SelectAll()
		return CommandSelectAll, nil
	case name == "s" && len(args) == 0:
		s.deck.ShuffleSelection()
		return CommandShuffle, nil
	case name == "f" && len(args) == 0:
		s.deck.Flip()
		return CommandFlip, nil
	case name == "h" && len(args) == 0:
		return CommandHelp, nil
	case name == "d" && len(args) <= 1:
		n := s.options.hardestCount
		if len(args) == 1 {
			parsed, err := strconv.Atoi(args[0])
			if err != nil {
				return 0, fmt.Errorf("invalid card count %q > %w", args[0], ErrUnknownCommand)
			}
			n = parsed
		}
		if err := s.deck.SelectHardest(n); err != nil {
			return 0, err
		}
		return CommandSelectHardest, nil
	}
	return 0, fmt.Errorf("%q > %w", strings.TrimSpace(input), ErrUnknownCommand)
}

// Report summarizes every attempt made in the session
func (s *Session) Report() Report {
	aggregate := s.deck.Aggregate()
	return Report{
		Attempts: aggregate.Attempts,
		Correct:  aggregate.Correct,
	}
}
