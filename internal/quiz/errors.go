package quiz

import "errors"

var (
	ErrEmptyDeck      = errors.New("quiz: a deck needs at least one card")
	ErrInvalidCount   = errors.New("quiz: card count must be at least 1")
	ErrUnknownCommand = errors.New("quiz: unknown command")
	ErrWrongMode      = errors.New("quiz: operation not allowed in the current mode")
)
