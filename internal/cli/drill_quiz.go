package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vokabulatr/vokabulatr/internal/assets"
	"github.com/vokabulatr/vokabulatr/internal/config"
	"github.com/vokabulatr/vokabulatr/internal/converter"
	"github.com/vokabulatr/vokabulatr/internal/deckfile"
	"github.com/vokabulatr/vokabulatr/internal/quiz"
	"github.com/vokabulatr/vokabulatr/internal/statistics"
)

const menuHelp = `Menu
q: Quits the program.
r: Return to quiz.
a: Select all cards.
s: Shuffle the cards.
f: Flip the cards.
d [n]: Drill the n hardest cards (default %d).
h: Show this help.
`

// DrillCLI runs a drilling session over a single deck in the terminal
type DrillCLI struct {
	*InteractiveQuizCLI
	deckPath  string
	sessionID uuid.UUID
	session   *quiz.Session
	cfg       config.Config
	logger    *slog.Logger
	// showCard is set whenever a new card has to be announced before the next prompt
	showCard   bool
	finished   bool
	reportPath string
}

// NewDrillCLI loads the deck at deckPath and prepares a session reading answers from stdin
func NewDrillCLI(deckPath string, cfg *config.Config, stdin io.Reader, stdout io.Writer) (*DrillCLI, error) {
	pairs, err := deckfile.Load(deckPath)
	if err != nil {
		return nil, fmt.Errorf("deckfile.Load() > %w", err)
	}
	deck, err := quiz.NewDeck(pairs)
	if err != nil {
		return nil, fmt.Errorf("quiz.NewDeck(%s) > %w", deckPath, err)
	}
	return newDrillCLI(newInteractiveQuizCLI(stdin, stdout), deckPath, deck, *cfg), nil
}

func newDrillCLI(base *InteractiveQuizCLI, deckPath string, deck *quiz.Deck, cfg config.Config) *DrillCLI {
	sessionID := uuid.New()
	return &DrillCLI{
		InteractiveQuizCLI: base,
		deckPath:           deckPath,
		sessionID:          sessionID,
		session:            quiz.NewSession(deck, cfg.MatchPolicy(), cfg.SessionOptions()...),
		cfg:                cfg,
		logger: slog.Default().With(
			slog.String("session_id", sessionID.String()),
			slog.String("deck", deckPath),
		),
		showCard: true,
	}
}

// ErrUnsupportedReportFormat is returned for report paths other than .md, .html or .pdf
var ErrUnsupportedReportFormat = errors.New("unsupported report format, expected .md, .html or .pdf")

// CheckReportPath reports whether a session report can be written to reportPath
func CheckReportPath(reportPath string) error {
	switch strings.ToLower(filepath.Ext(reportPath)) {
	case ".md", ".html", ".pdf":
		return nil
	}
	return fmt.Errorf("%s > %w", reportPath, ErrUnsupportedReportFormat)
}

// WriteReportOnFinish makes the session write its report to reportPath once it ends
func (r *DrillCLI) WriteReportOnFinish(reportPath string) error {
	if err := CheckReportPath(reportPath); err != nil {
		return err
	}
	r.reportPath = reportPath
	return nil
}

// ShuffleCards shuffles the selected cards
func (r *DrillCLI) ShuffleCards() {
	r.session.Deck().ShuffleSelection()
}

// FlipCards asks for the back of each card and expects the front
func (r *DrillCLI) FlipCards() {
	r.session.Deck().Flip()
}

// GetCardCount returns the number of loaded cards
func (r *DrillCLI) GetCardCount() int {
	return r.session.Deck().Len()
}

func (r *DrillCLI) SessionID() uuid.UUID {
	return r.sessionID
}

// Finished reports whether the final report has been shown
func (r *DrillCLI) Finished() bool {
	return r.finished
}

// Statistics returns the per-card and aggregate results so far
func (r *DrillCLI) Statistics() statistics.SessionStatistics {
	return statistics.Calculate(r.session.Deck(), r.cfg.Display.CorrectSymbol, r.cfg.Display.IncorrectSymbol)
}

// WriteReport renders the session report and writes it to reportPath as
// markdown, HTML or PDF depending on the extension
func (r *DrillCLI) WriteReport(reportPath, templatePath string) error {
	if err := CheckReportPath(reportPath); err != nil {
		return err
	}

	var markdown bytes.Buffer
	data := assets.SessionReportTemplate{
		SessionID:         r.sessionID.String(),
		DeckPath:          r.deckPath,
		FinishedAt:        time.Now(),
		SessionStatistics: r.Statistics(),
	}
	if err := assets.WriteSessionReport(&markdown, templatePath, data); err != nil {
		return fmt.Errorf("assets.WriteSessionReport() > %w", err)
	}

	if dir := filepath.Dir(reportPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
		}
	}
	switch strings.ToLower(filepath.Ext(reportPath)) {
	case ".pdf":
		if err := converter.ConvertMarkdownToPDF(markdown.Bytes(), reportPath); err != nil {
			return fmt.Errorf("converter.ConvertMarkdownToPDF() > %w", err)
		}
	case ".html":
		title := "Session report: " + filepath.Base(r.deckPath)
		if err := converter.ConvertMarkdownToHTML(markdown.Bytes(), reportPath, title); err != nil {
			return fmt.Errorf("converter.ConvertMarkdownToHTML() > %w", err)
		}
	default:
		if err := os.WriteFile(reportPath, markdown.Bytes(), 0644); err != nil {
			return fmt.Errorf("os.WriteFile(%s) > %w", reportPath, err)
		}
	}
	r.logger.Debug("report written", slog.String("path", reportPath))
	return nil
}

// Session handles one line of input in the current mode
func (r *DrillCLI) Session(ctx context.Context) error {
	switch r.session.Mode() {
	case quiz.ModeQuizzing:
		return r.answer()
	case quiz.ModeMenu:
		return r.menu()
	}
	return r.finish()
}

func (r *DrillCLI) answer() error {
	if r.showCard {
		r.printCard(r.session.Turn())
		r.showCard = false
	}

	r.printf("(Type answer, press enter for menu, or type %s to quit) ", r.cfg.Session.QuitToken)
	line, ok, err := r.readLine()
	if err != nil {
		return err
	}
	if !ok {
		r.println()
		return r.finish()
	}

	current := r.session.Deck().Selection()[r.session.Deck().Cursor()]
	outcome, err := r.session.Submit(line)
	if err != nil {
		return fmt.Errorf("session.Submit() > %w", err)
	}

	switch outcome.Kind {
	case quiz.OutcomeCorrect:
		r.logger.Debug("answer recorded", slog.Int("card", current), slog.Bool("correct", true))
		_, _ = r.green.Fprintf(r.stdoutWriter, "%s Correct!\n", r.cfg.Display.CorrectSymbol)
		r.println()
		r.showCard = true
	case quiz.OutcomeIncorrect:
		r.logger.Debug("answer recorded", slog.Int("card", current), slog.Bool("correct", false))
		_, _ = r.red.Fprintf(r.stdoutWriter, "%s Correct answer: ", r.cfg.Display.IncorrectSymbol)
		_, _ = r.italic.Fprintf(r.stdoutWriter, "%s", outcome.Expected)
		r.println()
		r.println()
	case quiz.OutcomeMenu:
		r.printf(menuHelp, r.cfg.Session.HardestCount)
	case quiz.OutcomeQuit:
		return r.finish()
	}
	return nil
}

func (r *DrillCLI) menu() error {
	r.printf("(Enter a command, or type h for help) ")
	line, ok, err := r.readLine()
	if err != nil {
		return err
	}
	if !ok {
		r.println()
		return r.finish()
	}

	command, err := r.session.Command(line)
	switch {
	case errors.Is(err, quiz.ErrUnknownCommand):
		r.printf("Unknown command %s.\n", strings.TrimSpace(line))
		return nil
	case errors.Is(err, quiz.ErrInvalidCount):
		r.println("The number of cards must be at least 1.")
		return nil
	case err != nil:
		return fmt.Errorf("session.Command() > %w", err)
	}

	deck := r.session.Deck()
	switch command {
	case quiz.CommandResume:
		r.showCard = true
	case quiz.CommandQuit:
		return r.finish()
	case quiz.CommandSelectAll:
		r.printf("Selected all %d cards.\n", deck.Len())
	case quiz.CommandShuffle:
		r.printf("Shuffled %d cards.\n", len(deck.Selection()))
	case quiz.CommandFlip:
		if deck.Flipped() {
			r.println("Cards flipped: answer with the front side.")
		} else {
			r.println("Cards flipped: answer with the back side.")
		}
	case quiz.CommandSelectHardest:
		r.printf("Selected the %d hardest cards.\n", len(deck.Selection()))
	case quiz.CommandHelp:
		r.printf(menuHelp, r.cfg.Session.HardestCount)
	}
	if command != quiz.CommandHelp {
		r.logger.Debug("menu command", slog.String("input", strings.TrimSpace(line)), slog.Int("selection", len(deck.Selection())))
	}
	return nil
}

// finish prints the final report and ends the session
func (r *DrillCLI) finish() error {
	if r.finished {
		return errEnd
	}
	r.finished = true

	report := r.session.Report()
	r.printf("Attempts: %5d\n", report.Attempts)
	if percent, ok := report.Percent(); ok {
		r.printf("Correct:  %5d, %5.1f%%\n", report.Correct, percent)
	} else {
		r.printf("Correct:  %5d\n", report.Correct)
	}
	r.println("Goodbye!")

	r.logger.Debug("session finished",
		slog.Int("attempts", int(report.Attempts)),
		slog.Int("correct", int(report.Correct)),
	)

	if r.reportPath != "" {
		if err := r.WriteReport(r.reportPath, r.cfg.Outputs.ReportTemplate); err != nil {
			return fmt.Errorf("WriteReport(%s) > %w", r.reportPath, err)
		}
		r.printf("Report written to %s\n", r.reportPath)
	}
	return errEnd
}

func (r *DrillCLI) printCard(turn quiz.Turn) {
	r.println()
	r.printf("-%s/%s--%s-%s%%-\n",
		pad(fmt.Sprint(turn.Position), 3, '-', true),
		pad(fmt.Sprint(turn.SelectionSize), 3, '-', false),
		pad(turn.History, quiz.HistoryCapacity, '-', false),
		pad(fmt.Sprintf("%.0f", turn.RecentAccuracy), 3, '-', true),
	)
	r.printf("|  %s%s  |\n", r.bold.Sprint(turn.Prompt), strings.Repeat(" ", max(0, 74-utf8.RuneCountInString(turn.Prompt))))
	r.printf("--%s--\n", pad(turn.AggregateHistory, 76, '-', true))
	r.println()
}

// pad fills s with fill up to width runes, on the left when alignRight is set
func pad(s string, width int, fill rune, alignRight bool) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	padding := strings.Repeat(string(fill), n)
	if alignRight {
		return padding + s
	}
	return s + padding
}
