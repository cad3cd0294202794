// Package prompt runs the yes/no question loop on a line-oriented reader.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const DefaultQuestion = "Will you be my Valentine? (yes/no)"

// Result summarizes a finished session.
type Result struct {
	Accepted     bool
	Intensity    int
	Lines        int
	Declines     int
	Unrecognized int
}

// Session asks the question until the user says yes or input runs out.
type Session struct {
	reader   *bufio.Reader
	out      io.Writer
	logger   *zap.Logger
	question string
	color    bool

	bannerStyle lipgloss.Style
	cheerStyle  lipgloss.Style

	state TurnState
}

type Option func(*Session)

// WithQuestion replaces the default question text.
func WithQuestion(q string) Option {
	return func(s *Session) {
		if q != "" {
			s.question = q
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithColor toggles banner styling. Styling is dropped anyway when out is
// not a terminal.
func WithColor(enabled bool) Option {
	return func(s *Session) { s.color = enabled }
}

// NewSession creates a session reading answers from in and writing the
// transcript to out.
func NewSession(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		reader:   bufio.NewReader(in),
		out:      out,
		logger:   zap.NewNop(),
		question: DefaultQuestion,
		color:    true,
		state:    newTurnState(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := lipgloss.NewRenderer(out)
	s.bannerStyle = r.NewStyle()
	s.cheerStyle = r.NewStyle()
	if s.color {
		s.bannerStyle = s.bannerStyle.Foreground(lipgloss.Color("#e53935")).Bold(true)
		s.cheerStyle = s.cheerStyle.Foreground(lipgloss.Color("#ff8a65")).Bold(true)
	}
	return s
}

// Run executes the interactive loop. It returns when the user answers yes or
// the input ends; only a failing reader produces an error.
func (s *Session) Run() (Result, error) {
	if s.state.State == Done {
		return s.result(), nil
	}

	fmt.Fprintln(s.out, s.question)

	for s.state.State == AwaitingAnswer {
		line, ok, err := s.readLine()
		if err != nil {
			return s.result(), fmt.Errorf("failed to read answer: %w", err)
		}
		if !ok {
			s.state.finish()
			break
		}

		answer := Classify(line)
		s.state.Apply(answer)
		s.logger.Debug("answer classified",
			zap.Stringer("answer", answer),
			zap.Int("intensity", s.state.Intensity))

		switch answer {
		case Affirmative:
			fmt.Fprintln(s.out)
			s.printBanner()
			fmt.Fprintf(s.out, "\n  %s\n\n", s.cheerStyle.Render(CelebrationMessage))
		case Negative:
			fmt.Fprintln(s.out, RetryMessage)
			s.printBanner()
			fmt.Fprintf(s.out, "\n%s\n", s.question)
		default:
			fmt.Fprintln(s.out, CorrectiveMessage)
		}
	}

	res := s.result()
	s.logger.Info("session finished",
		zap.Bool("accepted", res.Accepted),
		zap.Int("intensity", res.Intensity),
		zap.Int("declines", res.Declines),
		zap.Int("unrecognized", res.Unrecognized),
		zap.Int("lines", res.Lines))
	return res, nil
}

// Intensity returns the current banner intensity (always >= 1).
func (s *Session) Intensity() int {
	return s.state.Intensity
}

// State returns the current state of the session.
func (s *Session) State() State {
	return s.state.State
}

// readLine returns the next line, terminator included. Lines have no
// length limit; ok is false once the input is exhausted.
func (s *Session) readLine() (line string, ok bool, err error) {
	line, err = s.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}
	return line, true, nil
}

func (s *Session) printBanner() {
	line := s.bannerStyle.Render(BannerLine)
	for i := 0; i < BannerLines(s.state.Intensity); i++ {
		fmt.Fprintf(s.out, "  %s\n", line)
	}
}

func (s *Session) result() Result {
	return Result{
		Accepted:     s.state.Accepted,
		Intensity:    s.state.Intensity,
		Lines:        s.state.Lines,
		Declines:     s.state.Declines,
		Unrecognized: s.state.Unrecognized,
	}
}
