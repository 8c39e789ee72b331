// Package parser drives one command-line invocation through a parameter
// registry: it gates on help, tokenizes the arguments once, dispatches
// supplied values to their actions and evaluates validation rules.
//
// A Session is meant for a single caller. Results are memoized without
// locking; create a fresh Session per goroutine.
package parser

import (
	"io"
	"log/slog"
	"os"

	"github.com/aidanlsb/paramz/internal/param"
	"github.com/aidanlsb/paramz/internal/tokenizer"
	"github.com/aidanlsb/paramz/internal/ui"
)

// Option configures a Session.
type Option func(*Session)

// WithOutput sets where help is written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithErrOutput sets where diagnostics are written. Defaults to os.Stderr.
func WithErrOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.errOut = w
		}
	}
}

// WithLogger sets the logger for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMarkdown renders the help header and footer as markdown.
func WithMarkdown(enabled bool) Option {
	return func(s *Session) {
		s.markdown = enabled
	}
}

// WithWidth fixes the help width instead of detecting it from the output.
func WithWidth(width int) Option {
	return func(s *Session) {
		s.width = width
	}
}

// Session is one parse of one argument list.
type Session struct {
	reg  *param.Registry
	text HelpText
	args []string
	opts *tokenizer.OptionSet

	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	markdown bool
	width    int

	tokenized bool
	res       *tokenizer.Result
	resErr    error

	resolved  bool
	values    map[string]any
	missing   []*param.Descriptor
	valuesErr error

	validated   bool
	failures    Failures
	failuresErr error
}

// New prepares a session for args. When the arguments ask for help, the
// help page is rendered and New returns ErrHelpRequested; no action runs.
func New(reg *param.Registry, text HelpText, args []string, opts ...Option) (*Session, error) {
	if reg == nil {
		return nil, param.Errorf(param.KindConfiguration, "no parameter registry")
	}
	if text == nil {
		text = StaticText{}
	}

	s := &Session{
		reg:    reg,
		text:   text,
		args:   append([]string(nil), args...),
		out:    os.Stdout,
		errOut: os.Stderr,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	optionSet, err := tokenizer.Build(text.AppName(), reg)
	if err != nil {
		return nil, err
	}
	s.opts = optionSet
	s.logger.Debug("parse session created", "args", len(s.args), "options", len(optionSet.Specs()))

	if ContainsHelp(s.args, reg) {
		s.logger.Debug("help requested")
		return nil, s.requestHelp()
	}
	return s, nil
}

// Args returns the raw arguments of the session.
func (s *Session) Args() []string {
	return append([]string(nil), s.args...)
}

// Registry returns the registry the session was created with.
func (s *Session) Registry() *param.Registry {
	return s.reg
}

// Remaining returns the arguments the tokenizer did not consume as options.
func (s *Session) Remaining() ([]string, error) {
	res, err := s.result()
	if err != nil {
		return nil, err
	}
	return res.Args(), nil
}

// result tokenizes the arguments on first use. The outcome, including an
// error, is kept for the rest of the session.
func (s *Session) result() (*tokenizer.Result, error) {
	if !s.tokenized {
		s.res, s.resErr = s.opts.Tokenize(s.args)
		s.tokenized = true
		if s.resErr != nil {
			s.logger.Debug("tokenize failed", "error", s.resErr)
		} else {
			s.logger.Debug("arguments tokenized", "present", len(s.res.Present()))
		}
	}
	return s.res, s.resErr
}

func (s *Session) display() *ui.DisplayContext {
	d := ui.NewDisplayContextFor(s.out)
	if s.width > 0 {
		d.TermWidth = s.width
	}
	return d
}
