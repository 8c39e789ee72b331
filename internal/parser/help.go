package parser

import (
	"errors"
	"strings"

	"github.com/aidanlsb/paramz/internal/param"
	"github.com/aidanlsb/paramz/internal/tokenizer"
	"github.com/aidanlsb/paramz/internal/ui"
)

// ErrHelpRequested is returned by New when the arguments ask for help. The
// help page has already been written; callers usually exit successfully.
var ErrHelpRequested = errors.New("help requested")

// HelpText supplies the application texts shown on the help page.
type HelpText interface {
	AppName() string
	HelpHeader() string
	HelpFooter() string
}

// StaticText is a HelpText with fixed strings.
type StaticText struct {
	Name   string
	Header string
	Footer string
}

func (t StaticText) AppName() string    { return t.Name }
func (t StaticText) HelpHeader() string { return t.Header }
func (t StaticText) HelpFooter() string { return t.Footer }

// Prune strips every leading '-' from arg.
func Prune(arg string) string {
	return strings.TrimLeft(arg, "-")
}

// ContainsHelp reports whether any argument names a help flag by its short
// key or name. It looks at the raw arguments only, so malformed input can
// still ask for help. Every argument is checked, including values.
// Descriptors without an option are never matched; the registry refuses a
// help descriptor without one.
func ContainsHelp(args []string, reg *param.Registry) bool {
	if reg == nil {
		return false
	}
	descs := reg.All()
	for _, arg := range args {
		key := Prune(arg)
		if key == "" {
			continue
		}
		for _, d := range descs {
			if d.Option == nil {
				continue
			}
			if key != d.Option.Short && key != d.Name {
				continue
			}
			if d.IsHelp() {
				return true
			}
		}
	}
	return false
}

// helpPage assembles the rendered help for the session's option set.
func (s *Session) helpPage() ui.HelpPage {
	page := ui.HelpPage{
		AppName:  strings.TrimSpace(s.text.AppName()),
		Header:   s.text.HelpHeader(),
		Footer:   s.text.HelpFooter(),
		Markdown: s.markdown,
	}
	for _, spec := range s.opts.Specs() {
		page.Options = append(page.Options, helpOption(spec))
	}
	return page
}

func helpOption(spec tokenizer.Spec) ui.HelpOption {
	return ui.HelpOption{
		Short:       spec.Short,
		Long:        spec.Name,
		TakesArg:    spec.TakesArg,
		OptionalArg: spec.OptionalArg,
		Required:    spec.Required,
		Description: spec.Description,
	}
}

// renderHelp writes the help page to the session output. Without an
// application name nothing is rendered and a configuration error is
// reported on the error output instead.
func (s *Session) renderHelp() error {
	page := s.helpPage()
	if page.AppName == "" {
		err := &param.Error{
			Kind: param.KindConfiguration,
			Msg:  "application name is required to render help",
		}
		ui.Diagnose(s.errOut, err.Msg)
		s.logger.Debug("help not rendered", "reason", "empty application name")
		return err
	}
	if err := ui.RenderHelp(s.out, page, s.display()); err != nil {
		return err
	}
	s.logger.Debug("help rendered", "app", page.AppName)
	return nil
}

// requestHelp renders help and returns the value New hands back to the
// caller. The result always matches ErrHelpRequested.
func (s *Session) requestHelp() error {
	err := s.renderHelp()
	if err == nil {
		return ErrHelpRequested
	}
	var perr *param.Error
	if errors.As(err, &perr) {
		perr.Err = ErrHelpRequested
		return perr
	}
	return errors.Join(ErrHelpRequested, err)
}
