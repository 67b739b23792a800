package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aretw0/submittals/internal/presentation/tui"
	"github.com/aretw0/submittals/pkg/domain"
	"github.com/aretw0/submittals/pkg/ports"
	"github.com/aretw0/submittals/pkg/schema"
	"github.com/muesli/termenv"
)

const shellHelp = `Commands:
  show                      redraw the checklist and the active section
  set <key> <value>         answer a field ("-" clears, commas split multi-choice)
  attach <key> <path>       upload a file into a file field
  detach <key> <file-id>    remove an uploaded file
  next | back | goto <n>    move between sections
  generate [out.pdf]        write the cover page
  reset                     clear every answer
  help                      show this text
  quit                      leave the wizard
`

// errQuit ends the read loop without an error.
var errQuit = errors.New("quit")

// Shell is a line-oriented host for one wizard session.
type Shell struct {
	wizard    ports.Wizard
	sessionID string

	out      io.Writer
	profile  termenv.Profile
	markdown tui.Markdown
	readFile func(string) ([]byte, error)
	write    func(string, []byte) error
}

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithProfile sets the color profile for checkmarks.
func WithProfile(p termenv.Profile) ShellOption {
	return func(s *Shell) { s.profile = p }
}

// WithMarkdown renders section descriptions, e.g. with glamour.
func WithMarkdown(m tui.Markdown) ShellOption {
	return func(s *Shell) {
		if m != nil {
			s.markdown = m
		}
	}
}

// WithFiles overrides file access for attach and generate.
func WithFiles(read func(string) ([]byte, error), write func(string, []byte) error) ShellOption {
	return func(s *Shell) {
		s.readFile = read
		s.write = write
	}
}

// NewShell creates a shell writing to out.
func NewShell(wizard ports.Wizard, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		wizard:   wizard,
		out:      out,
		profile:  termenv.Ascii,
		markdown: tui.Plain,
		readFile: os.ReadFile,
		write: func(path string, data []byte) error {
			return os.WriteFile(path, data, 0o644)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SessionID returns the active session, empty before Run.
func (s *Shell) SessionID() string { return s.sessionID }

// Run starts a session and executes commands from in until quit, EOF or ctx
// cancellation. The session is ended on return.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	view, err := s.wizard.Start(ctx)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	s.sessionID = view.SessionID
	defer func() {
		if err := s.wizard.End(context.WithoutCancel(ctx), s.sessionID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			fmt.Fprintf(s.out, "failed to end session: %v\n", err)
		}
	}()

	s.render(view)
	fmt.Fprintln(s.out, `Type "help" for commands.`)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := s.Exec(ctx, scanner.Text())
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			fmt.Fprintf(s.out, "%s %v\n", s.profile.String("error:").Foreground(s.profile.Color("#ef4444")), err)
		}
	}
}

// Exec runs one command line against the active session.
func (s *Shell) Exec(ctx context.Context, line string) error {
	cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(cmd) {
	case "":
		return nil
	case "help", "?":
		fmt.Fprint(s.out, shellHelp)
		return nil
	case "q", "quit", "exit":
		return errQuit
	case "show", "menu":
		return s.show(s.wizard.View(ctx, s.sessionID))
	case "set":
		key, value, ok := strings.Cut(rest, " ")
		if !ok && key == "" {
			return errors.New("usage: set <key> <value>")
		}
		parsed, err := s.parseValue(key, strings.TrimSpace(value))
		if err != nil {
			return err
		}
		return s.show(s.wizard.SetAnswer(ctx, s.sessionID, key, parsed))
	case "attach":
		key, path, ok := strings.Cut(rest, " ")
		if !ok {
			return errors.New("usage: attach <key> <path>")
		}
		upload, err := s.loadUpload(strings.TrimSpace(path))
		if err != nil {
			return err
		}
		return s.show(s.wizard.Attach(ctx, s.sessionID, key, upload))
	case "detach":
		args := strings.Fields(rest)
		if len(args) != 2 {
			return errors.New("usage: detach <key> <file-id>")
		}
		return s.show(s.wizard.Detach(ctx, s.sessionID, args[0], args[1]))
	case "next", "n":
		return s.show(s.wizard.Navigate(ctx, s.sessionID, domain.Move{Action: domain.MoveNext}))
	case "back", "b":
		return s.show(s.wizard.Navigate(ctx, s.sessionID, domain.Move{Action: domain.MoveBack}))
	case "goto", "g":
		n, err := strconv.Atoi(rest)
		if err != nil {
			return errors.New("usage: goto <section number>")
		}
		return s.show(s.wizard.Navigate(ctx, s.sessionID, domain.Move{Action: domain.MoveGoTo, Section: n}))
	case "generate":
		return s.generate(ctx, rest)
	case "reset":
		return s.show(s.wizard.Reset(ctx, s.sessionID))
	}
	return fmt.Errorf("unknown command %q (try help)", cmd)
}

// parseValue shapes shell text for the field kind. "-" clears the answer.
func (s *Shell) parseValue(key, raw string) (any, error) {
	field, ok := s.wizard.Schema().Field(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownField, key)
	}
	if raw == "-" {
		return nil, nil
	}
	if field.Kind == schema.KindMultiChoice {
		var out []string
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out, nil
	}
	return raw, nil
}

func (s *Shell) loadUpload(path string) (domain.Upload, error) {
	if path == "" {
		return domain.Upload{}, errors.New("usage: attach <key> <path>")
	}
	data, err := s.readFile(path)
	if err != nil {
		return domain.Upload{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	return domain.Upload{Name: filepath.Base(path), ContentType: contentType, Data: data}, nil
}

func (s *Shell) generate(ctx context.Context, path string) error {
	doc, err := s.wizard.Generate(ctx, s.sessionID)
	if err != nil {
		return err
	}
	if path == "" {
		path = doc.Filename
	}
	if err := s.write(path, doc.Data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	printTo(s.out, "Cover page written to %s (%d bytes).", path, len(doc.Data))
	return nil
}

func (s *Shell) show(view domain.View, err error) error {
	if err != nil {
		return err
	}
	s.render(view)
	return nil
}

func (s *Shell) render(view domain.View) {
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, tui.Menu(s.profile, view.Progress))
	fmt.Fprintln(s.out)

	md := tui.SectionMarkdown(view)
	rendered, err := s.markdown(md)
	if err != nil {
		rendered = md
	}
	fmt.Fprint(s.out, rendered)
}
