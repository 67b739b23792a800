package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/submittals"
	"github.com/aretw0/submittals/internal/config"
	"github.com/aretw0/submittals/internal/presentation/tui"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// defaultWidth wraps section text when the terminal size is unknown.
const defaultWidth = 80

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Config   config.Config
	NoBanner bool
}

// Execute runs one interactive wizard session on stdin/stdout.
func Execute(opts RunOptions) error {
	logger, err := CreateLogger(opts.Config.LogLevel)
	if err != nil {
		return err
	}

	sigCtx := NewSignalContext(context.Background())
	defer sigCtx.Cancel()

	stack, err := NewStack(sigCtx, opts.Config, logger)
	if err != nil {
		return err
	}
	defer stack.Close()

	var shellOpts []ShellOption
	if term.IsTerminal(int(os.Stdout.Fd())) {
		width := defaultWidth
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
		profile := termenv.ColorProfile()
		shellOpts = append(shellOpts, WithProfile(profile), WithMarkdown(tui.NewRenderer(width)))
		if !opts.NoBanner {
			tui.PrintBanner(os.Stdout, profile, submittals.Version)
		}
	}

	shell := NewShell(stack.Engine, os.Stdout, shellOpts...)
	runErr := shell.Run(sigCtx, NewInterruptibleReader(os.Stdin, sigCtx.Done()))

	if sig := sigCtx.Signal(); sig != nil {
		fmt.Println()
		printTo(os.Stdout, "Interrupted (%s).", sig)
	}
	return handleExecutionError(runErr)
}
