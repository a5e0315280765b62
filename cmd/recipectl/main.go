package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dshills/recipectl/internal/render"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

// Exit codes.
const (
	exitOK         = 0
	exitUnexpected = 1
	exitAction     = 2
	exitUsage      = 3
	exitRedirected = 4
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

// codeError returns an exitErr for the given code.
func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// globalFlags holds the persistent root flags.
type globalFlags struct {
	configPath string
	format     string
	out        string
	verbose    bool
	debug      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}
	var ee *exitErr
	if errors.As(err, &ee) {
		if ee.msg != "" {
			fmt.Fprintln(stderr, "Error:", ee.msg)
		}
		return ee.code
	}
	// flag and argument errors from cobra itself
	fmt.Fprintln(stderr, "Error:", err)
	return exitUsage
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "recipectl",
		Short:         "Manage ingredients and recipes on a recipe backend",
		Long:          "recipectl lists, adds, updates and deletes ingredients and recipes through the recipe backend's HTTP API.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/recipectl/config.yaml)")
	pf.StringVar(&flags.format, "format", "", "Output format: text, md, json, html or xlsx (default from config)")
	pf.StringVar(&flags.out, "out", "", "Write output to file instead of stdout")
	pf.BoolVar(&flags.verbose, "verbose", false, "Log actions to stderr")
	pf.BoolVar(&flags.debug, "debug", false, "Log every request and response to stderr (tokens are redacted)")

	s := streams{stdout: stdout, stderr: stderr}
	root.AddCommand(
		newSessionCmd(&flags, s),
		newIngredientsCmd(&flags, s),
		newRecipesCmd(&flags, s),
		newLogoutCmd(&flags, s),
	)
	return root
}

type streams struct {
	stdout io.Writer
	stderr io.Writer
}

// validateFlags returns an error if any flag value is invalid.
func validateFlags(flags *globalFlags, format string) error {
	if _, err := render.NewRenderer(format); err != nil {
		return fmt.Errorf("--format: %w", err)
	}
	if format == "xlsx" && flags.out == "" {
		return fmt.Errorf("--format xlsx requires --out")
	}
	return nil
}
