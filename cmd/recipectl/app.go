package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/dshills/recipectl/internal/api"
	"github.com/dshills/recipectl/internal/config"
	"github.com/dshills/recipectl/internal/controller"
	"github.com/dshills/recipectl/internal/logging"
	"github.com/dshills/recipectl/internal/page"
	"github.com/dshills/recipectl/internal/render"
	"github.com/dshills/recipectl/internal/session"
	"github.com/dshills/recipectl/internal/view"
)

// app is one invocation's wiring: config, session, backend client and the
// capabilities handed to a controller.
type app struct {
	cfg    *config.Config
	flags  *globalFlags
	io     streams
	log    *slog.Logger
	store  *session.FileStore
	client *api.Client
	nav    *page.Redirector
	format string
}

func newApp(flags *globalFlags, io streams) (*app, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, codeError(exitUsage, "loading config: %s", err)
	}

	format := cfg.Output.Format
	if flags.format != "" {
		format = flags.format
	}
	if err := validateFlags(flags, format); err != nil {
		return nil, codeError(exitUsage, "invalid flags: %s", err)
	}

	level := cfg.Logging.Level
	switch {
	case flags.debug:
		level = "debug"
	case flags.verbose:
		level = "info"
	}
	log, err := logging.New(level, cfg.Logging.Format, io.stderr)
	if err != nil {
		return nil, codeError(exitUsage, "configuring logging: %s", err)
	}

	store, err := session.OpenFile(cfg.Session.Path)
	if err != nil {
		return nil, codeError(exitUsage, "opening session: %s", err)
	}

	client := api.New(cfg.Backend.BaseURL, store,
		api.WithHTTPClient(&http.Client{Timeout: cfg.Backend.Timeout}),
		api.WithLogger(log),
	)
	log.Debug("backend", "base_url", client.BaseURL(), "session", store.Path())

	return &app{
		cfg:    cfg,
		flags:  flags,
		io:     io,
		log:    log,
		store:  store,
		client: client,
		nav:    &page.Redirector{},
		format: format,
	}, nil
}

func (a *app) env() controller.Env {
	return controller.Env{
		Session:   a.store,
		Alerts:    page.NewTerminalAlerter(a.io.stderr),
		Nav:       a.nav,
		Log:       a.log,
		LoginPage: a.cfg.Pages.Login,
	}
}

// outcome maps a controller result to an exit code. A redirect wins over
// any error since the page has been left.
func (a *app) outcome(err error) error {
	if target := a.nav.Target(); target != "" {
		return codeError(exitRedirected, "redirected to %s", target)
	}
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return codeError(exitUnexpected, "interrupted")
	}
	// The alert already told the user what went wrong.
	a.log.Debug("action failed", "err", err)
	return &exitErr{code: exitAction}
}

// write renders the list container and writes it to --out or stdout.
func (a *app) write(title string, l *view.List, detailed bool) error {
	renderer, err := render.NewRenderer(a.format)
	if err != nil {
		return codeError(exitUsage, "invalid format: %s", err)
	}
	out, err := renderer.Render(render.Snapshot(title, l, detailed))
	if err != nil {
		return codeError(exitUnexpected, "rendering output: %s", err)
	}

	if a.flags.out != "" {
		if err := os.WriteFile(a.flags.out, out, 0o644); err != nil {
			return codeError(exitUsage, "writing output file: %s", err)
		}
		a.log.Info("output written", "path", a.flags.out, "format", a.format)
		return nil
	}
	if _, err := a.io.stdout.Write(out); err != nil {
		return codeError(exitUnexpected, "writing output: %s", err)
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		fmt.Fprintln(a.io.stdout)
	}
	return nil
}
