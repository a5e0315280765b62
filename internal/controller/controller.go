// Package controller implements the ingredient and recipe page controllers.
//
// Both follow the same flow: read and validate form fields, issue one
// backend request, and on success re-fetch the whole collection and
// re-render it from scratch. The in-memory cache is only ever replaced
// wholesale by a successful list fetch. Requests are not deduplicated or
// ordered; the last Fetch to complete wins.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dshills/recipectl/internal/api"
	"github.com/dshills/recipectl/internal/page"
	"github.com/dshills/recipectl/internal/session"
)

// DefaultLoginPage is where unauthenticated users and logouts are sent.
const DefaultLoginPage = "../login/login-page.html"

// Validation errors. They are returned after the user has been alerted and
// before any request is sent.
var (
	ErrEmptyName         = errors.New("name is required")
	ErrEmptyInstructions = errors.New("instructions are required")
	ErrNotFound          = errors.New("no cached entry with that name")
	ErrAccessDenied      = errors.New("access denied")
)

// State is the request lifecycle of a controller.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Env is what a controller needs from its surroundings.
type Env struct {
	Session   session.Store
	Alerts    page.Alerter
	Nav       page.Navigator
	Log       *slog.Logger
	LoginPage string
}

func (e Env) loginPage() string {
	if e.LoginPage == "" {
		return DefaultLoginPage
	}
	return e.LoginPage
}

func (e Env) logger() *slog.Logger {
	if e.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Log
}

// base carries the plumbing both controllers share.
type base struct {
	env Env
	log *slog.Logger

	stateMu sync.Mutex
	state   State
}

func newBase(env Env, name string) base {
	return base{env: env, log: env.logger().With("page", name)}
}

// State returns the current request state.
func (b *base) State() State {
	b.stateMu.Lock()
	defer b.stateMu.Unlock()
	return b.state
}

func (b *base) setState(s State) {
	b.stateMu.Lock()
	b.state = s
	b.stateMu.Unlock()
}

func (b *base) alert(msg string) {
	if b.env.Alerts != nil {
		b.env.Alerts.Alert(msg)
	}
}

func (b *base) redirect(target string) {
	b.log.Info("redirect", "target", target)
	if b.env.Nav != nil {
		b.env.Nav.Redirect(target)
	}
}

// reject alerts msg and returns err without touching the network.
func (b *base) reject(msg string, err error) error {
	b.alert(msg)
	return err
}

// fail logs a request failure, alerts the user and marks the controller as
// errored. rejected is shown when the backend answered with a bad status,
// unreachable when the request never completed.
func (b *base) fail(action string, err error, rejected, unreachable string) error {
	b.setState(StateError)
	b.log.Error(action+" failed", "err", err)
	if api.IsTransport(err) {
		b.alert(unreachable)
	} else {
		b.alert(rejected)
	}
	return fmt.Errorf("%s: %w", action, err)
}
