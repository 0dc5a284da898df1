// Package loginform is the login form controller. It owns the field
// validation flags, the remember preference, the error banner flag and the
// submit task; surfaces (the vecty page, the terminal UI) render Snapshot
// and forward user events to it.
package loginform

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"specfarm-front/internal/authclient"
	"specfarm-front/internal/storage"

	"github.com/rohanthewiz/logger"
)

// Authenticator performs the network half of a login.
type Authenticator interface {
	Login(ctx context.Context, creds authclient.Credentials) (string, error)
}

// Navigator moves the app somewhere else after a successful login.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func(path string)

func (fn NavigatorFunc) Navigate(path string) { fn(path) }

// Options wires a Form to its collaborators.
type Options struct {
	Auth        Authenticator
	Credentials storage.CredentialStore
	Session     storage.SessionStore
	Navigator   Navigator

	// Target is where a successful login goes. Defaults to "/".
	Target string

	RememberKey string // defaults to storage.RememberKey
	TokenKey    string // defaults to storage.TokenKey

	// OnChange is called, outside the form lock, after every state change.
	OnChange func()
}

// Form is safe for use from multiple goroutines.
type Form struct {
	opts Options

	mu     sync.Mutex
	state  State
	scope  context.Context
	cancel context.CancelFunc
}

// New creates an unmounted form.
func New(opts Options) *Form {
	if opts.RememberKey == "" {
		opts.RememberKey = storage.RememberKey
	}
	if opts.TokenKey == "" {
		opts.TokenKey = storage.TokenKey
	}
	if opts.Navigator == nil {
		opts.Navigator = NavigatorFunc(func(string) {})
	}
	return &Form{opts: opts}
}

// Mount opens the form's lifetime scope under ctx and pre-fills the
// identifier from the remembered entry, if any.
func (f *Form) Mount(ctx context.Context) {
	f.mu.Lock()
	if f.state.Mounted {
		f.mu.Unlock()
		return
	}
	f.scope, f.cancel = context.WithCancel(ctx)
	f.state = State{Mounted: true}

	id, remembered := f.opts.Credentials.Get(f.opts.RememberKey)
	if remembered {
		f.state.Identifier = id
		f.state.Remember = true
	}
	f.mu.Unlock()

	logger.Debug("Login form mounted", "remembered", strconv.FormatBool(remembered))
	f.changed()
}

// Unmount ends the lifetime scope. A pending submit is cancelled and its
// result is dropped.
func (f *Form) Unmount() {
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	f.state.Mounted = false
	f.state.Submitting = false
	f.mu.Unlock()
}

// Snapshot returns a copy of the current state for rendering.
func (f *Form) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// SetTarget changes where a successful login navigates to.
func (f *Form) SetTarget(path string) {
	f.mu.Lock()
	f.opts.Target = path
	f.mu.Unlock()
}

// Target reports the navigation target, "/" when none was given.
func (f *Form) Target() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.target()
}

func (f *Form) target() string {
	if f.opts.Target == "" {
		return "/"
	}
	return f.opts.Target
}

// SetIdentifier records a change of the identifier field.
func (f *Form) SetIdentifier(value string) {
	f.update(func(s *State) { s.Identifier = value })
}

// SetRemember records a toggle of the remember checkbox.
func (f *Form) SetRemember(on bool) {
	f.update(func(s *State) { s.Remember = on })
}

// ValidateIdentifier flags the identifier field iff value is empty and
// reports whether it passed.
func (f *Form) ValidateIdentifier(value string) bool {
	empty := isEmpty(value)
	f.update(func(s *State) { s.IdentifierInvalid = empty })
	return !empty
}

// ValidatePassword flags the secret field iff value is empty and reports
// whether it passed.
func (f *Form) ValidatePassword(value string) bool {
	empty := isEmpty(value)
	f.update(func(s *State) { s.SecretInvalid = empty })
	return !empty
}

// BlurIdentifier validates the identifier currently held by the form.
func (f *Form) BlurIdentifier() bool {
	return f.ValidateIdentifier(f.Snapshot().Identifier)
}

// BlurSecret validates the secret as it reads in the field right now.
func (f *Form) BlurSecret(value string) bool {
	return f.ValidatePassword(value)
}

// FocusIdentifier clears the identifier flag whatever the field holds.
func (f *Form) FocusIdentifier() {
	f.update(func(s *State) { s.IdentifierInvalid = false })
}

// FocusSecret clears the secret flag whatever the field holds.
func (f *Form) FocusSecret() {
	f.update(func(s *State) { s.SecretInvalid = false })
}

// Submit runs one login attempt with the identifier held by the form and
// secret as read from the field. It blocks until the attempt settles.
//
// Both emptiness checks are computed first and the guard is taken from
// them directly; the display flags are updated afterwards.
func (f *Form) Submit(secret string) Outcome {
	f.mu.Lock()
	if !f.state.Mounted {
		f.mu.Unlock()
		return OutcomeAborted
	}
	if f.state.Submitting {
		f.mu.Unlock()
		logger.Debug("Login submit ignored, request already in flight")
		return OutcomeBusy
	}

	id := f.state.Identifier
	idEmpty, pwEmpty := isEmpty(id), isEmpty(secret)
	f.state.IdentifierInvalid = idEmpty
	f.state.SecretInvalid = pwEmpty
	if idEmpty || pwEmpty {
		f.mu.Unlock()
		f.changed()
		return OutcomeInvalid
	}

	f.state.Submitting = true
	scope := f.scope
	f.mu.Unlock()
	f.changed()

	token, err := f.opts.Auth.Login(scope, authclient.Credentials{UserID: id, UserPw: secret})
	if err == nil && token == "" {
		err = authclient.ErrRejected
	}

	f.mu.Lock()
	if scope != f.scope || scope.Err() != nil {
		f.mu.Unlock()
		logger.Debug("Login settled after the form closed, result dropped", "user_id", id)
		return OutcomeAborted
	}
	f.state.Submitting = false

	if err != nil {
		f.fail(err, id)
		f.mu.Unlock()
		f.changed()
		return OutcomeFailed
	}

	if setErr := f.opts.Session.Set(f.opts.TokenKey, token); setErr != nil {
		f.fail(setErr, id)
		f.mu.Unlock()
		f.changed()
		return OutcomeFailed
	}
	f.state.ErrorVisible = false
	f.state.Failure = FailureNone
	f.persistRemember(id)
	target := f.target()
	f.mu.Unlock()

	f.changed()
	logger.Info("Login succeeded", "user_id", id, "target", target)
	f.opts.Navigator.Navigate(target)
	return OutcomeSucceeded
}

// SubmitAsync runs Submit on its own goroutine. The channel receives the
// outcome once and is then closed.
func (f *Form) SubmitAsync(secret string) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		out <- f.Submit(secret)
	}()
	return out
}

// fail must be called with mu held.
func (f *Form) fail(err error, id string) {
	switch {
	case errors.Is(err, authclient.ErrRejected):
		f.state.Failure = FailureRejected
		logger.Info("Login rejected", "user_id", id)
	case isTransport(err):
		f.state.Failure = FailureTransport
		logger.LogErr(err, "login request failed", "user_id", id)
	default:
		f.state.Failure = FailureStorage
		logger.LogErr(err, "failed to store session token", "user_id", id)
	}
	f.state.ErrorVisible = true
}

// persistRemember must be called with mu held. Failures are logged only;
// they never block the login.
func (f *Form) persistRemember(id string) {
	if f.state.Remember {
		if err := f.opts.Credentials.Set(f.opts.RememberKey, id); err != nil {
			logger.LogErr(err, "failed to remember user id")
		}
		return
	}
	if err := f.opts.Credentials.Remove(f.opts.RememberKey); err != nil {
		logger.LogErr(err, "failed to forget user id")
	}
}

func (f *Form) update(fn func(s *State)) {
	f.mu.Lock()
	fn(&f.state)
	f.mu.Unlock()
	f.changed()
}

func (f *Form) changed() {
	if f.opts.OnChange != nil {
		f.opts.OnChange()
	}
}

func isEmpty(v string) bool { return v == "" }

func isTransport(err error) bool {
	var te *authclient.TransportError
	return errors.As(err, &te)
}
