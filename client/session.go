package client

import (
	"context"
	"sync"

	"ripple/internal/models"
)

// SessionState is an immutable snapshot of the auth session.
type SessionState struct {
	User       *models.User
	Registered bool
	Loading    bool
	Err        error
}

// SignedIn reports whether the snapshot carries an authenticated user.
func (s SessionState) SignedIn() bool {
	return s.User != nil
}

type sessionCommand func(ctx context.Context)

// SessionStore owns the auth session. All mutations (load, sign-in, sign-up,
// sign-out) are funneled through a single worker goroutine, so two overlapping
// auth calls can never interleave their load-then-store sequences; the last
// command enqueued wins deterministically.
type SessionStore struct {
	gateway Gateway

	mu    sync.RWMutex
	state SessionState

	commands chan sessionCommand
	done     chan struct{}
	closed   sync.Once

	onChange func(SessionState)
}

// NewSessionStore creates the store and starts its command worker.
// onChange, if non-nil, is invoked from the worker after every state change.
func NewSessionStore(gateway Gateway, onChange func(SessionState)) *SessionStore {
	s := &SessionStore{
		gateway:  gateway,
		commands: make(chan sessionCommand, 16),
		done:     make(chan struct{}),
		onChange: onChange,
	}
	go s.run()
	return s
}

func (s *SessionStore) run() {
	for {
		select {
		case cmd := <-s.commands:
			cmd(context.Background())
		case <-s.done:
			return
		}
	}
}

// Close stops the command worker. Pending commands are dropped.
func (s *SessionStore) Close() {
	s.closed.Do(func() { close(s.done) })
}

// Snapshot returns the current session state.
func (s *SessionStore) Snapshot() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *SessionStore) setState(st SessionState) {
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
	if s.onChange != nil {
		s.onChange(st)
	}
}

// enqueue submits a command and returns a channel closed when it completes.
func (s *SessionStore) enqueue(cmd sessionCommand) <-chan struct{} {
	doneCh := make(chan struct{})
	wrapped := func(ctx context.Context) {
		defer close(doneCh)
		cmd(ctx)
	}
	select {
	case s.commands <- wrapped:
	case <-s.done:
		close(doneCh)
	}
	return doneCh
}

// enqueueErr is enqueue for commands whose failure the caller needs back.
// The returned channel yields the command's error once it completes.
func (s *SessionStore) enqueueErr(cmd func(ctx context.Context) error) <-chan error {
	errCh := make(chan error, 1)
	wrapped := func(ctx context.Context) {
		errCh <- cmd(ctx)
		close(errCh)
	}
	select {
	case s.commands <- wrapped:
	case <-s.done:
		close(errCh)
	}
	return errCh
}

// LoadUser asks the gateway who is signed in and updates the snapshot.
// An absent session is a valid resolved state, not an error.
func (s *SessionStore) LoadUser() <-chan struct{} {
	return s.enqueue(func(ctx context.Context) {
		s.setState(SessionState{Loading: true})
		user, registered, err := s.gateway.CurrentUser(ctx)
		if err != nil {
			s.setState(SessionState{Err: err})
			return
		}
		s.setState(SessionState{User: user, Registered: registered})
	})
}

// SignIn authenticates and replaces the session. A failure is recorded in
// the snapshot and handed back to the caller.
func (s *SessionStore) SignIn(creds Credentials) <-chan error {
	return s.enqueueErr(func(ctx context.Context) error {
		s.setState(SessionState{Loading: true})
		result, err := s.gateway.SignIn(ctx, creds)
		if err != nil {
			s.setState(SessionState{Err: err})
			return err
		}
		s.setState(SessionState{User: &result.User, Registered: result.Registered})
		return nil
	})
}

// SignUp creates an account and signs it in. A fresh account always lands
// unregistered; the application routes it to profile completion.
func (s *SessionStore) SignUp(in SignUpInput) <-chan error {
	return s.enqueueErr(func(ctx context.Context) error {
		s.setState(SessionState{Loading: true})
		result, err := s.gateway.SignUp(ctx, in)
		if err != nil {
			s.setState(SessionState{Err: err})
			return err
		}
		s.setState(SessionState{User: &result.User, Registered: result.Registered})
		return nil
	})
}

// SignOut revokes the token and clears the session. The local session is
// cleared even if revocation fails server-side; the failure is still
// handed back to the caller.
func (s *SessionStore) SignOut() <-chan error {
	return s.enqueueErr(func(ctx context.Context) error {
		s.setState(SessionState{Loading: true})
		err := s.gateway.SignOut(ctx)
		s.setState(SessionState{})
		return err
	})
}

// MarkRegistered updates the snapshot after a profile save completed the
// registration step.
func (s *SessionStore) MarkRegistered(user *models.User) <-chan struct{} {
	return s.enqueue(func(ctx context.Context) {
		s.setState(SessionState{User: user, Registered: user.Registered()})
	})
}
