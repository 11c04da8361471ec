package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("session command did not complete")
	}
}

func waitErr(t *testing.T, ch <-chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("session command did not complete")
		return nil
	}
}

func TestSessionStore_SignUp_LandsUnregistered(t *testing.T) {
	gw := &stubGateway{
		signUpFn: func(ctx context.Context, in SignUpInput) (*AuthResult, error) {
			user := models.User{Username: in.Username, Email: in.Email}
			user.ID = 1
			return &AuthResult{Token: "t", User: user, Registered: false}, nil
		},
	}
	store := NewSessionStore(gw, nil)
	defer store.Close()

	require.NoError(t, waitErr(t, store.SignUp(SignUpInput{Username: "alice", Email: "a@example.com", Password: "pw"})))

	state := store.Snapshot()
	require.True(t, state.SignedIn())
	assert.Equal(t, "alice", state.User.Username)
	assert.False(t, state.Registered)
}

func TestSessionStore_SignIn_RegisteredUser(t *testing.T) {
	gw := &stubGateway{
		signInFn: func(ctx context.Context, creds Credentials) (*AuthResult, error) {
			user := models.User{Username: "alice", FullName: "Alice Smith"}
			user.ID = 1
			return &AuthResult{Token: "t", User: user, Registered: true}, nil
		},
	}
	store := NewSessionStore(gw, nil)
	defer store.Close()

	require.NoError(t, waitErr(t, store.SignIn(Credentials{Email: "a@example.com", Password: "pw"})))

	state := store.Snapshot()
	assert.True(t, state.SignedIn())
	assert.True(t, state.Registered)
}

func TestSessionStore_SignIn_Error(t *testing.T) {
	wantErr := errors.New("invalid email or password")
	gw := &stubGateway{
		signInFn: func(ctx context.Context, creds Credentials) (*AuthResult, error) {
			return nil, wantErr
		},
	}
	store := NewSessionStore(gw, nil)
	defer store.Close()

	// The failure lands in the snapshot and is handed back to the caller.
	err := waitErr(t, store.SignIn(Credentials{}))
	assert.ErrorIs(t, err, wantErr)

	state := store.Snapshot()
	assert.False(t, state.SignedIn())
	assert.ErrorIs(t, state.Err, wantErr)
}

func TestSessionStore_LoadUser_AbsentSessionResolves(t *testing.T) {
	gw := &stubGateway{
		currentUserFn: func(ctx context.Context) (*models.User, bool, error) {
			return nil, false, nil
		},
	}
	store := NewSessionStore(gw, nil)
	defer store.Close()

	waitFor(t, store.LoadUser())

	state := store.Snapshot()
	assert.False(t, state.SignedIn())
	assert.False(t, state.Loading)
	assert.NoError(t, state.Err)
}

func TestSessionStore_SignOut_ClearsEvenOnServerError(t *testing.T) {
	gw := &stubGateway{
		signInFn: func(ctx context.Context, creds Credentials) (*AuthResult, error) {
			user := models.User{Username: "alice"}
			user.ID = 1
			return &AuthResult{Token: "t", User: user, Registered: true}, nil
		},
		signOutFn: func(ctx context.Context) error {
			return errors.New("revocation failed")
		},
	}
	store := NewSessionStore(gw, nil)
	defer store.Close()

	require.NoError(t, waitErr(t, store.SignIn(Credentials{})))
	err := waitErr(t, store.SignOut())
	assert.Error(t, err)

	state := store.Snapshot()
	assert.False(t, state.SignedIn())
	assert.NoError(t, state.Err)
}

func TestSessionStore_CommandsAreSerialized(t *testing.T) {
	// A slow sign-in enqueued before a sign-out must complete first; the
	// worker never interleaves commands, so the final state is signed out.
	release := make(chan struct{})
	gw := &stubGateway{
		signInFn: func(ctx context.Context, creds Credentials) (*AuthResult, error) {
			<-release
			user := models.User{Username: "alice"}
			user.ID = 1
			return &AuthResult{Token: "t", User: user, Registered: true}, nil
		},
		signOutFn: func(ctx context.Context) error {
			return nil
		},
	}
	store := NewSessionStore(gw, nil)
	defer store.Close()

	signInDone := store.SignIn(Credentials{})
	signOutDone := store.SignOut()
	close(release)

	waitErr(t, signInDone)
	waitErr(t, signOutDone)

	assert.False(t, store.Snapshot().SignedIn())
}

func TestSessionStore_MarkRegistered(t *testing.T) {
	var changes []SessionState
	gw := &stubGateway{}
	store := NewSessionStore(gw, func(st SessionState) {
		changes = append(changes, st)
	})
	defer store.Close()

	user := &models.User{Username: "alice", FullName: "Alice Smith"}
	user.ID = 1
	waitFor(t, store.MarkRegistered(user))

	state := store.Snapshot()
	assert.True(t, state.Registered)
	require.NotEmpty(t, changes)
	assert.True(t, changes[len(changes)-1].Registered)
}
