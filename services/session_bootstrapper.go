package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"social-client/contract"
	"social-client/domain/session"
	"sync"

	"github.com/samber/lo"
)

// Storage keys shared with the web client.
const (
	TokenKey    = "complexappToken"
	UsernameKey = "complexappUsername"
	AvatarKey   = "complexappAvatar"
)

var sessionKeys = []string{TokenKey, UsernameKey, AvatarKey}

// SessionBootstrapper restores the session at startup, mirrors it back to
// storage and checks the restored token against the backend once.
type SessionBootstrapper struct {
	log       *slog.Logger
	store     contract.IKeyValueStore
	validator contract.ITokenValidator
	once      sync.Once
}

func NewSessionBootstrapper(log *slog.Logger, store contract.IKeyValueStore, validator contract.ITokenValidator) *SessionBootstrapper {
	return &SessionBootstrapper{log: log, store: store, validator: validator}
}

// InitializeState builds the startup state from storage. Absent keys become nil
// identity fields; the session is logged in iff a non-empty token was stored.
func (b *SessionBootstrapper) InitializeState(ctx context.Context) (session.State, error) {
	values := make(map[string]*string, len(sessionKeys))
	for _, key := range sessionKeys {
		value, found, err := b.store.Get(ctx, key)
		if err != nil {
			return session.State{}, fmt.Errorf("restore session: %w", err)
		}
		if found {
			values[key] = lo.ToPtr(value)
		}
	}

	state := session.NewState(session.User{
		Token:    values[TokenKey],
		Username: values[UsernameKey],
		Avatar:   values[AvatarKey],
	})
	b.log.Debug("Session restored", "logged_in", state.LoggedIn, "username", state.User.UsernameValue())
	return state, nil
}

// PersistSession writes the identity when logged in and removes it otherwise.
// Both branches are idempotent.
func (b *SessionBootstrapper) PersistSession(ctx context.Context, state session.State) error {
	if state.LoggedIn {
		pairs := map[string]string{
			TokenKey:    state.User.TokenValue(),
			UsernameKey: state.User.UsernameValue(),
			AvatarKey:   state.User.AvatarValue(),
		}
		for _, key := range sessionKeys {
			if err := b.store.Set(ctx, key, pairs[key]); err != nil {
				return fmt.Errorf("persist session: %w", err)
			}
		}
		return nil
	}

	var errs []error
	lo.ForEach(sessionKeys, func(key string, _ int) {
		if err := b.store.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("clear session: %w", errors.Join(errs...))
	}
	return nil
}

// ValidateSessionOnce checks the restored token the first time it is called;
// later calls return immediately. A rejected token dispatches a logout followed
// by the expiry notice. Request failures and cancellation are only logged, and
// nothing is dispatched once ctx is done.
func (b *SessionBootstrapper) ValidateSessionOnce(ctx context.Context, state session.State, dispatch contract.Dispatcher) {
	b.once.Do(func() {
		if !state.LoggedIn {
			return
		}

		valid, err := b.validator.CheckToken(ctx, state.User.TokenValue())
		if err != nil {
			if ctx.Err() != nil {
				b.log.Debug("Token check cancelled", "error", err)
				return
			}
			b.log.Warn("There was a problem or the request was cancelled.", "error", err)
			return
		}

		if ctx.Err() != nil {
			b.log.Debug("Token check result discarded after cancellation")
			return
		}

		if !valid {
			b.log.Info("Restored session rejected by backend", "username", state.User.UsernameValue())
			dispatch.Dispatch(session.Logout{})
			dispatch.Dispatch(session.FlashMessage{Value: session.SessionExpiredMessage})
		}
	})
}

// StartValidation runs ValidateSessionOnce in the background. The returned
// cancel tears the check down; done is closed once the goroutine has returned.
func (b *SessionBootstrapper) StartValidation(ctx context.Context, state session.State, dispatch contract.Dispatcher) (context.CancelFunc, <-chan struct{}) {
	validationCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		b.ValidateSessionOnce(validationCtx, state, dispatch)
	}()

	return cancel, done
}
