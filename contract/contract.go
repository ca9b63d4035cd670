//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"social-client/domain/session"
)

// IKeyValueStore is the persisted storage seen by the session core.
// Get reports found=false for an absent key; Delete of an absent key succeeds.
type IKeyValueStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ITokenValidator asks the backend whether a token is still valid.
type ITokenValidator interface {
	CheckToken(ctx context.Context, token string) (bool, error)
}

// ISessionPersister mirrors the session identity to storage.
type ISessionPersister interface {
	PersistSession(ctx context.Context, state session.State) error
}

// Dispatcher is the write-only channel into the session store.
type Dispatcher interface {
	Dispatch(action session.Action) session.State
}

// Observer is notified with every state produced by a dispatch.
type Observer interface {
	Notify(state session.State)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(state session.State)

func (f ObserverFunc) Notify(state session.State) { f(state) }
