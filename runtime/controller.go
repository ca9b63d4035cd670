package runtime

import (
	"context"
	"log/slog"
	"social-client/contract"
	"social-client/domain/session"
	"sync"
)

// Controller owns the session state. Every change goes through Dispatch,
// which is serialized: reduce, mirror to storage if the login flag flipped,
// then notify observers in subscription order. Observers must not call
// Dispatch from Notify.
type Controller struct {
	mu        sync.Mutex
	log       *slog.Logger
	state     session.State
	persister contract.ISessionPersister
	registry  *Registry
	ctx       context.Context
}

func NewController(log *slog.Logger, initial session.State, persister contract.ISessionPersister) *Controller {
	return &Controller{
		log:       log,
		state:     initial.Clone(),
		persister: persister,
		registry:  NewRegistry(),
		ctx:       context.Background(),
	}
}

// Start mirrors the initial state to storage, as the first render would.
// ctx bounds every later persistence write.
func (c *Controller) Start(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ctx = ctx
	c.persist(c.state)
}

// State returns a copy of the current state.
func (c *Controller) State() session.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Clone()
}

func (c *Controller) Dispatch(action session.Action) session.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	previous := c.state
	c.state = session.Reduce(previous, action)
	c.log.Debug("Action dispatched", "kind", action.Kind())

	if previous.LoggedIn != c.state.LoggedIn {
		c.persist(c.state)
	}

	for _, observer := range c.registry.Observers() {
		observer.Notify(c.state.Clone())
	}
	return c.state.Clone()
}

func (c *Controller) Subscribe(observer contract.Observer) string {
	return c.registry.Subscribe(observer)
}

func (c *Controller) Unsubscribe(id string) {
	c.registry.Unsubscribe(id)
}

func (c *Controller) persist(state session.State) {
	if err := c.persister.PersistSession(c.ctx, state); err != nil {
		c.log.Error("Failed to persist session", "error", err)
	}
}
