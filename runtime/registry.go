package runtime

import (
	"social-client/contract"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Registry keeps the observers of the session store in subscription order.
type Registry struct {
	mu        sync.RWMutex
	observers map[string]contract.Observer // map subscription -> Observer
	order     []string
}

func NewRegistry() *Registry {
	return &Registry{
		observers: make(map[string]contract.Observer),
	}
}

// Subscribe registers an observer and returns the ID needed to unsubscribe it.
func (r *Registry) Subscribe(observer contract.Observer) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.NewString()
	r.observers[id] = observer
	r.order = append(r.order, id)
	return id
}

// Unsubscribe removes an observer. Unknown IDs are ignored.
func (r *Registry) Unsubscribe(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.observers[id]; !ok {
		return
	}
	delete(r.observers, id)
	r.order = lo.Without(r.order, id)
}

// Observers returns a snapshot so notification can run without holding the lock.
func (r *Registry) Observers() []contract.Observer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.order, func(id string, _ int) contract.Observer {
		return r.observers[id]
	})
}
