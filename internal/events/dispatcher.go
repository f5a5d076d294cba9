// Package events provides the in-process fan-out of synchronization events to
// interested consumers, decoupling sync internals from presentation code.
package events

import (
	"sync"

	"github.com/liftlink/watchsync/internal/models"
)

// Handler receives a sync event. Handlers run synchronously on the caller's
// goroutine, in registration order.
type Handler func(models.SyncEvent)

// Subscription identifies a registered handler so its owner can unregister it.
type Subscription uint64

// Dispatcher is an explicit observer registry. Owners must unregister their
// handlers; there is no silent drop on deallocation.
type Dispatcher struct {
	mu       sync.Mutex
	nextID   Subscription
	order    []Subscription
	handlers map[Subscription]Handler
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Subscription]Handler)}
}

// AddHandler registers a handler and returns its subscription handle.
func (d *Dispatcher) AddHandler(h Handler) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	d.order = append(d.order, id)
	d.handlers[id] = h
	return id
}

// RemoveHandler unregisters a single handler. Unknown handles are ignored.
func (d *Dispatcher) RemoveHandler(id Subscription) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.handlers[id]; !ok {
		return
	}
	delete(d.handlers, id)
	for i, existing := range d.order {
		if existing == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// RemoveAllHandlers clears the registry. Used on teardown.
func (d *Dispatcher) RemoveAllHandlers() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.order = nil
	d.handlers = make(map[Subscription]Handler)
}

// Len returns the number of registered handlers.
func (d *Dispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.handlers)
}

// Notify invokes every handler registered at call start, once, in
// registration order. Handlers added during a Notify are not invoked for
// that call.
func (d *Dispatcher) Notify(event models.SyncEvent) {
	d.mu.Lock()
	snapshot := make([]Handler, 0, len(d.order))
	for _, id := range d.order {
		if h, ok := d.handlers[id]; ok {
			snapshot = append(snapshot, h)
		}
	}
	d.mu.Unlock()

	for _, h := range snapshot {
		h(event)
	}
}
