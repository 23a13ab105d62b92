package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient notification shown once on the next rendered page.
type Toast struct {
	Kind    ToastKind `json:"kind"`
	Message string    `json:"message"`
}

// Context is one browsing session: its store plus pending toasts.
type Context struct {
	ID    string
	Store *Store

	mu     sync.Mutex
	toasts []Toast
}

func (c *Context) PushToast(kind ToastKind, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.toasts = append(c.toasts, Toast{Kind: kind, Message: message})
}

// DrainToasts returns and clears the pending toasts.
func (c *Context) DrainToasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	toasts := c.toasts
	c.toasts = nil
	return toasts
}

// Registry keeps browsing sessions in memory and drops them after they have
// been idle for the configured time.
type Registry struct {
	backend        Backend
	contexts       *cache.Cache
	restoreTimeout time.Duration
	// 생성 경쟁 방지
	createMu sync.Mutex
}

func NewRegistry(backend Backend, idle time.Duration) *Registry {
	r := &Registry{
		backend:        backend,
		contexts:       cache.New(idle, idle/2+time.Second),
		restoreTimeout: 10 * time.Second,
	}
	r.contexts.OnEvicted(func(id string, _ interface{}) {
		log.Debug().Str("sid", id).Msg("Registry: browsing session expired")
	})
	return r
}

// Lookup returns the browsing session for id and refreshes its idle timer.
func (r *Registry) Lookup(id string) (*Context, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := r.contexts.Get(id)
	if !ok {
		return nil, false
	}
	bc := v.(*Context)
	r.contexts.SetDefault(id, bc)
	return bc, true
}

// Open returns the browsing session for id, or starts a new one. A new
// session with a persisted token restores it in the background and is in
// StateLoading until that finishes; without a token it settles to
// unauthenticated before Open returns.
func (r *Registry) Open(id, token string) (*Context, bool) {
	if bc, ok := r.Lookup(id); ok {
		return bc, false
	}

	r.createMu.Lock()
	defer r.createMu.Unlock()
	if bc, ok := r.Lookup(id); ok {
		return bc, false
	}

	bc := &Context{ID: uuid.NewString(), Store: NewStore(r.backend)}
	bc.Store.Subscribe(func(snap Snapshot) {
		log.Info().Str("sid", bc.ID).Stringer("state", snap.State).Msg("Registry: session state changed")
	})
	r.contexts.SetDefault(bc.ID, bc)

	if token == "" {
		bc.Store.Restore(context.Background(), "")
		return bc, true
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.restoreTimeout)
		defer cancel()
		bc.Store.Restore(ctx, token)
	}()
	return bc, true
}

func (r *Registry) Len() int {
	return r.contexts.ItemCount()
}
