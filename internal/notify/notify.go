// Package notify owns the transient notification surface: stacked
// auto-dismissing toasts and a single blocking confirm/cancel prompt.
// Both follow the same lifecycle: visible, then dismissing while the
// exit transition plays, then removed. Removal is idempotent, so a
// manual dismiss racing an auto-dismiss timer is harmless.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Level selects the toast styling.
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// State is a notification's lifecycle phase.
type State string

const (
	StateVisible    State = "visible"
	StateDismissing State = "dismissing"
)

// Toast is a non-blocking auto-dismissing notification.
type Toast struct {
	ID      string
	Message string
	Level   Level
	State   State
}

// Prompt is a blocking modal with confirm and cancel actions.
// ConfirmPath is the endpoint the confirm button posts to.
type Prompt struct {
	ID           string
	Icon         string
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	ConfirmPath  string
	State        State
}

const (
	defaultToastLifetime  = 3 * time.Second
	defaultPromptLifetime = 5 * time.Second
	defaultExitTransition = 300 * time.Millisecond
)

// Center manages all live notifications and fans out change events.
// Timers fire on their own goroutines, so all state is mutex-guarded.
type Center struct {
	toastLifetime  time.Duration
	promptLifetime time.Duration
	exitTransition time.Duration

	mu          sync.Mutex
	toasts      []Toast
	prompt      *Prompt
	listenerSeq int
	listeners   []centerListener
}

type centerListener struct {
	id int
	fn func()
}

// NewCenter creates a Center with the standard display timings.
func NewCenter() *Center {
	return NewCenterWithTimings(defaultToastLifetime, defaultPromptLifetime, defaultExitTransition)
}

// NewCenterWithTimings creates a Center with explicit timings.
// Tests use short durations here.
func NewCenterWithTimings(toastLifetime, promptLifetime, exitTransition time.Duration) *Center {
	return &Center{
		toastLifetime:  toastLifetime,
		promptLifetime: promptLifetime,
		exitTransition: exitTransition,
	}
}

// Subscribe registers a callback invoked after every state change.
// Callbacks run synchronously in registration order; they may run on a
// timer goroutine. The returned function removes the callback.
func (c *Center) Subscribe(fn func()) func() {
	c.mu.Lock()
	c.listenerSeq++
	id := c.listenerSeq
	c.listeners = append(c.listeners, centerListener{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// ShowToast displays a toast and schedules its auto-dismiss.
// It returns the toast's ID.
func (c *Center) ShowToast(message string, level Level) string {
	id := uuid.NewString()

	c.mu.Lock()
	c.toasts = append(c.toasts, Toast{ID: id, Message: message, Level: level, State: StateVisible})
	c.mu.Unlock()
	c.notify()

	time.AfterFunc(c.toastLifetime, func() { c.DismissToast(id) })
	return id
}

// DismissToast starts the exit transition for a toast. Dismissing an
// unknown or already dismissing toast is a no-op.
func (c *Center) DismissToast(id string) {
	c.mu.Lock()
	dismissed := false
	for i := range c.toasts {
		if c.toasts[i].ID == id && c.toasts[i].State == StateVisible {
			c.toasts[i].State = StateDismissing
			dismissed = true
		}
	}
	c.mu.Unlock()

	if !dismissed {
		return
	}
	c.notify()
	time.AfterFunc(c.exitTransition, func() { c.removeToast(id) })
}

func (c *Center) removeToast(id string) {
	c.mu.Lock()
	kept := c.toasts[:0]
	removed := false
	for _, t := range c.toasts {
		if t.ID == id {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	c.toasts = kept
	c.mu.Unlock()

	if removed {
		c.notify()
	}
}

// Toasts returns a snapshot of the live toasts in display order.
func (c *Center) Toasts() []Toast {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// ShowPrompt displays a blocking prompt, replacing any prior one, and
// schedules its auto-dismiss. It returns the prompt's ID.
func (c *Center) ShowPrompt(p Prompt) string {
	p.ID = uuid.NewString()
	p.State = StateVisible
	if p.ConfirmLabel == "" {
		p.ConfirmLabel = "Confirm"
	}
	if p.CancelLabel == "" {
		p.CancelLabel = "Cancel"
	}

	c.mu.Lock()
	c.prompt = &p
	c.mu.Unlock()
	c.notify()

	id := p.ID
	time.AfterFunc(c.promptLifetime, func() { c.DismissPrompt(id) })
	return id
}

// DismissPrompt starts the exit transition for the prompt. It is a
// no-op if the prompt is gone or a different one is showing.
func (c *Center) DismissPrompt(id string) {
	c.mu.Lock()
	dismissed := c.prompt != nil && c.prompt.ID == id && c.prompt.State == StateVisible
	if dismissed {
		c.prompt.State = StateDismissing
	}
	c.mu.Unlock()

	if !dismissed {
		return
	}
	c.notify()
	time.AfterFunc(c.exitTransition, func() { c.removePrompt(id) })
}

// DismissCurrentPrompt dismisses whatever prompt is showing. Confirm
// endpoints use it so the overlay leaves once the action runs.
func (c *Center) DismissCurrentPrompt() {
	c.mu.Lock()
	var id string
	if c.prompt != nil {
		id = c.prompt.ID
	}
	c.mu.Unlock()

	if id != "" {
		c.DismissPrompt(id)
	}
}

func (c *Center) removePrompt(id string) {
	c.mu.Lock()
	removed := c.prompt != nil && c.prompt.ID == id
	if removed {
		c.prompt = nil
	}
	c.mu.Unlock()

	if removed {
		c.notify()
	}
}

// Prompt returns a snapshot of the current prompt, or nil.
func (c *Center) Prompt() *Prompt {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.prompt == nil {
		return nil
	}
	p := *c.prompt
	return &p
}

func (c *Center) notify() {
	c.mu.Lock()
	listeners := make([]centerListener, len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, l := range listeners {
		l.fn()
	}
}
