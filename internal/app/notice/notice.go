// Package notice collects the toast notifications shown to the user.
package notice

import "sync"

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level
	Title   string
	Message string
}

// Notifier is implemented by anything that can surface a notification.
type Notifier interface {
	Notify(n Notification)
}

type Center struct {
	mu      sync.Mutex
	pending []Notification
}

func NewCenter() *Center {
	return &Center{}
}

func (c *Center) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, n)
}

func (c *Center) Success(message string) {
	c.Notify(Notification{Level: LevelSuccess, Title: "Success", Message: message})
}

func (c *Center) Error(message string) {
	c.Notify(Notification{Level: LevelError, Title: "Error", Message: message})
}

// Drain returns the pending notifications and clears them.
func (c *Center) Drain() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	pending := c.pending
	c.pending = nil
	return pending
}

// Pending returns a copy without clearing.
func (c *Center) Pending() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.pending))
	copy(out, c.pending)
	return out
}
