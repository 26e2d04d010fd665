// Package notify carries user-facing notifications (the toast analog of a
// browser storefront) from the state layer to whatever surface displays them.
package notify

import (
	"fmt"
	"log"
	"sync"
)

type Level string

const (
	LevelInfo  Level = "info"
	LevelError Level = "error"
)

type Notification struct {
	Level   Level
	Message string
}

// Notifier receives user-visible notifications. Implementations must not
// block the caller.
type Notifier interface {
	Notify(n Notification)
}

// Infof raises an informational notification.
func Infof(n Notifier, format string, args ...any) {
	n.Notify(Notification{Level: LevelInfo, Message: fmt.Sprintf(format, args...)})
}

// Errorf raises an error notification.
func Errorf(n Notifier, format string, args ...any) {
	n.Notify(Notification{Level: LevelError, Message: fmt.Sprintf(format, args...)})
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct {
	Component string
}

func (l *LogNotifier) Notify(n Notification) {
	log.Printf("[%s] %s: %s", l.Component, n.Level, n.Message)
}

// ChannelNotifier buffers notifications on a channel for a UI consumer.
// When the buffer is full the oldest notification is dropped, so a slow or
// absent consumer never blocks a store mutation.
type ChannelNotifier struct {
	mu sync.Mutex
	ch chan Notification
}

func NewChannelNotifier(size int) *ChannelNotifier {
	if size < 1 {
		size = 1
	}
	return &ChannelNotifier{ch: make(chan Notification, size)}
}

func (c *ChannelNotifier) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for {
		select {
		case c.ch <- n:
			return
		default:
			select {
			case <-c.ch:
			default:
			}
		}
	}
}

// C is the consumer side of the notifier.
func (c *ChannelNotifier) C() <-chan Notification {
	return c.ch
}

// Recorder captures notifications for inspection in tests.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}
