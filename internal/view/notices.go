package view

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultNoticeLifetime is how long a notice stays up unless dismissed early
const DefaultNoticeLifetime = 5 * time.Second

// NoticeLevel is the severity of a transient notice
type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

// Notice is a transient global message
type Notice struct {
	ID      uuid.UUID
	Level   NoticeLevel
	Message string
}

// NoticeCenter manages auto-dismissing global notices. Action-specific
// failures with a dedicated form slot bypass it and go through
// Renderer.RenderFormError instead.
type NoticeCenter struct {
	mu       sync.Mutex
	lifetime time.Duration
	active   map[uuid.UUID]Notice
	timers   map[uuid.UUID]*time.Timer
	onShow   func(Notice)
}

// NewNoticeCenter creates a notice center. onShow is called for every pushed
// notice and may be nil. lifetime <= 0 uses the default.
func NewNoticeCenter(lifetime time.Duration, onShow func(Notice)) *NoticeCenter {
	if lifetime <= 0 {
		lifetime = DefaultNoticeLifetime
	}
	return &NoticeCenter{
		lifetime: lifetime,
		active:   make(map[uuid.UUID]Notice),
		timers:   make(map[uuid.UUID]*time.Timer),
		onShow:   onShow,
	}
}

// Push shows a notice and schedules its expiry. Returns the notice ID for
// early dismissal.
func (nc *NoticeCenter) Push(level NoticeLevel, message string) uuid.UUID {
	nc.mu.Lock()
	id := uuid.New()
	notice := Notice{ID: id, Level: level, Message: message}
	nc.active[id] = notice
	nc.timers[id] = time.AfterFunc(nc.lifetime, func() {
		nc.Dismiss(id)
	})
	nc.mu.Unlock()

	if nc.onShow != nil {
		nc.onShow(notice)
	}
	return id
}

// Dismiss removes a notice before its lifetime is up. Dismissing an unknown
// or already-expired ID is a no-op.
func (nc *NoticeCenter) Dismiss(id uuid.UUID) {
	nc.mu.Lock()
	if _, ok := nc.active[id]; ok {
		delete(nc.active, id)
		if t := nc.timers[id]; t != nil {
			t.Stop()
		}
		delete(nc.timers, id)
	}
	nc.mu.Unlock()
}

// Active returns the currently visible notices
func (nc *NoticeCenter) Active() []Notice {
	nc.mu.Lock()
	defer nc.mu.Unlock()
	out := make([]Notice, 0, len(nc.active))
	for _, n := range nc.active {
		out = append(out, n)
	}
	return out
}
