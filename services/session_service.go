// services/session_service.go
package services

import (
	"sync"
	"time"
)

// Session is the per-user UI state the navigation chrome binds to: the
// calendar day being viewed and whether the side menu is open. Owned by
// the hub, never a package-level flag.
type Session struct {
	ActiveDate  string `json:"active_date"`
	MenuVisible bool   `json:"menu_visible"`
}

type SessionListener func(userID uint, s Session)

type SessionHub struct {
	mu        sync.RWMutex
	sessions  map[uint]Session
	listeners []SessionListener
}

func NewSessionHub() *SessionHub {
	return &SessionHub{sessions: make(map[uint]Session)}
}

// Subscribe registers a change listener. Listeners run synchronously on
// the mutating call, outside the hub lock.
func (h *SessionHub) Subscribe(fn SessionListener) {
	h.mu.Lock()
	h.listeners = append(h.listeners, fn)
	h.mu.Unlock()
}

// Get returns the user's session, defaulting the active date to today.
func (h *SessionHub) Get(userID uint) Session {
	h.mu.RLock()
	s, ok := h.sessions[userID]
	h.mu.RUnlock()
	if !ok {
		s = Session{ActiveDate: time.Now().Format("2006-01-02")}
	}
	return s
}

// SelectDate is unconditional assignment; no calendar-bounds validation.
func (h *SessionHub) SelectDate(userID uint, date string) Session {
	h.mu.Lock()
	s := h.sessions[userID]
	if s.ActiveDate == "" {
		s = h.defaulted()
	}
	s.ActiveDate = date
	h.sessions[userID] = s
	listeners := append([]SessionListener(nil), h.listeners...)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(userID, s)
	}
	return s
}

func (h *SessionHub) SetMenuVisible(userID uint, visible bool) Session {
	h.mu.Lock()
	s := h.sessions[userID]
	if s.ActiveDate == "" {
		s = h.defaulted()
	}
	s.MenuVisible = visible
	h.sessions[userID] = s
	listeners := append([]SessionListener(nil), h.listeners...)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(userID, s)
	}
	return s
}

func (h *SessionHub) defaulted() Session {
	return Session{ActiveDate: time.Now().Format("2006-01-02")}
}
