package mcp

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id              string
	ProtocolVersion string
	ClientName      string
	ClientVersion   string
	LogLevel        string
	Initialized     bool
	CreatedAt       time.Time
	LastSeenAt      time.Time
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: map[string]*Session{},
	}
}

type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func (m *SessionManager) Create(protocolVersion, clientName, clientVersion string) *Session {
	now := time.Now()
	s := &Session{
		Id:              uuid.NewString(),
		ProtocolVersion: protocolVersion,
		ClientName:      clientName,
		ClientVersion:   clientVersion,
		LogLevel:        "info",
		CreatedAt:       now,
		LastSeenAt:      now,
	}
	m.mu.Lock()
	m.sessions[s.Id] = s
	m.mu.Unlock()
	return s
}

func (m *SessionManager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

func (m *SessionManager) Touch(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[id]; ok {
		s.LastSeenAt = time.Now()
	}
}

func (m *SessionManager) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
