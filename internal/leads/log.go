// Package leads keeps the enrollment leads submitted through the site for
// the lifetime of the process. It is an append-only log with no eviction,
// owned by the composition root and injected where it is needed.
package leads

import (
	"sync"
	"time"
)

type Enrollment struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CourseID    string    `json:"course_id"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type Log struct {
	mu      sync.RWMutex
	entries []Enrollment
}

func NewLog() *Log {
	return &Log{}
}

func (l *Log) Append(e Enrollment) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	return len(l.entries)
}

// List devolve uma cópia, na ordem de chegada.
func (l *Log) List() []Enrollment {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Enrollment, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
