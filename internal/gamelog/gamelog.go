// Package gamelog is the player-facing message log.
package gamelog

import "fmt"

// Log is an append-only ordered list of human-readable messages.
type Log struct {
	entries []string
}

// New returns an empty log.
func New() *Log { return &Log{} }

// Add appends a message.
func (l *Log) Add(msg string) { l.entries = append(l.entries, msg) }

// Addf appends a formatted message.
func (l *Log) Addf(format string, args ...any) {
	l.Add(fmt.Sprintf(format, args...))
}

// Entries returns every message, oldest first.
func (l *Log) Entries() []string {
	return append([]string(nil), l.entries...)
}

// Tail returns up to the last n messages, oldest first.
func (l *Log) Tail(n int) []string {
	if n <= 0 {
		return nil
	}
	start := max(0, len(l.entries)-n)
	return append([]string(nil), l.entries[start:]...)
}

// Last returns the newest message, or "" when empty.
func (l *Log) Last() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[len(l.entries)-1]
}

// Len is the number of messages logged.
func (l *Log) Len() int { return len(l.entries) }

// Clear forgets every message.
func (l *Log) Clear() { l.entries = nil }
