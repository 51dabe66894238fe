package logging

import "sync"

// MockLogger is a Logger implementation for tests. It records every message
// so assertions can be made about what was logged.
type MockLogger struct {
	mu      sync.Mutex
	Entries []MockEntry
}

// MockEntry is one recorded log call.
type MockEntry struct {
	Level   string
	Message string
	Fields  []Field
	Err     error
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, err error, fields []Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, MockEntry{Level: level, Message: msg, Fields: fields, Err: err})
}

// Debug records a debug-level message.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("debug", msg, nil, fields) }

// Info records an info-level message.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("info", msg, nil, fields) }

// Warn records a warn-level message.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("warn", msg, nil, fields) }

// Error records an error-level message.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("error", msg, nil, fields) }

// WithError returns a child logger that attaches err to subsequent entries.
func (m *MockLogger) WithError(err error) Logger {
	return &mockChild{parent: m, err: err}
}

// WithField returns a child logger that attaches a field to subsequent entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &mockChild{parent: m, fields: []Field{{Key: key, Value: value}}}
}

// HasMessage reports whether any entry matches the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}

type mockChild struct {
	parent *MockLogger
	err    error
	fields []Field
}

func (c *mockChild) Debug(msg string, fields ...Field) {
	c.parent.record("debug", msg, c.err, append(c.fields, fields...))
}

func (c *mockChild) Info(msg string, fields ...Field) {
	c.parent.record("info", msg, c.err, append(c.fields, fields...))
}

func (c *mockChild) Warn(msg string, fields ...Field) {
	c.parent.record("warn", msg, c.err, append(c.fields, fields...))
}

func (c *mockChild) Error(msg string, fields ...Field) {
	c.parent.record("error", msg, c.err, append(c.fields, fields...))
}

func (c *mockChild) WithError(err error) Logger {
	return &mockChild{parent: c.parent, err: err, fields: c.fields}
}

func (c *mockChild) WithField(key string, value interface{}) Logger {
	return &mockChild{parent: c.parent, err: c.err, fields: append(c.fields, Field{Key: key, Value: value})}
}
