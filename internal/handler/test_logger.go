package handler

// Recording logger used by handler package tests.
type MockHandlerLogger struct {
	Messages []string
}

func NewMockHandlerLogger() *MockHandlerLogger {
	return &MockHandlerLogger{Messages: []string{}}
}

func (l *MockHandlerLogger) Info(msg string, fields ...interface{}) {
	l.Messages = append(l.Messages, "INFO: "+msg)
}

func (l *MockHandlerLogger) Error(msg string, err error, fields ...interface{}) {
	l.Messages = append(l.Messages, "ERROR: "+msg+" - "+err.Error())
}

func (l *MockHandlerLogger) Debug(msg string, fields ...interface{}) {
	l.Messages = append(l.Messages, "DEBUG: "+msg)
}

func (l *MockHandlerLogger) Warn(msg string, fields ...interface{}) {
	l.Messages = append(l.Messages, "WARN: "+msg)
}
