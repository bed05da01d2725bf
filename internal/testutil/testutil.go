package testutil

import (
	"coursefiles/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestSession creates a session browsed down to the file level
func NewTestSession() *domain.Session {
	s := &domain.Session{}
	s.Reset([]string{"Math", "Physics"})
	s.EnterSection("Math", []string{"S1", "S2"})
	s.EnterSemester("S1", []string{"Algebra", "Calculus"})
	s.EnterSubject("Algebra", []string{"notes.pdf", "exercises.pdf"})
	return s
}
