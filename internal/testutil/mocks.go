package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Register(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockUserRepository) All() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockMessageSender is a mock for MessageSender
type MockMessageSender struct {
	mock.Mock
}

func (m *MockMessageSender) SendText(userID int64, text string) error {
	args := m.Called(userID, text)
	return args.Error(0)
}
