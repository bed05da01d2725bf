package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReminderJob_Next_Daily(t *testing.T) {
	job := ReminderJob{Name: "morning", Hour: 9, Minute: 0}

	tests := []struct {
		name     string
		now      time.Time
		expected time.Time
	}{
		{
			name:     "before trigger time fires today",
			now:      time.Date(2024, 3, 11, 7, 30, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "after trigger time fires tomorrow",
			now:      time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "exactly at trigger time fires tomorrow",
			now:      time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, job.Next(tt.now))
		})
	}
}

func TestReminderJob_Next_Weekly(t *testing.T) {
	friday := time.Friday
	job := ReminderJob{Name: "weekly", Hour: 12, Minute: 0, Weekday: &friday}

	tests := []struct {
		name     string
		now      time.Time
		expected time.Time
	}{
		{
			name: "earlier weekday fires this week",
			// 2024-03-11 is a Monday
			now:      time.Date(2024, 3, 11, 8, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "same weekday before time fires today",
			now:      time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "same weekday after time fires next week",
			now:      time.Date(2024, 3, 15, 13, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 22, 12, 0, 0, 0, time.UTC),
		},
		{
			name: "later weekday wraps to next week",
			// 2024-03-16 is a Saturday
			now:      time.Date(2024, 3, 16, 8, 0, 0, 0, time.UTC),
			expected: time.Date(2024, 3, 22, 12, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, job.Next(tt.now))
		})
	}
}
