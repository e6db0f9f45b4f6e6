package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2025, 12, 10, 12, 0, 0, 0, time.Local)

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name      string
		timestamp string
		want      string
	}{
		{name: "minutes ago", timestamp: "2025-12-10T11:15:00", want: "45m ago"},
		{name: "59 minutes stays in minute bucket", timestamp: "2025-12-10T11:01:00", want: "59m ago"},
		{name: "exactly one hour", timestamp: "2025-12-10T11:00:00", want: "1h ago"},
		{name: "hours ago", timestamp: "2025-12-10T07:00:00", want: "5h ago"},
		{name: "23 hours stays in hour bucket", timestamp: "2025-12-09T13:00:00", want: "23h ago"},
		{name: "exactly one day", timestamp: "2025-12-09T12:00:00", want: "1d ago"},
		{name: "days ago", timestamp: "2025-12-07T12:00:00", want: "3d ago"},
		{name: "exactly seven days falls to date", timestamp: "2025-12-03T12:00:00", want: "12/3/2025"},
		{name: "older than a week", timestamp: "2025-11-01T09:00:00", want: "11/1/2025"},
		{name: "unparseable passes through", timestamp: "not-a-date", want: "not-a-date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(tt.timestamp, testNow))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	tests := []struct {
		name    string
		dueDate string
		want    bool
	}{
		{name: "past due", dueDate: "2025-12-09T23:59:00", want: true},
		{name: "future", dueDate: "2025-12-11T23:59:00", want: false},
		{name: "exactly now is not overdue", dueDate: "2025-12-10T12:00:00", want: false},
		{name: "one second earlier is overdue", dueDate: "2025-12-10T11:59:59", want: true},
		{name: "unparseable is never overdue", dueDate: "garbage", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsOverdue(tt.dueDate, testNow))
		})
	}
}

func TestDueLabel(t *testing.T) {
	label, overdue := DueLabel("2025-12-08T23:59:00", testNow)
	assert.Equal(t, "Dec 8", label)
	assert.True(t, overdue)

	label, overdue = DueLabelWithTime("2025-12-15T23:59:00", testNow)
	assert.Equal(t, "Dec 15, 11:59 PM", label)
	assert.False(t, overdue)
}
