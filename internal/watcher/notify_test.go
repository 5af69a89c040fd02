package watcher

import (
	"testing"
	"time"
)

func TestNotify_DoesNotPanic(t *testing.T) {
	tests := []struct {
		name  string
		alert Alert
	}{
		{
			name: "info alert",
			alert: Alert{
				Level:   "info",
				Title:   "Scan quality improved",
				Message: "Quality rose from partial to full",
				Time:    time.Now(),
			},
		},
		{
			name: "warning alert",
			alert: Alert{
				Level:   "warning",
				Title:   "Completeness score dropped",
				Message: "Score fell from 90 to 60",
				Time:    time.Now(),
			},
		},
		{
			name: "critical alert",
			alert: Alert{
				Level:   "critical",
				Title:   "Configuration file removed",
				Message: "sonar-project.properties is no longer present",
				Time:    time.Now(),
			},
		},
		{
			name: "empty fields",
			alert: Alert{
				Level:   "",
				Title:   "",
				Message: "",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Notify should not panic regardless of input. The error depends
			// on the environment (osascript or notify-send availability), so
			// only a panic counts as failure.
			_ = Notify(tc.alert)
		})
	}
}

func TestNotifyFallback_WritesToStderr(t *testing.T) {
	alert := Alert{
		Level:   "info",
		Title:   "Test alert",
		Message: "Test message",
		Time:    time.Now(),
	}

	if err := notifyFallback(alert); err != nil {
		t.Errorf("unexpected error from notifyFallback: %v", err)
	}
}
