// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	tea "github.com/charmbracelet/bubbletea"
)

// AlertMsg carries one alert raised outside the update loop.
type AlertMsg struct {
	Message string
}

// AlertSink collects alerts from export workers and replays them as Bubble
// Tea messages. It satisfies export.Notifier.
type AlertSink struct {
	ch chan string
}

// NewAlertSink creates a sink buffering up to size alerts.
func NewAlertSink(size int) *AlertSink {
	if size <= 0 {
		size = 1
	}
	return &AlertSink{ch: make(chan string, size)}
}

// Alert queues message. When the buffer is full the alert is dropped so a
// stalled UI never blocks an export.
func (s *AlertSink) Alert(message string) {
	select {
	case s.ch <- message:
	default:
	}
}

// Listen waits for the next alert. Re-issue it after every AlertMsg.
func (s *AlertSink) Listen() tea.Cmd {
	return func() tea.Msg {
		return AlertMsg{Message: <-s.ch}
	}
}
