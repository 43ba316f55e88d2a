package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kudoshq/kudoticker/internal/recognition"
)

// Messages

// frameMsg is one animation frame callback. seq identifies the animation
// generation that scheduled it; a frame from an older generation is stale
// and must be dropped.
type frameMsg struct {
	at  time.Time
	seq int
}

// feedMsg carries the result of an asynchronous feed load. seq identifies
// the load generation; a response from an older generation is stale and
// must be dropped.
type feedMsg struct {
	records []recognition.Recognition
	err     error
	seq     int
}

// Commands

// tick schedules the next animation frame for the current animation
// generation.
func (m Model) tick() tea.Cmd {
	seq := m.animSeq
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{at: t, seq: seq}
	})
}

// loadFeed starts an asynchronous feed load for the current load
// generation.
func (m Model) loadFeed() tea.Cmd {
	seq := m.loadSeq
	loader := m.loader
	return func() tea.Msg {
		records, err := loader.Load(context.Background())
		return feedMsg{records: records, err: err, seq: seq}
	}
}
