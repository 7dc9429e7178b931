// Package ui holds the transient notification line of the browser.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/reelroll-cli/reelroll/icon"
	"github.com/reelroll-cli/reelroll/style"
)

// Lifetime is how long a notification stays visible.
const Lifetime = 4 * time.Second

// NotificationMsg shows text on the notification line.
type NotificationMsg struct {
	Text  string
	Error bool
}

// ClearNotificationMsg hides the notification it was scheduled for.
type ClearNotificationMsg struct {
	id int
}

// Notify returns a command showing text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Text: text}
	}
}

// NotifyError returns a command showing err as a retryable failure.
func NotifyError(err error) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg{Text: err.Error() + ", press r to retry", Error: true}
	}
}

// Model is the notification line. A newer notification resets the lifetime.
type Model struct {
	notification NotificationMsg
	id           int
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = msg
		m.id++

		id := m.id
		return tea.Tick(Lifetime, func(time.Time) tea.Msg {
			return ClearNotificationMsg{id: id}
		})
	case ClearNotificationMsg:
		if msg.id == m.id {
			m.notification = NotificationMsg{}
		}
	}

	return nil
}

// Active reports whether a notification is visible.
func (m *Model) Active() bool {
	return m.notification.Text != ""
}

func (m *Model) View() string {
	switch {
	case !m.Active():
		return ""
	case m.notification.Error:
		return style.Fg(style.ErrorColor)(icon.Get(icon.Fail) + " " + m.notification.Text)
	default:
		return style.Fg(style.FaintColor)(m.notification.Text)
	}
}
