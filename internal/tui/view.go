package tui

import (
	"fmt"
	"strings"

	"github.com/kudoshq/kudoticker/internal/errors"
	"github.com/kudoshq/kudoticker/internal/tui/styles"
)

// View renders the full screen: header, feed area, help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.renderBody())
	b.WriteString(m.renderHelp())
	return b.String()
}

// renderHeader renders the title line and its trailing blank line.
func (m Model) renderHeader() string {
	title := styles.Title.Render("Kudoticker")
	subtitle := styles.Subtitle.Render(fmt.Sprintf("recognition feed · %s", m.region))
	return title + "  " + subtitle + "\n\n"
}

// renderBody renders the feed area padded to exactly containerExtent rows
// so the help bar stays pinned to the bottom of the screen.
func (m Model) renderBody() string {
	var rows []string

	switch {
	case m.loading:
		rows = []string{"", m.spinner.View() + " Loading recognition feed..."}

	case m.loadErr != nil:
		rows = strings.Split(m.renderError(), "\n")

	case len(m.records) == 0:
		rows = strings.Split(m.renderEmpty(), "\n")

	default:
		rows = m.visibleLines()
	}

	var b strings.Builder
	for i := 0; i < m.containerExtent; i++ {
		if i < len(rows) {
			b.WriteString(rows[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderError renders the load failure panel with a manual retry hint.
func (m Model) renderError() string {
	message := "The recognition feed could not be loaded."
	if errors.IsUserFacing(m.loadErr) {
		message = m.loadErr.Error()
	}

	body := styles.Error.Render("Failed to load feed") + "\n\n" +
		message + "\n\n" +
		styles.Muted.Render("Press [r] to retry.")
	return styles.ErrorPanel.Render(body)
}

// renderEmpty renders the explicit nothing-to-show state.
func (m Model) renderEmpty() string {
	body := "Nothing to show" + "\n\n" +
		styles.Muted.Render(fmt.Sprintf("No recognitions for region %s in the lookback window.", m.region)) + "\n\n" +
		styles.Muted.Render("Press [r] to reload.")
	return styles.EmptyPanel.Render(body)
}

// renderHelp renders the bottom help bar.
func (m Model) renderHelp() string {
	if m.showHelp {
		return "\n" + styles.HelpBar.Render(
			styles.HelpKey.Render("[r]")+" reload  "+
				styles.HelpKey.Render("[?]")+" hide help  "+
				styles.HelpKey.Render("[q]")+" quit")
	}
	return "\n" + styles.HelpBar.Render(styles.HelpKey.Render("[?]")+" help")
}
