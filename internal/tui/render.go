package tui

import (
	"fmt"
	"strings"

	"github.com/kudoshq/kudoticker/internal/recognition"
	"github.com/kudoshq/kudoticker/internal/tui/styles"
)

// cardHeight is the fixed number of terminal rows one recognition card
// occupies. Extent measurement depends on every card having this height.
const cardHeight = 3

// renderCard produces one recognition card as exactly cardHeight rows:
// a giver → receiver line with a point badge, the reason line, and a
// separator. Stateless; truncated to width.
func renderCard(rec recognition.Recognition, width int) []string {
	giver := styles.GiverName.Render(rec.Giver.Name)
	if rec.Giver.Department != "" {
		giver += " " + styles.Department.Render("("+rec.Giver.Department+")")
	}

	receiver := styles.ReceiverName.Render(rec.Receiver.Name)
	if rec.Receiver.Department != "" {
		receiver += " " + styles.Department.Render("("+rec.Receiver.Department+")")
	}

	badge := styles.PointsBadge.Render(fmt.Sprintf("+%d pts", rec.Amount))

	header := fmt.Sprintf("%s %s %s  %s", giver, styles.Muted.Render("→"), receiver, badge)
	reason := "  " + styles.Reason.Render(truncate(rec.Reason, max(width-4, 0)))
	separator := styles.Separator.Render(strings.Repeat("─", max(width, 0)))

	return []string{header, reason, separator}
}

// renderCards renders a sequence of cards into a flat row buffer.
func renderCards(records []recognition.Recognition, width int) []string {
	lines := make([]string, 0, len(records)*cardHeight)
	for _, rec := range records {
		lines = append(lines, renderCard(rec, width)...)
	}
	return lines
}

// truncate cuts s to at most width runes, appending an ellipsis when it
// had to cut. Operates on unstyled text only.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
