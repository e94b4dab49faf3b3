package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is a single node in a tree display. Items are listed in
// depth-first order; Level 0 items are roots.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Muted  bool   // rendered dim, e.g. placeholder lines
	Badge  string // right-aligned, e.g. a candidate count
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// RenderTree renders items with box-drawing connectors and right-aligned
// badges. A pipe is drawn for every open ancestor level.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	width := 0
	// open[l] is true while the ancestor at level l still has siblings below.
	var open []bool

	for idx, item := range items {
		var prefix strings.Builder
		for l := 1; l < item.Level; l++ {
			if l < len(open) && open[l] {
				prefix.WriteString(treePipe)
			} else {
				prefix.WriteString(treeBlank)
			}
		}
		if item.Level > 0 {
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		for len(open) <= item.Level {
			open = append(open, false)
		}
		open[item.Level] = !item.IsLast

		title := item.Title
		if item.Muted {
			title = Dim(title)
		}
		contents[idx] = prefix.String() + title
		width = max(width, lipgloss.Width(contents[idx]))
	}

	var b strings.Builder
	for idx, item := range items {
		b.WriteString(contents[idx])
		if item.Badge != "" {
			pad := width - lipgloss.Width(contents[idx])
			b.WriteString(strings.Repeat(" ", pad) + "  " + StyleBlue.Render("[ "+item.Badge+" ]"))
		}
		b.WriteString("\n")
	}
	return b.String()
}
