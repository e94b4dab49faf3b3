package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCoverage renders a bar like [████░░░░] 2/4 showing how many of
// total items are covered. Full coverage is green, none is red.
func RenderCoverage(covered, total, width int) string {
	if width < 2 {
		width = 2
	}
	if total <= 0 {
		return fmt.Sprintf("[%s] %s", Dim(strings.Repeat(emptyBlock, width)), Dim("0/0"))
	}
	covered = min(max(covered, 0), total)

	filled := covered * width / total
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	switch covered {
	case total:
		style = StyleGreen
	case 0:
		style = StyleRed
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), covered, total)
}
