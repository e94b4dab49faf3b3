package formatter

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/sufragio/internal/domain"
)

// ansiPattern matches ANSI escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestStatePill(t *testing.T) {
	tests := []struct {
		state    domain.EntityState
		contains string
	}{
		{domain.StateActive, "● Activo"},
		{domain.StateInactive, "○ Inactivo"},
		{domain.EntityState("archived"), "archived"},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Contains(t, stripANSI(StatePill(tt.state)), tt.contains)
		})
	}
}

func TestPartySwatch(t *testing.T) {
	assert.Contains(t, stripANSI(PartySwatch("#0033cc")), "■")
	assert.Contains(t, stripANSI(PartySwatch("#fff")), "■")
	assert.Contains(t, stripANSI(PartySwatch("azul")), "□")
	assert.Contains(t, stripANSI(PartySwatch("")), "□")
}

func TestNames(t *testing.T) {
	n := Names{
		Sections:  map[int64]string{4: "Centro"},
		Elections: map[int64]string{2: "Generales 2027"},
	}
	assert.Equal(t, "Centro", n.Section(4))
	assert.Equal(t, "#5", n.Section(5))
	assert.Equal(t, "--", n.Section(0))
	assert.Equal(t, "Generales 2027", n.Election(2))
	assert.Equal(t, "#3", Names{}.Election(3))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", Truncate("corto", 10))
	assert.Equal(t, "eleccio…", Truncate("elecciones", 8))
	assert.Equal(t, "…", Truncate("abc", 1))
	assert.Equal(t, "abc", Truncate("abc", 0))
	assert.Equal(t, "añ…", Truncate("añoranza", 3))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 candidato", Plural(1, "candidato", "candidatos"))
	assert.Equal(t, "0 candidatos", Plural(0, "candidato", "candidatos"))
	assert.Equal(t, "2 candidatos", Plural(2, "candidato", "candidatos"))
}

func TestRenderBox(t *testing.T) {
	result := RenderBox("TEST", "content here")
	assert.Contains(t, result, "TEST")
	assert.Contains(t, result, "content here")
	assert.Contains(t, result, "╭")
	assert.Contains(t, result, "╰")
}

func TestRenderBoxWithoutTitle(t *testing.T) {
	result := RenderBox("", "just content")
	assert.Contains(t, result, "just content")
	assert.Contains(t, result, "╭")
}

func TestRenderTable_Empty(t *testing.T) {
	out := stripANSI(RenderTable([]string{"ID", "NAME"}, nil, "nada"))
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "nada")
	assert.Empty(t, RenderTable(nil, nil, ""))
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"ID", "NAME"},
		[][]string{{"1", "Presidente"}, {"12", "Alcalde"}},
		"",
	))
	assert.Contains(t, out, "ID  NAME\n")
	assert.Contains(t, out, "1   Presidente\n")
	assert.Contains(t, out, "12  Alcalde\n")
}

func TestRenderCoverage(t *testing.T) {
	assert.Contains(t, stripANSI(RenderCoverage(1, 2, 4)), "[██░░] 1/2")
	assert.Contains(t, stripANSI(RenderCoverage(2, 2, 4)), "[████] 2/2")
	assert.Contains(t, stripANSI(RenderCoverage(5, 2, 4)), "2/2")
	assert.Contains(t, stripANSI(RenderCoverage(0, 0, 4)), "0/0")
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "uno dos\ntres", wrapText("uno dos tres", 7))
	assert.Equal(t, "sin cambio", wrapText("  sin cambio  ", 0))
}
