package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/sufragio/internal/assets"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// BallotVariant selects how a ballot is rendered.
type BallotVariant int

const (
	// VariantCard is a compact summary for lists and confirmations.
	VariantCard BallotVariant = iota
	// VariantDetail renders the full structure tree.
	VariantDetail
)

// NoCandidacies is shown under a position nobody is running for.
const NoCandidacies = "sin candidaturas"

// BallotOptions carries the lookups used while rendering a ballot.
type BallotOptions struct {
	Names  Names
	Photos assets.Resolver
}

// FormatBallot renders a ballot in the given variant.
func FormatBallot(b *domain.Ballot, variant BallotVariant, opts BallotOptions) string {
	switch variant {
	case VariantDetail:
		return formatBallotDetail(b, opts)
	default:
		return formatBallotCard(b, opts)
	}
}

// FormatBallotList renders the ballot list table.
func FormatBallotList(ballots []*domain.Ballot, names Names) string {
	headers := []string{"ID", "ELECCIÓN", "SECCIÓN", "CARGOS", "CANDIDATOS", "ESTADO"}
	rows := make([][]string, 0, len(ballots))
	for _, b := range ballots {
		rows = append(rows, []string{
			FormatID(b.ID),
			Bold(names.Election(b.ElectionID)),
			names.Section(b.SectionID),
			strconv.Itoa(b.PositionCount()),
			strconv.Itoa(b.CandidateCount()),
			StatePill(b.State),
		})
	}
	return RenderBox("Papeletas", RenderTable(headers, rows, "No hay papeletas generadas."))
}

func ballotHeader(b *domain.Ballot, opts BallotOptions) string {
	var s strings.Builder
	s.WriteString(Field("Elección", Bold(opts.Names.Election(b.ElectionID))))
	s.WriteString(Field("Sección", opts.Names.Section(b.SectionID)))
	s.WriteString(Field("Estado", StatePill(b.State)))
	s.WriteString(Field("Cargos", RenderCoverage(coveredPositions(b), b.PositionCount(), 12)+Dim(" con candidaturas")))
	return s.String()
}

func formatBallotCard(b *domain.Ballot, opts BallotOptions) string {
	var s strings.Builder
	s.WriteString(ballotHeader(b, opts))
	s.WriteString(Field("Total", Plural(b.CandidateCount(), "candidato", "candidatos")))
	return RenderBox(fmt.Sprintf("Papeleta #%d", b.ID), strings.TrimRight(s.String(), "\n"))
}

func formatBallotDetail(b *domain.Ballot, opts BallotOptions) string {
	var s strings.Builder
	s.WriteString(ballotHeader(b, opts))
	s.WriteString("\n")
	if len(b.Structure) == 0 {
		s.WriteString(Dim("La sección no tiene cargos asignados."))
	} else {
		s.WriteString(strings.TrimRight(RenderTree(ballotTree(b, opts.Photos)), "\n"))
	}
	return RenderBox(fmt.Sprintf("Papeleta #%d", b.ID), s.String())
}

// ballotTree flattens the structure into tree rows: positions at the root,
// parties beneath, candidates beneath each party.
func ballotTree(b *domain.Ballot, photos assets.Resolver) []TreeItem {
	var items []TreeItem
	for _, pos := range b.Structure {
		count := 0
		for _, pc := range pos.Candidacies {
			count += len(pc.Candidates)
		}
		items = append(items, TreeItem{
			Title: StyleHeader.Render(pos.PositionName),
			Badge: Plural(count, "candidato", "candidatos"),
		})
		if len(pos.Candidacies) == 0 {
			items = append(items, TreeItem{Title: NoCandidacies, Level: 1, IsLast: true, Muted: true})
			continue
		}
		for pi, pc := range pos.Candidacies {
			items = append(items, TreeItem{
				Title:  partyTitle(pc),
				Level:  1,
				IsLast: pi == len(pos.Candidacies)-1,
			})
			if len(pc.Candidates) == 0 {
				items = append(items, TreeItem{Title: "sin candidatos", Level: 2, IsLast: true, Muted: true})
				continue
			}
			for ci, c := range pc.Candidates {
				items = append(items, TreeItem{
					Title:  candidateTitle(c, photos),
					Level:  2,
					IsLast: ci == len(pc.Candidates)-1,
				})
			}
		}
	}
	return items
}

func partyTitle(pc domain.PartyCandidacy) string {
	title := PartySwatch(pc.PartyColor) + " " + PartyStyle(pc.PartyColor).Render(pc.PartyName)
	if pc.PartySymbol != "" {
		title += Dim(" (" + pc.PartySymbol + ")")
	}
	return title
}

func candidateTitle(c domain.Candidate, photos assets.Resolver) string {
	title := StyleFg.Render(c.FullName())
	if url := photos.Resolve(c.PhotoRef); url != "" {
		title += "  " + Dim(url)
	}
	return title
}

func coveredPositions(b *domain.Ballot) int {
	n := 0
	for _, pos := range b.Structure {
		for _, pc := range pos.Candidacies {
			if len(pc.Candidates) > 0 {
				n++
				break
			}
		}
	}
	return n
}
