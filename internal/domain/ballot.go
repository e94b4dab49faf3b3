package domain

import "strings"

// BallotKey identifies a ballot by its (section, election) pair.
// Ballot ids are not stable across regenerations; the key is.
type BallotKey struct {
	SectionID  int64
	ElectionID int64
}

// Complete reports whether both halves of the key are set.
func (k BallotKey) Complete() bool {
	return k.SectionID > 0 && k.ElectionID > 0
}

// Ballot ("papeleta") is the composed voting document for one section and
// election. It is assembled remotely and never mutated by the console.
type Ballot struct {
	ID         int64
	SectionID  int64 // 0 when the API omits it
	ElectionID int64
	State      EntityState
	Structure  []PositionOnBallot
}

// PositionOnBallot is one office listed on a ballot. Candidacies may be
// empty; such positions are still shown.
type PositionOnBallot struct {
	PositionID   int64
	PositionName string
	Candidacies  []PartyCandidacy
}

// PartyCandidacy is a party's slate for one position.
type PartyCandidacy struct {
	PartyID     int64
	PartyName   string
	PartyColor  string
	PartySymbol string
	Candidates  []Candidate
}

// Candidate is a person standing for a party on a ballot.
type Candidate struct {
	ID        int64
	FirstName string
	LastNames string
	PhotoRef  string
}

// FullName joins first name and last names.
func (c Candidate) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastNames)
}

// Key returns the ballot's (section, election) key.
func (b *Ballot) Key() BallotKey {
	return BallotKey{SectionID: b.SectionID, ElectionID: b.ElectionID}
}

// PositionCount returns the number of positions on the ballot.
func (b *Ballot) PositionCount() int {
	return len(b.Structure)
}

// CandidateCount returns the number of candidates across all positions.
func (b *Ballot) CandidateCount() int {
	n := 0
	for _, p := range b.Structure {
		for _, c := range p.Candidacies {
			n += len(c.Candidates)
		}
	}
	return n
}

// HasPosition reports whether positionID is listed on the ballot.
func (b *Ballot) HasPosition(positionID int64) bool {
	for _, p := range b.Structure {
		if p.PositionID == positionID {
			return true
		}
	}
	return false
}
