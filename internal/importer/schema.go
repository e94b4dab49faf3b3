// Package importer reads electoral reference data sets from JSON. A data
// set names its records with local refs; Convert resolves them into domain
// records ready for insertion in order.
package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Dataset is the top-level JSON structure of a data set file.
type Dataset struct {
	Sections   []SectionImport   `json:"sections"`
	Elections  []ElectionImport  `json:"elections"`
	Parties    []PartyImport     `json:"parties,omitempty"`
	Positions  []PositionImport  `json:"positions,omitempty"`
	Candidates []CandidateImport `json:"candidates,omitempty"`
}

// SectionImport defines a voting area and its polygon.
type SectionImport struct {
	Ref      string        `json:"ref"`
	Name     string        `json:"name"`
	State    string        `json:"state,omitempty"`
	Boundary []PointImport `json:"boundary,omitempty"`
}

// PointImport is one polygon vertex. Order defaults to the vertex's
// 1-based position in the list.
type PointImport struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Order *int    `json:"order,omitempty"`
}

type ElectionImport struct {
	Ref  string `json:"ref"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

type PartyImport struct {
	Ref    string `json:"ref"`
	Name   string `json:"name"`
	Color  string `json:"color,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// PositionImport defines an office. An empty SectionRef leaves it
// unassigned.
type PositionImport struct {
	Ref         string `json:"ref"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	State       string `json:"state,omitempty"`
	SectionRef  string `json:"section_ref,omitempty"`
}

// CandidateImport places a person on a party's slate for one position in
// one election.
type CandidateImport struct {
	FirstName   string `json:"first_name"`
	LastNames   string `json:"last_names"`
	Photo       string `json:"photo,omitempty"`
	PartyRef    string `json:"party_ref"`
	PositionRef string `json:"position_ref"`
	ElectionRef string `json:"election_ref"`
}

// LoadDataset reads and parses a data set file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDataset(data)
}

// ParseDataset decodes a data set. Unknown fields are rejected so typos in
// hand-written files surface early.
func ParseDataset(data []byte) (*Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var ds Dataset
	if err := dec.Decode(&ds); err != nil {
		return nil, fmt.Errorf("parsing data set: %w", err)
	}
	return &ds, nil
}
