package importer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/sufragio/internal/domain"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateDataset checks a data set before conversion and returns every
// problem found.
func ValidateDataset(ds *Dataset) []error {
	var errs []error

	if len(ds.Sections) == 0 {
		errs = append(errs, fmt.Errorf("sections: at least one section is required"))
	}
	if len(ds.Elections) == 0 {
		errs = append(errs, fmt.Errorf("elections: at least one election is required"))
	}

	sectionRefs := make(map[string]bool)
	errs = append(errs, validateSections(ds.Sections, sectionRefs)...)

	electionRefs := make(map[string]bool)
	for i, e := range ds.Elections {
		prefix := fmt.Sprintf("elections[%d]", i)
		errs = append(errs, validateRef(prefix, e.Ref, electionRefs)...)
		errs = append(errs, validateName(prefix, e.Name)...)
	}

	partyRefs := make(map[string]bool)
	for i, p := range ds.Parties {
		prefix := fmt.Sprintf("parties[%d]", i)
		errs = append(errs, validateRef(prefix, p.Ref, partyRefs)...)
		errs = append(errs, validateName(prefix, p.Name)...)
		if p.Color != "" && !hexColor.MatchString(p.Color) {
			errs = append(errs, fmt.Errorf("%s.color: invalid hex color %q", prefix, p.Color))
		}
	}

	positionRefs := make(map[string]bool)
	for i, p := range ds.Positions {
		prefix := fmt.Sprintf("positions[%d]", i)
		errs = append(errs, validateRef(prefix, p.Ref, positionRefs)...)
		errs = append(errs, validateName(prefix, p.Name)...)
		errs = append(errs, validateState(prefix, p.State)...)
		if p.SectionRef != "" && !sectionRefs[p.SectionRef] {
			errs = append(errs, fmt.Errorf("%s.section_ref: ref %q not found in sections", prefix, p.SectionRef))
		}
	}

	errs = append(errs, validateCandidates(ds.Candidates, partyRefs, positionRefs, electionRefs)...)
	return errs
}

func validateSections(sections []SectionImport, refs map[string]bool) []error {
	var errs []error
	for i, s := range sections {
		prefix := fmt.Sprintf("sections[%d]", i)
		errs = append(errs, validateRef(prefix, s.Ref, refs)...)
		errs = append(errs, validateName(prefix, s.Name)...)
		errs = append(errs, validateState(prefix, s.State)...)

		if n := len(s.Boundary); n > 0 && n < domain.MinBoundaryPoints {
			errs = append(errs, fmt.Errorf("%s.boundary: %d points cannot close a polygon (need %d)", prefix, n, domain.MinBoundaryPoints))
		}
		for j, pt := range s.Boundary {
			ptPrefix := fmt.Sprintf("%s.boundary[%d]", prefix, j)
			if pt.Lat < -90 || pt.Lat > 90 {
				errs = append(errs, fmt.Errorf("%s.lat: %v out of range", ptPrefix, pt.Lat))
			}
			if pt.Lng < -180 || pt.Lng > 180 {
				errs = append(errs, fmt.Errorf("%s.lng: %v out of range", ptPrefix, pt.Lng))
			}
			if pt.Order != nil && *pt.Order <= 0 {
				errs = append(errs, fmt.Errorf("%s.order must be positive", ptPrefix))
			}
		}
	}
	return errs
}

func validateCandidates(cands []CandidateImport, parties, positions, elections map[string]bool) []error {
	var errs []error
	seen := make(map[string]int)
	for i, c := range cands {
		prefix := fmt.Sprintf("candidates[%d]", i)
		if strings.TrimSpace(c.FirstName) == "" {
			errs = append(errs, fmt.Errorf("%s.first_name is required", prefix))
		}
		errs = append(errs, validateLink(prefix+".party_ref", c.PartyRef, "parties", parties)...)
		errs = append(errs, validateLink(prefix+".position_ref", c.PositionRef, "positions", positions)...)
		errs = append(errs, validateLink(prefix+".election_ref", c.ElectionRef, "elections", elections)...)

		key := strings.ToLower(strings.Join([]string{c.FirstName, c.LastNames, c.PositionRef, c.ElectionRef}, "\x00"))
		if first, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%s: same person already standing for this position and election at candidates[%d]", prefix, first))
		} else {
			seen[key] = i
		}
	}
	return errs
}

func validateRef(prefix, ref string, refs map[string]bool) []error {
	switch {
	case ref == "":
		return []error{fmt.Errorf("%s.ref is required", prefix)}
	case refs[ref]:
		return []error{fmt.Errorf("%s.ref: duplicate ref %q", prefix, ref)}
	}
	refs[ref] = true
	return nil
}

func validateLink(field, ref, kind string, refs map[string]bool) []error {
	switch {
	case ref == "":
		return []error{fmt.Errorf("%s is required", field)}
	case !refs[ref]:
		return []error{fmt.Errorf("%s: ref %q not found in %s", field, ref, kind)}
	}
	return nil
}

func validateName(prefix, name string) []error {
	if strings.TrimSpace(name) == "" {
		return []error{fmt.Errorf("%s.name is required", prefix)}
	}
	return nil
}

func validateState(prefix, state string) []error {
	if state == "" {
		return nil
	}
	if _, err := domain.ParseEntityState(state); err != nil {
		return []error{fmt.Errorf("%s.state: %w", prefix, err)}
	}
	return nil
}
