package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/sufragio/internal/api"
	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/console"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// sufragioHuhTheme returns a huh theme using the formatter palette.
func sufragioHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(sufragioHuhTheme()).WithShowHelp(false)
}

// catalog is the pick list data for the generation and position forms.
type catalog struct {
	sections  []*domain.Section
	elections []*domain.Election
}

// loadCatalog fetches sections and elections. The error carries the
// display message of the first list that failed.
func loadCatalog(ctx context.Context, src ConsoleAPI) (catalog, error) {
	sections := console.NewList[*domain.Section](src.ListSections, console.SectionsLoadError).Load(ctx)
	if err := resourceError(sections); err != nil {
		return catalog{}, err
	}
	elections := console.NewList[*domain.Election](src.ListElections, console.ElectionsLoadError).Load(ctx)
	if err := resourceError(elections); err != nil {
		return catalog{}, err
	}
	return catalog{sections: sections.Data, elections: elections.Data}, nil
}

func (c catalog) names() formatter.Names {
	names := formatter.Names{Sections: map[int64]string{}, Elections: map[int64]string{}}
	for _, s := range c.sections {
		names.Sections[s.ID] = s.Name
	}
	for _, e := range c.elections {
		names.Elections[e.ID] = e.Name
	}
	return names
}

func sectionOptions(sections []*domain.Section) []huh.Option[int64] {
	opts := make([]huh.Option[int64], 0, len(sections))
	for _, s := range sections {
		label := fmt.Sprintf("#%d %s", s.ID, s.Name)
		if s.State == domain.StateInactive {
			label += " (inactiva)"
		}
		opts = append(opts, huh.NewOption(label, s.ID))
	}
	return opts
}

func electionOptions(elections []*domain.Election) []huh.Option[int64] {
	opts := make([]huh.Option[int64], 0, len(elections))
	for _, e := range elections {
		opts = append(opts, huh.NewOption(fmt.Sprintf("#%d %s", e.ID, e.Name), e.ID))
	}
	return opts
}

// ballotKeyForm builds the section and election selects of the generation
// form, bound to key.
func ballotKeyForm(c catalog, key *domain.BallotKey) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewSelect[int64]().
				Title("Sección").
				Options(sectionOptions(c.sections)...).
				Value(&key.SectionID).
				Validate(requiredID("seleccione una sección")),
			huh.NewSelect[int64]().
				Title("Elección").
				Options(electionOptions(c.elections)...).
				Value(&key.ElectionID).
				Validate(requiredID("seleccione una elección")),
		),
	)
}

// pickBallotKey asks for whichever of section and election is missing.
func pickBallotKey(ctx context.Context, app *App, key domain.BallotKey) (domain.BallotKey, error) {
	c, err := loadCatalog(ctx, app.API)
	if err != nil {
		return key, err
	}
	if len(c.sections) == 0 || len(c.elections) == 0 {
		return key, errors.New("no hay secciones o elecciones registradas")
	}
	if err := ballotKeyForm(c, &key).Run(); err != nil {
		return key, err
	}
	return key, nil
}

// positionFields holds form-bound values for the position form.
type positionFields struct {
	name        string
	description string
	state       domain.EntityState
	section     int64
}

func newPositionFields(current *domain.Position) *positionFields {
	f := &positionFields{state: domain.StateActive}
	if current != nil {
		f.name = current.Name
		f.description = current.Description
		f.state = current.State
		f.section = current.SectionID
	}
	return f
}

// input converts the form values. Every field is sent so an edit can also
// clear the description.
func (f *positionFields) input() domain.PositionInput {
	name := strings.TrimSpace(f.name)
	in := domain.PositionInput{Name: &name, Description: &f.description, State: &f.state}
	if f.section > 0 {
		in.SectionID = &f.section
	}
	return in
}

// positionForm builds the create/edit form. Section 0 means unassigned.
func positionForm(sections []*domain.Section, f *positionFields) *huh.Form {
	sectionOpts := append([]huh.Option[int64]{huh.NewOption("Sin sección", int64(0))}, sectionOptions(sections)...)
	return newForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nombre").
				Value(&f.name).
				Validate(requiredText("el nombre es obligatorio")),
			huh.NewText().
				Title("Descripción (opcional)").
				Value(&f.description),
			huh.NewSelect[domain.EntityState]().
				Title("Estado").
				Options(
					huh.NewOption("Activo", domain.StateActive),
					huh.NewOption("Inactivo", domain.StateInactive),
				).
				Value(&f.state),
			huh.NewSelect[int64]().
				Title("Sección").
				Options(sectionOpts...).
				Value(&f.section),
		),
	)
}

// runPositionForm runs the position form in the terminal and returns the
// collected input. current pre-fills the form when editing.
func runPositionForm(ctx context.Context, app *App, current *domain.Position) (domain.PositionInput, error) {
	sections, err := app.API.ListSections(ctx)
	if err != nil {
		return domain.PositionInput{}, userError(err, console.SectionsLoadError)
	}
	f := newPositionFields(current)
	if err := positionForm(sections, f).Run(); err != nil {
		return domain.PositionInput{}, err
	}
	return f.input(), nil
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Sí").
				Negative("No").
				Value(result),
		),
	)
}

func requiredText(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

func requiredID(msg string) func(int64) error {
	return func(id int64) error {
		if id <= 0 {
			return errors.New(msg)
		}
		return nil
	}
}

// formMessage renders an API failure for display inside a view.
func formMessage(err error, fallback string) string {
	return formatter.FormatError(api.DisplayMessage(err, fallback))
}
