package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/sufragio/internal/api"
	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/console"
	"github.com/alexanderramin/sufragio/internal/domain"
)

// displayError carries a message fit for the user alongside the cause.
type displayError struct {
	msg string
	err error
}

func (e *displayError) Error() string { return e.msg }
func (e *displayError) Unwrap() error { return e.err }

// userError converts err into a displayable error, using fallback when the
// error carries nothing safe to show.
func userError(err error, fallback string) error {
	if err == nil {
		return nil
	}
	return &displayError{msg: api.DisplayMessage(err, fallback), err: err}
}

// resourceError converts a failed list load into an error.
func resourceError[T any](res console.Resource[T]) error {
	if !res.Failed() {
		return nil
	}
	return &displayError{msg: res.Error, err: res.Err}
}

// shellError renders an error for the terminal.
func shellError(err error) string {
	return formatter.FormatError(err.Error())
}

// loadNames fetches section and election names for display. Failures
// leave the maps empty so ids render as "#id".
func loadNames(ctx context.Context, src ConsoleAPI) formatter.Names {
	names := formatter.Names{Sections: map[int64]string{}, Elections: map[int64]string{}}
	if sections, err := src.ListSections(ctx); err == nil {
		for _, s := range sections {
			names.Sections[s.ID] = s.Name
		}
	}
	if elections, err := src.ListElections(ctx); err == nil {
		for _, e := range elections {
			names.Elections[e.ID] = e.Name
		}
	}
	return names
}

func ballotOptions(ctx context.Context, app *App) formatter.BallotOptions {
	return formatter.BallotOptions{Names: loadNames(ctx, app.API), Photos: app.Photos}
}

func keyLabel(names formatter.Names, key domain.BallotKey) string {
	return fmt.Sprintf("%s / %s", names.Section(key.SectionID), names.Election(key.ElectionID))
}
