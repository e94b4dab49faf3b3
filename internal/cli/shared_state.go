package cli

import (
	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/console"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Ballots backs the ballot list and detail views.
	Ballots *console.BallotList

	// Names caches section and election names for display.
	Names formatter.Names

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{
		App:     app,
		Ballots: console.NewBallotList(app.API),
		Names:   formatter.Names{},
	}
}

// BallotOptions returns the rendering options for ballots.
func (s *SharedState) BallotOptions() formatter.BallotOptions {
	return formatter.BallotOptions{Names: s.Names, Photos: s.App.Photos}
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator),
// status bar (2 lines: separator + hints), and command bar (1 line).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
