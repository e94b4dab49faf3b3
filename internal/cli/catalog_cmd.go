package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/console"
	"github.com/alexanderramin/sufragio/internal/domain"
)

func newSectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "section",
		Aliases: []string{"seccion", "s"},
		Short:   "Consultar secciones",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Aliases: []string{"ls"},
			Short:   "Listar secciones",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				res := console.NewList[*domain.Section](app.API.ListSections, console.SectionsLoadError).Load(cmd.Context())
				if err := resourceError(res); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSectionList(res.Data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "show <id>",
			Short: "Ver una sección y su límite",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				s, err := app.API.GetSection(cmd.Context(), id)
				if err != nil {
					return userError(err, "Error al cargar la sección")
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSection(s))
				return nil
			},
		},
	)
	return cmd
}

func newElectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "election",
		Aliases: []string{"eleccion", "e"},
		Short:   "Consultar elecciones",
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Listar elecciones",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := console.NewList[*domain.Election](app.API.ListElections, console.ElectionsLoadError).Load(cmd.Context())
			if err := resourceError(res); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatElectionList(res.Data))
			return nil
		},
	})
	return cmd
}
