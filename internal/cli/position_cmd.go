package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/console"
	"github.com/alexanderramin/sufragio/internal/domain"
)

func newPositionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "position",
		Aliases: []string{"cargo", "p"},
		Short:   "Administrar cargos",
	}
	cmd.AddCommand(
		newPositionListCmd(app),
		newPositionShowCmd(app),
		newPositionCreateCmd(app),
		newPositionUpdateCmd(app),
		newPositionDeleteCmd(app),
	)
	return cmd
}

func newPositionListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Listar cargos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			res := console.NewList[*domain.Position](app.API.ListPositions, console.PositionsLoadError).Load(ctx)
			if err := resourceError(res); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPositionList(res.Data, loadNames(ctx, app.API)))
			return nil
		},
	}
}

func newPositionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Ver un cargo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			p, err := app.API.GetPosition(ctx, id)
			if err != nil {
				return userError(err, "Error al cargar el cargo")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPosition(p, loadNames(ctx, app.API)))
			return nil
		},
	}
}

func newPositionCreateCmd(app *App) *cobra.Command {
	f := &positionFlags{}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crear un cargo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			in, err := f.input(cmd.Flags())
			if err != nil {
				return err
			}
			if in.Name == nil && app.interactive() {
				if in, err = runPositionForm(ctx, app, nil); err != nil {
					return err
				}
			}
			p, err := app.API.CreatePosition(ctx, in)
			if err != nil {
				return userError(err, "Error al crear el cargo")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSuccess(fmt.Sprintf("Cargo #%d creado: %s", p.ID, p.Name)))
			return nil
		},
	}
	f.bind(cmd.Flags())
	return cmd
}

func newPositionUpdateCmd(app *App) *cobra.Command {
	f := &positionFlags{}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Modificar un cargo (solo los campos indicados)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			in, err := f.input(cmd.Flags())
			if err != nil {
				return err
			}
			if in.IsEmpty() && app.interactive() {
				current, err := app.API.GetPosition(ctx, id)
				if err != nil {
					return userError(err, "Error al cargar el cargo")
				}
				if in, err = runPositionForm(ctx, app, current); err != nil {
					return err
				}
			}
			p, err := app.API.UpdatePosition(ctx, id, in)
			if err != nil {
				return userError(err, "Error al modificar el cargo")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSuccess(fmt.Sprintf("Cargo #%d actualizado", p.ID)))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPosition(p, loadNames(ctx, app.API)))
			return nil
		},
	}
	f.bind(cmd.Flags())
	return cmd
}

func newPositionDeleteCmd(app *App) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar un cargo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !yes && app.interactive() {
				confirmed := false
				if err := wizardConfirm(fmt.Sprintf("¿Eliminar el cargo #%d?", id), &confirmed).Run(); err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelado."))
					return nil
				}
			}
			if err := app.API.DeletePosition(cmd.Context(), id); err != nil {
				return userError(err, "Error al eliminar el cargo")
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSuccess(fmt.Sprintf("Cargo #%d eliminado", id)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation")
	return cmd
}

// positionFlags binds the optional position fields. Only flags the user
// set end up in the input, so update sends a partial body.
type positionFlags struct {
	name        string
	description string
	state       string
	section     int64
}

func (f *positionFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "position name")
	fs.StringVar(&f.description, "description", "", "description")
	fs.StringVar(&f.state, "state", "", "active|inactive (activo|inactivo)")
	fs.Int64Var(&f.section, "section", 0, "section id the position belongs to")
}

func (f *positionFlags) input(fs *pflag.FlagSet) (domain.PositionInput, error) {
	var in domain.PositionInput
	if fs.Changed("name") {
		in.Name = &f.name
	}
	if fs.Changed("description") {
		in.Description = &f.description
	}
	if fs.Changed("state") {
		st, err := domain.ParseEntityState(f.state)
		if err != nil {
			return in, err
		}
		in.State = &st
	}
	if fs.Changed("section") {
		if f.section <= 0 {
			return in, errors.New("--section must be a positive id")
		}
		in.SectionID = &f.section
	}
	return in, nil
}
