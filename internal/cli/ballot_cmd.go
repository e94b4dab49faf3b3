package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/sufragio/internal/api"
	"github.com/alexanderramin/sufragio/internal/cli/formatter"
	"github.com/alexanderramin/sufragio/internal/console"
	"github.com/alexanderramin/sufragio/internal/domain"
	"github.com/alexanderramin/sufragio/internal/generation"
)

func newBallotCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ballot",
		Aliases: []string{"papeleta", "b"},
		Short:   "Listar, buscar y generar papeletas",
	}
	cmd.AddCommand(
		newBallotListCmd(app),
		newBallotShowCmd(app),
		newBallotFindCmd(app),
		newBallotGenerateCmd(app),
	)
	return cmd
}

func newBallotListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Listar papeletas generadas",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			res := console.NewBallotList(app.API).Load(ctx)
			if err := resourceError(res); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBallotList(res.Data, loadNames(ctx, app.API)))
			return nil
		},
	}
}

func newBallotShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Ver la estructura de una papeleta",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			list := console.NewBallotList(app.API)
			if err := resourceError(list.Load(ctx)); err != nil {
				return err
			}
			b, ok := list.Open(id)
			if !ok {
				return fmt.Errorf("papeleta #%d no encontrada", id)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBallot(b, formatter.VariantDetail, ballotOptions(ctx, app)))
			return nil
		},
	}
}

func newBallotFindCmd(app *App) *cobra.Command {
	var key domain.BallotKey
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Buscar la papeleta de una sección y elección",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			b, err := app.API.FindBallot(ctx, key)
			opts := ballotOptions(ctx, app)
			if errors.Is(err, api.ErrNotFound) {
				fmt.Fprintln(out, formatter.Dim("Aún no se ha generado una papeleta para "+keyLabel(opts.Names, key)+"."))
				return nil
			}
			if err != nil {
				return userError(err, "Error al buscar la papeleta")
			}
			fmt.Fprintln(out, formatter.FormatBallot(b, formatter.VariantDetail, opts))
			return nil
		},
	}
	bindKeyFlags(cmd, &key)
	_ = cmd.MarkFlagRequired("section")
	_ = cmd.MarkFlagRequired("election")
	return cmd
}

func newBallotGenerateCmd(app *App) *cobra.Command {
	var key domain.BallotKey
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generar o regenerar la papeleta de una sección y elección",
		Long: "Genera la papeleta a partir de los cargos y candidaturas vigentes. " +
			"Si ya existe una para el par, se reemplaza su estructura.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if !key.Complete() && app.interactive() {
				picked, err := pickBallotKey(ctx, app, key)
				if err != nil {
					return err
				}
				key = picked
			}

			wf := generation.New(app.API, app.Config.Console.DisplayDelay(), nil)
			if err := wf.SetSection(key.SectionID); err != nil {
				return err
			}
			if err := wf.SetElection(key.ElectionID); err != nil {
				return err
			}

			stop := func() {}
			if app.interactive() {
				stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Generando papeleta...")
			}
			snap, err := wf.Submit(ctx)
			stop()

			if errors.Is(err, generation.ErrIncomplete) {
				return errors.New("indique --section y --election")
			}
			if err != nil {
				return err
			}
			if snap.State == generation.Failed {
				return &displayError{msg: snap.Message, err: snap.Err}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatSuccess(fmt.Sprintf("Papeleta #%d generada", snap.Ballot.ID)))
			fmt.Fprintln(out, formatter.FormatBallot(snap.Ballot, formatter.VariantDetail, ballotOptions(ctx, app)))
			return nil
		},
	}
	bindKeyFlags(cmd, &key)
	return cmd
}

func bindKeyFlags(cmd *cobra.Command, key *domain.BallotKey) {
	cmd.Flags().Int64Var(&key.SectionID, "section", 0, "section id")
	cmd.Flags().Int64Var(&key.ElectionID, "election", 0, "election id")
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("identificador inválido: %q", s)
	}
	return id, nil
}
