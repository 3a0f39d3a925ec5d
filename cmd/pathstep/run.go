package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathstep/internal/tui"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		gf          graphFlags
		batch       int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step the algorithm and show every frame",
		Long: `run selects the endpoints and advances the algorithm batch work units at a time.

Interactively (default on a terminal): space/n steps once, b steps a batch,
enter runs to the end, r resets, q quits. Otherwise one frame is printed per
batch until the run is done.`,
		Example: `  pathstep run -e A-B:1 -e A-C:4 -e B-C:2 -e B-D:5 --from A --to D
  pathstep run --preset grid:3 --batch 4 --interactive=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("batch") {
				a.cfg.Batch = batch
				if err := a.cfg.Validate(); err != nil {
					return a.fail(err)
				}
			}
			s, err := a.newSession(cmd, &gf)
			if err != nil {
				return a.fail(err)
			}

			useTUI := a.cfg.InteractiveOr(stdoutIsTerminal(a.out))
			if cmd.Flags().Changed("interactive") {
				useTUI = interactive
			}
			a.logger.Info("run started",
				slog.String("session", s.ID().String()),
				slog.Bool("interactive", useTUI),
				slog.Int("batch", a.cfg.Batch),
			)

			if useTUI {
				_, err = tui.Run(cmd.Context(), tui.New(cmd.Context(), s, a.renderer, a.cfg.Batch), a.in, a.out)
				if err != nil {
					return a.fail(err)
				}
				return nil
			}

			fmt.Fprint(a.out, a.renderer.Snapshot(s.Snapshot()))
			for !s.Snapshot().Done {
				snap, err := s.Advance(cmd.Context(), a.cfg.Batch)
				if err != nil {
					return a.fail(err)
				}
				fmt.Fprintln(a.out)
				fmt.Fprint(a.out, a.renderer.Snapshot(snap))
			}

			return nil
		},
	}

	gf.register(cmd)
	cmd.Flags().IntVarP(&batch, "batch", "b", 1, "work units per frame or per b key")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the step-button UI")

	return cmd
}
