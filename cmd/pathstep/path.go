package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(a *app) *cobra.Command {
	var gf graphFlags

	cmd := &cobra.Command{
		Use:     "path",
		Short:   "Print the shortest distance and path without stepping",
		Example: `  pathstep path -e A-B:1 -e B-C:2 -e A-C:5 --from A --to C`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.newSession(cmd, &gf)
			if err != nil {
				return a.fail(err)
			}
			d, path, err := s.ShortestPath()
			if err != nil {
				return a.fail(err)
			}
			snap := s.Snapshot()
			fmt.Fprint(a.out, a.renderer.Path(snap.Source, snap.Destination, d, path))

			return nil
		},
	}
	gf.register(cmd)

	return cmd
}
