package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/pfx3d/internal/integrators"
	"github.com/san-kum/pfx3d/internal/optim"
)

func newBenchCmd() *cobra.Command {
	var (
		tol   float64
		steps []float64
	)

	cmd := &cobra.Command{
		Use:   "bench [file]",
		Short: "find the coarsest sample step per integrator within a drift tolerance",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches, _, err := loadPitches(args)
			if err != nil {
				return err
			}

			all, best, err := optim.NewStepSearch(integrators.Names(), steps).Search(cmd.Context(), pitches, tol)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "INTEG\tDT\tMAX DRIFT\tOK")
			for _, c := range all {
				if c.Err != nil {
					fmt.Fprintf(w, "%s\t%.4fs\terror: %v\t\n", c.Integrator, c.Dt, c.Err)
					continue
				}
				fmt.Fprintf(w, "%s\t%.4fs\t%.2e m\t%v\n", c.Integrator, c.Dt, c.MaxDrift, c.Within(tol))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			for _, name := range integrators.Names() {
				if c, ok := best[name]; ok {
					fmt.Printf("%-9s coarsest step %.4fs\n", name, c.Dt)
				} else {
					fmt.Printf("%-9s no step within %.1e m\n", name, tol)
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&tol, "tolerance", 1e-3, "largest acceptable drift in meters")
	cmd.Flags().Float64SliceVar(&steps, "steps", []float64{0.05, 0.02, 0.01, 0.005, 0.002, 0.001}, "candidate steps in seconds")
	return cmd
}
