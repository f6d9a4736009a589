package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/clusterviz/pointio"
)

var nearestCmd = &cobra.Command{
	Use:   "nearest <x,y,z>",
	Short: "Find the point closest to a query",
	Long: `Scan the points in a file for the one closest to the query.
Ties resolve to the point that appears first.

Example:
  clusterviz nearest -f points.txt 2.1,2.1,2.1`,
	Args: cobra.ExactArgs(1),
	RunE: runNearest,
}

func init() {
	nearestCmd.Flags().StringP("file", "f", "", "point file (- for stdin)")
}

func runNearest(cmd *cobra.Command, args []string) error {
	cfg := loadConfig(viper.GetViper())

	file, _ := cmd.Flags().GetString("file")
	points, err := readPoints(file, cfg.Dim, cmd.InOrStdin())
	if err != nil {
		return err
	}

	query, err := pointio.ParsePoint(args[0], points.Dim())
	if err != nil {
		return fmt.Errorf("invalid query: %w", err)
	}

	r, err := newRunner(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	q, err := r.nearest(cmd.Context(), points, query)
	if err != nil {
		return err
	}
	return renderNearest(cmd.OutOrStdout(), q, nil)
}
