package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/clusterviz/pointio"
	"github.com/hupe1980/clusterviz/scene"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Partition points into k clusters",
	Long: `Run k-means over the points in a file and print the clusters.

Examples:
  clusterviz cluster -f points.txt -k 3
  clusterviz cluster -f points.txt -k 3 --seed 42 --restarts 8
  clusterviz cluster -f points.txt -k 2 --query 2.1,2.1,2.1
  clusterviz cluster -f points.txt -k 2 -o scene.json.zst
  cat points.txt | clusterviz cluster -f - --format yaml`,
	RunE: runCluster,
}

func init() {
	f := clusterCmd.Flags()
	f.StringP("file", "f", "", "point file (- for stdin)")
	f.StringP("output", "o", "", "write the plot scene to a file (.json, .yaml, .msgpack; optional .zst/.lz4)")
	f.IntP("k", "k", 2, "number of clusters")
	f.Int("max-k", 10, "upper bound for k")
	f.Int("max-iters", 100, "maximum k-means iterations")
	f.Float64("tol", 1e-4, "convergence tolerance on summed centroid movement")
	f.Int64("seed", 0, "random seed (default: time based)")
	f.Int("restarts", 1, "independent runs; the lowest-inertia run wins")
	f.String("format", "table", "stdout format (table, json, go-json, yaml, msgpack)")
	f.String("query", "", "also find the nearest point to this comma-separated query")

	for key, name := range map[string]string{
		"k":         "k",
		"max_k":     "max-k",
		"max_iters": "max-iters",
		"tol":       "tol",
		"seed":      "seed",
		"restarts":  "restarts",
		"format":    "format",
	} {
		cobra.CheckErr(viper.BindPFlag(key, f.Lookup(name)))
	}
}

func runCluster(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig(viper.GetViper())
	ctx := cmd.Context()

	file, _ := cmd.Flags().GetString("file")
	points, err := readPoints(file, cfg.Dim, cmd.InOrStdin())
	if err != nil {
		return err
	}

	r, err := newRunner(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	res, err := r.cluster(ctx, points, cfg.K)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if cfg.Format == "table" || cfg.Format == "" {
		if err := renderResult(out, res, r.runID); err != nil {
			return err
		}
	} else if err := writeScene(out, res, cfg.Format); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := saveScene(path, scene.Build(res)); err != nil {
			return err
		}
	}

	if qs, _ := cmd.Flags().GetString("query"); qs != "" {
		query, err := pointio.ParsePoint(qs, res.Dim())
		if err != nil {
			return fmt.Errorf("invalid query: %w", err)
		}
		q, label, err := res.Nearest(ctx, query, r.options()...)
		if err != nil {
			return err
		}
		return renderNearest(out, q, &label)
	}

	return nil
}

func saveScene(path string, s scene.Scene) error {
	c, comp := scene.FormatFromPath(path)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := scene.Write(f, s, c, comp); err != nil {
		f.Close()
		return fmt.Errorf("failed to write scene: %w", err)
	}
	return f.Close()
}
