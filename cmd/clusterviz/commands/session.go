package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hupe1980/clusterviz"
	"github.com/hupe1980/clusterviz/model"
	"github.com/hupe1980/clusterviz/pointio"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Interactively cluster points and query them",
	Long: `Load points once, then type commands:

  cluster <k>     run k-means and show the clusters
  nearest <x,y,z> find the closest point (requires a prior cluster run)
  show            show the last clustering again
  help            list commands
  quit            leave the session

The last clustering is kept for the rest of the session only.`,
	RunE: runSession,
}

func init() {
	sessionCmd.Flags().StringP("file", "f", "", "point file")
}

func runSession(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig(viper.GetViper())

	file, _ := cmd.Flags().GetString("file")
	if file == "-" {
		return fmt.Errorf("session reads commands from stdin; pass a point file")
	}
	points, err := readPoints(file, cfg.Dim, nil)
	if err != nil {
		return err
	}

	r, err := newRunner(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	s := newSession(r, points, cmd.OutOrStdout())
	return s.Run(cmd.Context(), cmd.InOrStdin())
}

// session keeps the points and the most recent result of one interactive run.
type session struct {
	r      *runner
	points model.PointSet
	last   *clusterviz.Result
	out    io.Writer
}

func newSession(r *runner, points model.PointSet, out io.Writer) *session {
	r.logger.WithCount(len(points)).WithDimension(points.Dim()).Debug("session started")
	return &session{r: r, points: points, out: out}
}

// Run executes commands line by line until quit or EOF.
func (s *session) Run(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		done, err := s.Exec(ctx, sc.Text())
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return sc.Err()
}

// Exec runs one command line. User errors are reported to out and do not
// end the session; only write failures are returned.
func (s *session) Exec(ctx context.Context, line string) (bool, error) {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "":
		return false, nil
	case "quit", "exit":
		return true, nil
	case "help":
		_, err := fmt.Fprintln(s.out, "commands: cluster <k>, nearest <x,y,z>, show, help, quit")
		return false, err
	case "cluster":
		k, err := strconv.Atoi(arg)
		if err != nil {
			return false, renderWarning(s.out, fmt.Sprintf("usage: cluster <k> (%v)", err))
		}
		res, err := s.r.cluster(ctx, s.points, k)
		if err != nil {
			return false, renderWarning(s.out, err.Error())
		}
		s.last = res
		return false, renderResult(s.out, res, s.r.runID)
	case "show":
		if s.last == nil {
			return false, renderWarning(s.out, "nothing to show yet; run cluster <k> first")
		}
		return false, renderResult(s.out, s.last, s.r.runID)
	case "nearest":
		if s.last == nil {
			return false, renderWarning(s.out, "run cluster <k> first to load the points")
		}
		query, err := pointio.ParsePoint(arg, s.last.Dim())
		if err != nil {
			return false, renderWarning(s.out, fmt.Sprintf("invalid query: %v", err))
		}
		q, label, err := s.last.Nearest(ctx, query, s.r.options()...)
		if err != nil {
			return false, renderWarning(s.out, err.Error())
		}
		return false, renderNearest(s.out, q, &label)
	default:
		return false, renderWarning(s.out, fmt.Sprintf("unknown command %q; type help", cmd))
	}
}
