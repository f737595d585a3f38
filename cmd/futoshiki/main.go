// Command futoshiki encodes a Futoshiki board as a CSP and solves it with
// a selectable encoding and propagator.
//
// The board file uses the 2n-1 token row format: cell values (0 = blank)
// alternating with inequality symbols (">", "<", "." for none), e.g.
//
//	0 > 0 . 2
//	0 . 4 . 0
//	1 . 0 < 0
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gitrdm/gofutoshiki/pkg/futoshiki"
)

type options struct {
	encoding   string
	propagator string
	limit      int
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:          "futoshiki BOARD_FILE",
		Short:        "Solve a Futoshiki board via CSP propagation",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args[0])
		},
	}

	cmd.Flags().StringVar(&o.encoding, "encoding", "binary",
		"constraint encoding: binary (pairwise not-equal) or alldiff (row/column all-different)")
	cmd.Flags().StringVar(&o.propagator, "propagator", "gac",
		"propagator: none (check assigned constraints), fc (forward checking), or gac")
	cmd.Flags().IntVar(&o.limit, "limit", 1, "stop after this many solutions (0 = all)")
	cmd.Flags().DurationVar(&o.timeout, "timeout", 0, "abort the search after this duration (0 = none)")
	return cmd
}

func run(o options, path string) error {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("reading board: %w", err)
	}

	board, err := futoshiki.ParseBoardText(string(data))
	if err != nil {
		return err
	}

	var encode func(*futoshiki.Board) (*futoshiki.CSP, [][]*futoshiki.Variable)
	switch o.encoding {
	case "binary":
		encode = futoshiki.EncodeBinary
	case "alldiff":
		encode = futoshiki.EncodeAllDiff
	default:
		return fmt.Errorf("unknown encoding %q", o.encoding)
	}

	var prop futoshiki.Propagator
	switch o.propagator {
	case "none":
		prop = futoshiki.CheckAssigned
	case "fc":
		prop = futoshiki.ForwardCheck
	case "gac":
		prop = futoshiki.EnforceGAC
	default:
		return fmt.Errorf("unknown propagator %q", o.propagator)
	}

	start := time.Now()
	model, grid := encode(board)
	log.WithFields(log.Fields{
		"size":        board.Size(),
		"encoding":    o.encoding,
		"variables":   len(model.Variables()),
		"constraints": len(model.Constraints()),
		"encode_time": time.Since(start).String(),
	}).Info("board encoded")

	ctx := context.Background()
	if o.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.timeout)
		defer cancel()
	}

	start = time.Now()
	solutions, err := futoshiki.Solve(ctx, model, prop, o.limit)
	if err != nil {
		return fmt.Errorf("search aborted: %w", err)
	}
	log.WithFields(log.Fields{
		"propagator":  o.propagator,
		"solutions":   len(solutions),
		"search_time": time.Since(start).String(),
	}).Info("search finished")

	if len(solutions) == 0 {
		return fmt.Errorf("board has no solution")
	}
	for i, sol := range solutions {
		if len(solutions) > 1 {
			fmt.Printf("solution %d:\n", i+1)
		}
		printGrid(futoshiki.GridValues(grid, sol))
	}
	return nil
}

func printGrid(values [][]int) {
	for _, row := range values {
		for c, v := range row {
			if c > 0 {
				fmt.Print(" ")
			}
			fmt.Print(v)
		}
		fmt.Println()
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
