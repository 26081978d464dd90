// Command wallrects prints the merged wall rectangles the game builds colliders from.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/gravitylegacy/levels"
	"github.com/milk9111/gravitylegacy/logger"
	"github.com/milk9111/gravitylegacy/walls"
	"github.com/sirupsen/logrus"
)

type rectOutput struct {
	Left    int     `json:"left"`
	Right   int     `json:"right"`
	Bottom  int     `json:"bottom"`
	Top     int     `json:"top"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Log.WithError(err).Fatal("wallrects failed")
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("wallrects", flag.ContinueOnError)
	fs.SetOutput(out)
	all := fs.Bool("all", false, "report every embedded level")
	asJSON := fs.Bool("json", false, "print JSON instead of a table")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger.Init(*logLevel, "")

	names := fs.Args()
	if *all {
		names = levels.Names()
	}
	if len(names) == 0 {
		return fmt.Errorf("no level given (pass names or -all)")
	}

	report := make(map[string][]rectOutput, len(names))
	for _, name := range names {
		lvl, err := levels.Load(name)
		if err != nil {
			return err
		}
		grid, err := lvl.SolidGrid()
		if err != nil {
			return err
		}
		rects := walls.Compact(grid)
		logger.Log.WithFields(logrus.Fields{
			"level": lvl.Name,
			"cells": len(grid.Cells()),
			"rects": len(rects),
		}).Debug("compacted walls")

		rows := make([]rectOutput, 0, len(rects))
		for _, r := range rects {
			c := r.Collider(lvl.CellSize, 0, 0)
			rows = append(rows, rectOutput{
				Left:    r.Left,
				Right:   r.Right,
				Bottom:  r.Bottom,
				Top:     r.Top,
				CenterX: c.CenterX,
				CenterY: c.CenterY,
				Width:   c.Width(),
				Height:  c.Height(),
			})
		}
		report[lvl.Name] = rows

		if !*asJSON {
			fmt.Fprintf(out, "%s: %d cells -> %d rects\n", lvl.Name, len(grid.Cells()), len(rects))
			for _, row := range rows {
				fmt.Fprintf(out, "  cells x[%d..%d] y[%d..%d]  center (%.1f, %.1f)  size %.0fx%.0f\n",
					row.Left, row.Right, row.Bottom, row.Top, row.CenterX, row.CenterY, row.Width, row.Height)
			}
		}
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return nil
}
