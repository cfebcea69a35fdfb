/*
reindeer finds the cheapest route through a text maze where every move costs
a fixed amount and every change of heading costs extra, then counts the cells
that lie on at least one cheapest route.

Usage:

	reindeer [flags] [maze-file]

If no file is given the maze is read from standard input. Costs and the
starting heading come from the environment (REINDEER_MOVE_COST,
REINDEER_TURN_COST, REINDEER_HEADING, REINDEER_LOG_LEVEL), optionally loaded
from a .env file, and may be overridden with flags.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/maze"
	"github.com/katalvlaran/mazepath/pathset"
	"github.com/katalvlaran/mazepath/search"
)

var log = logrus.New()

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.WithError(err).Error("reindeer failed")
		os.Exit(1)
	}
}

// run parses args, solves the maze and writes the report to out.
func run(args []string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("reindeer", flag.ContinueOnError)
	fs.SetOutput(out)
	envFile := fs.String("env", ".env", "optional dotenv file")
	moveCost := fs.Int("move", -1, "cost of one move (overrides "+envMoveCost+")")
	turnCost := fs.Int("turn", -1, "extra cost of a turn (overrides "+envTurnCost+")")
	heading := fs.String("heading", "", "heading on the start cell (overrides "+envHeading+")")
	render := fs.Bool("render", false, "print the maze with cheapest-route cells marked 'O'")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*envFile)
	if err != nil {
		return err
	}
	if *moveCost >= 0 {
		cfg.MoveCost = *moveCost
	}
	if *turnCost >= 0 {
		cfg.TurnCost = *turnCost
	}
	if *heading != "" {
		h, ok := maze.ParseHeading(*heading)
		if !ok {
			return fmt.Errorf("unknown heading %q", *heading)
		}
		cfg.Heading = h
	}
	log.SetLevel(cfg.LogLevel)

	src := in
	name := "stdin"
	if fs.NArg() > 0 {
		name = fs.Arg(0)
		f, err := os.Open(name)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}

	m, err := maze.Read(src)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	log.WithFields(logrus.Fields{
		"source": name,
		"width":  m.Width,
		"height": m.Height,
		"start":  m.Start().String(),
		"goal":   m.Goal().String(),
	}).Debug("maze loaded")

	res, err := search.Search(m, cfg.searchOptions()...)
	if errors.Is(err, search.ErrNoPath) {
		log.WithField("explored", res.Scores.Len()).Warn("goal is unreachable")
		fmt.Fprintln(out, "no path")
		return nil
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"cost":     res.Cost,
		"explored": res.Scores.Len(),
		"headings": fmt.Sprint(res.GoalHeadings()),
	}).Debug("search finished")

	cells, err := pathset.Cells(res)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "lowest score: %d\n", res.Cost)
	fmt.Fprintf(out, "tiles on best paths: %d\n", len(cells))
	if *render {
		fmt.Fprint(out, m.Render(pathset.Contains(cells), 'O'))
	}

	return nil
}
