// Command gridpath loads a text map, finds the cheapest route from the
// player to the gold and prints it.
//
//	gridpath -map maps/map1.txt [-diagonal] [-from o] [-to g]
//	         [-corner allow|one|none] [-max-expansions N] [-marker X] [-tui]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/tilemap"
	"github.com/katalvlaran/gridpath/view"
)

type config struct {
	mapPath       string
	diagonal      bool
	from, to      string
	corner        string
	maxExpansions int
	marker        string
	tui           bool
}

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridpath: ")

	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mapPath, "map", "", "path to the text map (required)")
	fs.BoolVar(&cfg.diagonal, "diagonal", false, "allow 8-directional movement")
	fs.StringVar(&cfg.from, "from", "o", "tag of the start tile")
	fs.StringVar(&cfg.to, "to", "g", "tag of the goal tile")
	fs.StringVar(&cfg.corner, "corner", "allow", "diagonal corner cutting: allow, one or none")
	fs.IntVar(&cfg.maxExpansions, "max-expansions", 0, "give up after settling this many cells (0 = unlimited)")
	fs.StringVar(&cfg.marker, "marker", "X", "rune drawn on the path")
	fs.BoolVar(&cfg.tui, "tui", false, "show the result in a terminal screen")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.mapPath == "" {
		fs.Usage()
		return cfg, fmt.Errorf("%w: -map is required", errUsage)
	}
	for name, v := range map[string]string{"from": cfg.from, "to": cfg.to, "marker": cfg.marker} {
		if len([]rune(v)) != 1 {
			return cfg, fmt.Errorf("%w: -%s must be a single character, got %q", errUsage, name, v)
		}
	}
	if _, err := cornerPolicy(cfg.corner); err != nil {
		return cfg, err
	}
	if cfg.maxExpansions < 0 {
		return cfg, fmt.Errorf("%w: -max-expansions must be non-negative", errUsage)
	}
	return cfg, nil
}

func cornerPolicy(s string) (astar.CornerPolicy, error) {
	switch s {
	case "allow":
		return astar.CornerCutAllow, nil
	case "one":
		return astar.CornerCutOneOpen, nil
	case "none":
		return astar.CornerCutNoneBlocked, nil
	}
	return 0, fmt.Errorf("%w: -corner must be allow, one or none, got %q", errUsage, s)
}

func run(cfg config, out io.Writer) error {
	g, err := tilemap.LoadFile(cfg.mapPath, demoPalette())
	if err != nil {
		return err
	}
	printCounts(out, g)

	from, to := []rune(cfg.from)[0], []rune(cfg.to)[0]
	starts, goals := g.PositionsOf(from), g.PositionsOf(to)
	if len(starts) == 0 {
		return fmt.Errorf("no %q tile on the map", from)
	}
	if len(goals) == 0 {
		return fmt.Errorf("no %q tile on the map", to)
	}

	movement := astar.FourDirectional
	if cfg.diagonal {
		movement = astar.EightDirectional
	}
	corner, _ := cornerPolicy(cfg.corner)
	eng, err := astar.New(astar.HeuristicFor(movement), movement,
		astar.WithCornerPolicy(corner),
		astar.WithMaxExpansions(cfg.maxExpansions),
	)
	if err != nil {
		return err
	}

	res, err := eng.FindPath(g, starts[0], goals[0])
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintf(out, "no path from %v to %v (%s, %d cells expanded)\n", starts[0], goals[0], movement, res.Expanded)
		return nil
	}

	for _, s := range res.Path {
		fmt.Fprintf(out, "Direction: %v, %v\n", s.Dir, s.Pos)
	}
	fmt.Fprintf(out, "cost %d, %d steps, %d cells expanded\n", res.Cost, len(res.Path)-1, res.Expanded)

	marker := []rune(cfg.marker)[0]
	rows := view.Overlay(g, res.Path, marker)
	if cfg.tui {
		return show(rows, marker)
	}
	for _, row := range rows {
		fmt.Fprintln(out, row)
	}
	return nil
}

func printCounts(out io.Writer, g *tilemap.Grid) {
	counts := g.Counts()
	tags := make([]rune, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })

	fmt.Fprintf(out, "%dx%d map\n", g.Width(), g.Height())
	for _, tag := range tags {
		fmt.Fprintf(out, "%q: %d\n", tag, counts[tag])
	}
}

// show draws rows on a tcell screen and waits for any key.
func show(rows []string, marker rune) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	screen.Clear()
	view.Draw(screen, 0, 0, rows, view.DefaultStyles(marker))
	view.Draw(screen, 0, len(rows)+1, []string{"press any key to exit"}, nil)
	screen.Show()

	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}
