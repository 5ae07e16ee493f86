// Command gridsnake demonstrates the Hamiltonian-path search engine:
// it solves one request (or a YAML batch of them) with the recursive
// strategy, the iterative strategy, or both, printing each path, its
// diagram, and the elapsed wall-clock time for comparison.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pathbound/gridsnake/grid"
	"github.com/pathbound/gridsnake/snake"
)

// scenario is one request in a -scenarios YAML file. Strategy may be
// "recursive", "iterative", or empty/"both".
type scenario struct {
	Name     string `yaml:"name"`
	Rows     int    `yaml:"rows"`
	Cols     int    `yaml:"cols"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Strategy string `yaml:"strategy"`
}

func main() {
	rows := flag.Int("rows", 5, "grid rows")
	cols := flag.Int("cols", 5, "grid columns")
	startArg := flag.String("start", "0,0", "start cell as row,col")
	endArg := flag.String("end", "0,3", "end cell as row,col")
	strategy := flag.String("strategy", "both", "search strategy: recursive, iterative or both")
	scenarios := flag.String("scenarios", "", "YAML scenario file (overrides the flags above)")
	flag.Parse()

	if *scenarios != "" {
		runScenarioFile(*scenarios)
		return
	}

	start, err := parseCell(*startArg)
	if err != nil {
		log.Fatalf("invalid -start: %v", err)
	}
	end, err := parseCell(*endArg)
	if err != nil {
		log.Fatalf("invalid -end: %v", err)
	}

	run("", start, end, grid.Dims{Rows: *rows, Cols: *cols}, *strategy)
}

// runScenarioFile loads a YAML list of scenarios and runs each in order.
func runScenarioFile(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read scenarios: %v", err)
	}
	var list []scenario
	if err = yaml.Unmarshal(raw, &list); err != nil {
		log.Fatalf("parse scenarios: %v", err)
	}
	if len(list) == 0 {
		log.Fatalf("no scenarios in %s", path)
	}

	for _, sc := range list {
		start, err := parseCell(sc.Start)
		if err != nil {
			log.Fatalf("scenario %q: invalid start: %v", sc.Name, err)
		}
		end, err := parseCell(sc.End)
		if err != nil {
			log.Fatalf("scenario %q: invalid end: %v", sc.Name, err)
		}
		run(sc.Name, start, end, grid.Dims{Rows: sc.Rows, Cols: sc.Cols}, sc.Strategy)
	}
}

// run solves one request with the selected strategy (or both) and
// reports path, diagram and timing per strategy.
func run(name string, start, end grid.Cell, dims grid.Dims, strategyName string) {
	if name != "" {
		fmt.Printf("=== %s ===\n", name)
	}

	var strategies []snake.Strategy
	switch strategyName {
	case "", "both":
		strategies = []snake.Strategy{snake.Recursive, snake.Iterative}
	default:
		s, err := snake.ParseStrategy(strategyName)
		if err != nil {
			log.Fatalf("invalid strategy: %v", err)
		}
		strategies = []snake.Strategy{s}
	}

	for _, strat := range strategies {
		fmt.Printf("\nSolving %dx%d grid %v→%v with %s strategy:\n",
			dims.Rows, dims.Cols, start, end, strat)

		began := time.Now()
		path, err := snake.Solve(start, end, dims, snake.WithStrategy(strat))
		elapsed := time.Since(began)

		switch {
		case err == nil:
			fmt.Printf("\tSolution path found: %v\n", path)
			fmt.Println()
			fmt.Println(snake.Render(path, dims))
			fmt.Println()
		case errors.Is(err, snake.ErrNoSolution):
			fmt.Println("\tNo solution path found.")
		default:
			log.Fatalf("solve: %v", err)
		}

		fmt.Printf("\tElapsed time: %s\n", elapsed)
	}
}

// parseCell reads a "row,col" pair.
func parseCell(s string) (grid.Cell, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return grid.Cell{}, fmt.Errorf("want row,col; got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("bad row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Cell{}, fmt.Errorf("bad col in %q: %w", s, err)
	}

	return grid.Cell{Row: row, Col: col}, nil
}
