package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"trigon/board"
	"trigon/game"
	"trigon/meta"
	"trigon/scenario"
)

func runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "play a scenario file and print the final state",
		ArgsUsage: "<scenario.yaml>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "print only the final state",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd.Bool("debug"))
			if cmd.Args().Len() != 1 {
				return errors.New("run expects exactly one scenario file")
			}
			return runScenario(os.Stdout, cmd.Args().First(), cmd.Bool("quiet"))
		},
	}
}

func runScenario(w io.Writer, path string, quiet bool) error {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}
	log.Info().Str("scenario", s.Name).Int("actions", len(s.Actions)).Msg("running scenario")

	res, runErr := s.Run(game.NewEngine(game.WithLogger(log.Logger)))
	if res == nil {
		return runErr
	}
	if !quiet {
		for _, step := range res.Steps {
			outcome := "ok"
			if step.Failed() {
				outcome = step.Err.Error()
			}
			fmt.Fprintf(w, "%3d %-10s %-60s %016x\n", step.Index, step.Action.Type(), outcome, uint64(step.Hash))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res.Final); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	if winner, ok := game.Winner(res.Final); ok {
		log.Info().Str("winner", string(winner)).Msg("game over")
	}
	return nil
}

func boardCommand() *cli.Command {
	return &cli.Command{
		Name:  "board",
		Usage: "print the neighbor table of a generated board",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "rows", Value: meta.BOARD_ROWS, Usage: "number of rows"},
			&cli.IntFlag{Name: "cols", Value: meta.BOARD_COLS, Usage: "number of columns"},
			&cli.BoolFlag{Name: "wings", Value: meta.WITH_WINGS, Usage: "add the standard wing cells"},
			&cli.BoolFlag{Name: "vertex", Value: meta.ALLOW_VERTEX, Usage: "include corner-sharing neighbors"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			setupLogging(cmd.Bool("debug"))
			var options []board.Option
			if cmd.Bool("wings") {
				options = append(options, board.WithWings(board.StandardWings...))
			}
			g, err := board.Build(int(cmd.Int("rows")), int(cmd.Int("cols")), options...)
			if err != nil {
				return err
			}
			printBoard(os.Stdout, g, cmd.Bool("vertex"))
			return nil
		},
	}
}

func printBoard(w io.Writer, g *board.Graph, allowVertex bool) {
	for _, t := range g.Tiles() {
		parts := make([]string, 0, 8)
		for _, n := range g.NeighborsWithDir(t.ID, allowVertex) {
			parts = append(parts, fmt.Sprintf("%s %s/%s", board.TileID(n.ID), n.Dir, board.AttackAttributeOf(n.Dir)))
		}
		fmt.Fprintf(w, "%-4s (%2d,%2d) %-5s %s\n", board.TileID(t.ID), t.Row, t.Col, t.Orient, strings.Join(parts, ", "))
	}
}
