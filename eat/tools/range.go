package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/navijation/eaterate/eat"
	"github.com/urfave/cli/v3"
)

func printRange(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 0 {
		return errors.New("usage: range [--start N] [--stop N] [--inclusive]")
	}

	rng := eat.Range(cmd.Int("start"), cmd.Int("stop"))
	if cmd.Bool("inclusive") {
		rng.Inclusive()
	}

	for number := range eat.Seq[int64](rng) {
		fmt.Println(number)
	}

	return nil
}
