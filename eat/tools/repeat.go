package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/navijation/eaterate/eat"
	"github.com/urfave/cli/v3"
)

func printRepeat(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("usage: repeat [--count N] value")
	}

	value := cmd.Args().First()

	for item := range eat.Seq(eat.Repeat(value, cmd.Uint("count"))) {
		fmt.Println(item)
	}

	return nil
}
