package main

import (
	"context"
	"fmt"

	"github.com/navijation/eaterate/eat"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func printUUIDs(_ context.Context, cmd *cli.Command) error {
	source := eat.UUIDs()

	for i := uint64(0); i < cmd.Uint("count"); i++ {
		id, exists := source.Next().Unpack()
		if !exists {
			return errors.Errorf("UUID source exhausted after %d items", i)
		}
		fmt.Println(id.String())
	}

	return nil
}
