package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:  "eat_tools",
		Usage: "generate and print lazy sequences",
		Commands: []*cli.Command{
			{
				Name:   "range",
				Action: printRange,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "start",
						DefaultText: "0",
						Value:       0,
						Usage:       "first number of the range",
					},
					&cli.IntFlag{
						Name:        "stop",
						DefaultText: "10",
						Value:       10,
						Usage:       "end of the range, excluded unless --inclusive",
					},
					&cli.BoolFlag{
						Name:  "inclusive",
						Usage: "include the stop value",
					},
				},
			},
			{
				Name:   "repeat",
				Action: printRepeat,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:        "count",
						DefaultText: "3",
						Value:       3,
						Usage:       "number of repetitions",
					},
				},
			},
			{
				Name:   "uuids",
				Action: printUUIDs,
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:        "count",
						DefaultText: "1",
						Value:       1,
						Usage:       "number of UUIDs to generate",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
