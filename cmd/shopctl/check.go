package main

import (
	"github.com/urfave/cli/v2"

	"github.com/weaveworks/shopctl/pkg/probe"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "walk every API endpoint in turn to verify connectivity",
		UsageText: "shopctl check [--query <QUERY>]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "query",
				Value: probe.DefaultQuery,
				Usage: "Search term used for the final step",
			},
		},
		Action: func(c *cli.Context) error {
			api, err := newAsyncClient(c)
			if err != nil {
				return err
			}
			defer api.Close()

			_, err = probe.Run(c.Context, api, c.String("query"), printer(c))
			return err
		},
	}
}
