package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/weaveworks/shopctl/pkg/version"
)

func versionCmd() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the shopctl version",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "text",
				Usage:   "Output format. text|json",
			},
		},
		Action: func(c *cli.Context) error {
			if c.String("output") == "json" {
				fmt.Fprintln(c.App.Writer, version.String())
				return nil
			}
			fmt.Fprintln(c.App.Writer, version.GetVersion())
			return nil
		},
	}
}
