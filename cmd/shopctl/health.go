package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func healthCmd() *cli.Command {
	return &cli.Command{
		Name:      "health",
		Usage:     "check whether the storefront API is up",
		UsageText: "shopctl health",
		Action: func(c *cli.Context) error {
			api, err := newAsyncClient(c)
			if err != nil {
				return err
			}
			defer api.Close()

			future, err := api.CheckHealth()
			if err != nil {
				return err
			}
			msg, err := future.Wait(c.Context)
			if err != nil {
				return fmt.Errorf("API health check failed: %w", err)
			}
			fmt.Fprintln(c.App.Writer, msg)
			return nil
		},
	}
}
