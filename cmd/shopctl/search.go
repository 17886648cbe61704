package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "search for products",
		UsageText: "shopctl search [--output table|json|yaml] [--out <FILE>] <QUERY>",
		Flags:     outputFlags(),
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 1 {
				_ = cli.ShowCommandHelp(c, "search")
				return fmt.Errorf("argument must be provided")
			}
			query := c.Args().First()

			api, err := newAsyncClient(c)
			if err != nil {
				return err
			}
			defer api.Close()

			printer(c).Actionf("searching for products matching %q", query)
			future, err := api.SearchProducts(query)
			if err != nil {
				return err
			}
			list, err := future.Wait(c.Context)
			if err != nil {
				return fmt.Errorf("failed to search products: %w", err)
			}
			reportDiagnostics(c, list.Diagnostics)
			return printProducts(c, list.Items)
		},
	}
}
