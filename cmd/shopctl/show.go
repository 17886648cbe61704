package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/weaveworks/shopctl/pkg/display"
	"github.com/weaveworks/shopctl/pkg/formatter"
	"github.com/weaveworks/shopctl/pkg/writer"
)

func showCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "display information about a product",
		UsageText: "shopctl show [--output table|json|yaml] <PRODUCT-ID>",
		Flags:     outputFlags(),
		Action: func(c *cli.Context) error {
			if c.Args().Len() < 1 {
				_ = cli.ShowCommandHelp(c, "show")
				return fmt.Errorf("product id must be provided")
			}
			id := c.Args().First()

			catalogClient, err := newCatalogClient(c)
			if err != nil {
				return err
			}
			list, err := catalogClient.ListProducts(c.Context)
			if err != nil {
				return fmt.Errorf("failed to load products: %w", err)
			}
			product, ok := display.FindProduct(list.Items, id)
			if !ok {
				return fmt.Errorf("unable to find product %q in catalog %s", id, catalogClient.BaseURL())
			}

			if formatter.IsTable(c.String("output")) {
				return writer.New(c.String("out"), c.App.Writer).Output(display.ProductDetail(product))
			}
			return printOutput(c, nil, product)
		},
	}
}
