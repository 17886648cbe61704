package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/weaveworks/shopctl/pkg/catalog"
	"github.com/weaveworks/shopctl/pkg/display"
	"github.com/weaveworks/shopctl/pkg/formatter"
)

func productsCmd() *cli.Command {
	return &cli.Command{
		Name:      "products",
		Usage:     "list every product in the catalog",
		UsageText: "shopctl products [--output table|json|yaml] [--out <FILE>]",
		Flags:     outputFlags(),
		Action: func(c *cli.Context) error {
			api, err := newAsyncClient(c)
			if err != nil {
				return err
			}
			defer api.Close()

			future, err := api.ListProducts()
			if err != nil {
				return err
			}
			list, err := future.Wait(c.Context)
			if err != nil {
				return fmt.Errorf("failed to load products: %w", err)
			}
			reportDiagnostics(c, list.Diagnostics)
			return printProducts(c, list.Items)
		},
	}
}

func printProducts(c *cli.Context, products []catalog.Product) error {
	if len(products) == 0 {
		fmt.Fprintln(c.App.Writer, "No products found")
		return nil
	}
	return printOutput(c, productsDataFunc(products), products)
}

func productsDataFunc(products []catalog.Product) func() interface{} {
	return func() interface{} {
		tc := formatter.TableContents{
			Headers: []string{"ID", "Product", "Details", "Seller"},
		}
		for _, p := range products {
			row := display.ProductRow(p)
			tc.Data = append(tc.Data, []string{p.ID, row.Title, row.Subtitle, p.SellerID})
		}
		return tc
	}
}
