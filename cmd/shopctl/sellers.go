package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/weaveworks/shopctl/pkg/catalog"
	"github.com/weaveworks/shopctl/pkg/formatter"
)

func sellersCmd() *cli.Command {
	return &cli.Command{
		Name:      "sellers",
		Usage:     "list sellers and their messenger links",
		UsageText: "shopctl sellers [--output table|json|yaml] [--out <FILE>]",
		Flags:     outputFlags(),
		Action: func(c *cli.Context) error {
			api, err := newAsyncClient(c)
			if err != nil {
				return err
			}
			defer api.Close()

			future, err := api.ListSellers()
			if err != nil {
				return err
			}
			list, err := future.Wait(c.Context)
			if err != nil {
				return fmt.Errorf("failed to load sellers: %w", err)
			}
			reportDiagnostics(c, list.Diagnostics)
			if len(list.Items) == 0 {
				fmt.Fprintln(c.App.Writer, "No sellers found")
				return nil
			}
			return printOutput(c, sellersDataFunc(list.Items), list.Items)
		},
	}
}

func sellersDataFunc(sellers []catalog.Seller) func() interface{} {
	return func() interface{} {
		tc := formatter.TableContents{
			Headers: []string{"ID", "Name", "Telegram", "VK", "WhatsApp", "Instagram"},
		}
		for _, s := range sellers {
			tc.Data = append(tc.Data, []string{s.ID, s.Name, s.TelegramURL, s.VKURL, s.WhatsappURL, s.InstagramURL})
		}
		return tc
	}
}
