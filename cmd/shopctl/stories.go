package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/weaveworks/shopctl/pkg/catalog"
	"github.com/weaveworks/shopctl/pkg/formatter"
)

func storiesCmd() *cli.Command {
	return &cli.Command{
		Name:      "stories",
		Usage:     "list seller stories",
		UsageText: "shopctl stories [--output table|json|yaml] [--out <FILE>]",
		Flags:     outputFlags(),
		Action: func(c *cli.Context) error {
			api, err := newAsyncClient(c)
			if err != nil {
				return err
			}
			defer api.Close()

			future, err := api.ListStories()
			if err != nil {
				return err
			}
			list, err := future.Wait(c.Context)
			if err != nil {
				return fmt.Errorf("failed to load stories: %w", err)
			}
			reportDiagnostics(c, list.Diagnostics)
			if len(list.Items) == 0 {
				fmt.Fprintln(c.App.Writer, "No stories found")
				return nil
			}
			return printOutput(c, storiesDataFunc(list.Items), list.Items)
		},
	}
}

func storiesDataFunc(stories []catalog.Story) func() interface{} {
	return func() interface{} {
		tc := formatter.TableContents{
			Headers: []string{"ID", "Title", "Link", "Seller", "Created"},
		}
		for _, s := range stories {
			tc.Data = append(tc.Data, []string{s.ID, s.Title, s.Link, s.SellerID, s.CreatedAt})
		}
		return tc
	}
}
