package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/weaveworks/shopctl/pkg/formatter"
	"github.com/weaveworks/shopctl/pkg/writer"
)

// printOutput renders data with the selected --output format. tableFunc is
// used for table output, data itself for json and yaml.
func printOutput(c *cli.Context, tableFunc func() interface{}, data interface{}) error {
	outFormat := c.String("output")
	f, err := formatter.New(outFormat)
	if err != nil {
		return err
	}

	getter := tableFunc
	if !formatter.IsTable(outFormat) {
		getter = func() interface{} { return data }
	}

	out, err := f.Format(getter)
	if err != nil {
		return err
	}
	if err := writer.New(c.String("out"), c.App.Writer).Output(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
