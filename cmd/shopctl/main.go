package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/weaveworks/shopctl/pkg/async"
	"github.com/weaveworks/shopctl/pkg/catalog"
	"github.com/weaveworks/shopctl/pkg/client"
	"github.com/weaveworks/shopctl/pkg/config"
	"github.com/weaveworks/shopctl/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := newApp(cfg, os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.StderrLogger{Stderr: os.Stderr}.Failuref("%v", err)
		os.Exit(1)
	}
}

func newApp(cfg config.Config, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "shopctl",
		Usage:     "A cli tool for browsing the storefront catalog",
		Flags:     globalFlags(cfg),
		Writer:    stdout,
		ErrWriter: stderr,
		Metadata: map[string]interface{}{
			"environment": config.ParseEnvironment(cfg.Environment),
		},
		Commands: []*cli.Command{
			productsCmd(),
			searchCmd(),
			showCmd(),
			storiesCmd(),
			sellersCmd(),
			healthCmd(),
			checkCmd(),
			versionCmd(),
		},
	}
}

func globalFlags(cfg config.Config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "base-url",
			Value: cfg.BaseURL,
			Usage: "Storefront API root",
		},
		&cli.IntFlag{
			Name:  "workers",
			Value: cfg.Workers,
			Usage: "Number of concurrent API calls",
		},
		&cli.DurationFlag{
			Name:  "connect-timeout",
			Value: cfg.ConnectTimeout,
			Usage: "Timeout for establishing a connection",
		},
		&cli.DurationFlag{
			Name:  "read-timeout",
			Value: cfg.ReadTimeout,
			Usage: "Timeout for reading a response",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Value: cfg.LogLevel,
			Usage: "Log level. trace|debug|info|warn|error",
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			DefaultText: "table",
			Value:       "table",
			Usage:       "Output format. table|json|yaml",
		},
		&cli.StringFlag{
			Name:  "out",
			Usage: "Write the output to this file instead of stdout",
		},
	}
}

func newLogger(c *cli.Context) zerolog.Logger {
	env, _ := c.App.Metadata["environment"].(config.Environment)
	return log.New(log.Options{
		Level:       c.String("log-level"),
		Environment: env,
		Out:         c.App.ErrWriter,
	})
}

func printer(c *cli.Context) log.StderrLogger {
	return log.StderrLogger{Stderr: c.App.ErrWriter}
}

func newCatalogClient(c *cli.Context) (*catalog.Client, error) {
	logger := newLogger(c)
	return catalog.New(catalog.Options{
		BaseURL: c.String("base-url"),
		HTTPClient: client.New(client.Options{
			ConnectTimeout: c.Duration("connect-timeout"),
			ReadTimeout:    c.Duration("read-timeout"),
		}),
		Logger: &logger,
	})
}

func newAsyncClient(c *cli.Context) (*async.Client, error) {
	catalogClient, err := newCatalogClient(c)
	if err != nil {
		return nil, err
	}
	return async.New(catalogClient, c.Int("workers")), nil
}

func reportDiagnostics(c *cli.Context, diagnostics []catalog.Diagnostic) {
	p := printer(c)
	for _, d := range diagnostics {
		p.Warningf("skipped %s", d)
	}
}
