package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"

	"github.com/typed-lint/typetab/core/check"
	"github.com/typed-lint/typetab/core/cli"
	"github.com/typed-lint/typetab/core/render"
	"github.com/typed-lint/typetab/core/source"
	"github.com/typed-lint/typetab/pkg/logx"
	"github.com/typed-lint/typetab/pkg/metadata"
	"github.com/typed-lint/typetab/pkg/pypi"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logx.Init()

	newProvider := func(path string) source.Provider {
		return metadata.NewLoader(path)
	}

	runGenerate := func(ctx context.Context, opts cli.GenerateOptions) error {
		db, err := newProvider(opts.Metadata).Load(ctx)
		if err != nil {
			return fmt.Errorf("loading symbol database: %w", err)
		}
		log.Debugf("loaded %d records, %d mypy-extensions names, %d typing-extensions names",
			len(db.Records), len(db.MypyExtensions), len(db.TypingExtensions))

		text := render.Document(db)

		if opts.Out != "" {
			if err := os.WriteFile(opts.Out, []byte(text), 0o644); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
			log.Infof("wrote %d bytes to %s", len(text), opts.Out)
			return nil
		}

		fmt.Print(text)
		return nil
	}

	runCheck := func(ctx context.Context, opts cli.CheckOptions) error {
		db, err := newProvider(opts.Metadata).Load(ctx)
		if err != nil {
			return fmt.Errorf("loading symbol database: %w", err)
		}

		client := pypi.NewClient("typetab/" + version)
		return check.Pins(ctx, db.Packages, client.LatestVersion, os.Stderr)
	}

	root := cli.NewRootCmd(version)
	root.AddCommand(cli.NewGenerateCmd(runGenerate))
	root.AddCommand(cli.NewCheckCmd(runCheck))

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
