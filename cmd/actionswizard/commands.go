package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"github.com/weberc2/actionswizard/pkg/logger"
	"github.com/weberc2/actionswizard/pkg/objectstore"
	"github.com/weberc2/actionswizard/pkg/output"
	"github.com/weberc2/actionswizard/pkg/wizard"
	"github.com/weberc2/actionswizard/pkg/workflow"
)

var ErrNotInteractive = errors.New(
	"the wizard requires a terminal; use `generate --answers FILE` instead",
)

var successColor = color.New(color.FgGreen)

type commands struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	interactive func() bool
}

func (cmds *commands) app() *cli.App {
	return &cli.App{
		Name:      appName,
		Usage:     "generate GitHub Actions workflow files",
		Writer:    cmds.stdout,
		ErrWriter: cmds.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "load configuration from `FILE`",
				EnvVars: []string{envVarPrefix + "_CONFIG_FILE"},
			},
			&cli.StringFlag{
				Name:  "variant",
				Usage: "render `extended` or `simple` workflows",
			},
		},
		Action: cmds.wizard,
		Commands: []*cli.Command{
			{
				Name:   "wizard",
				Usage:  "build a workflow interactively",
				Action: cmds.wizard,
			},
			{
				Name:  "generate",
				Usage: "render a workflow from an answers file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "answers",
						Aliases:  []string{"a"},
						Usage:    "read answers from `FILE` (`-` for stdin)",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "save the workflow to `LOCATION`",
					},
				},
				Action: cmds.generate,
			},
			{
				Name:   "triggers",
				Usage:  "list the supported workflow triggers",
				Action: cmds.triggers,
			},
		},
	}
}

func (cmds *commands) setup(
	c *cli.Context,
) (context.Context, *Config, error) {
	config, err := LoadConfig(c.String("config"))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if v := c.String("variant"); v != "" {
		if config.Variant, err = workflow.ParseVariant(v); err != nil {
			return nil, nil, err
		}
	}
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}

	level, err := logger.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.Set(ctx, logger.New(cmds.stderr, level))
	ctx = logger.With(ctx, "session", uuid.NewString())
	return ctx, config, nil
}

// writer returns an output writer that can also save to S3. If no AWS session
// can be created, S3 locations fail at save time and files still work.
func (cmds *commands) writer(
	ctx context.Context,
	config *Config,
) *output.Writer {
	objects, err := objectstore.NewS3ObjectStore(config.AWSRegion)
	if err != nil {
		logger.Get(ctx).Warn("s3 unavailable", "err", err.Error())
		return &output.Writer{}
	}
	return &output.Writer{Objects: objects}
}

func (cmds *commands) wizard(c *cli.Context) error {
	if !cmds.interactive() {
		return ErrNotInteractive
	}

	ctx, config, err := cmds.setup(c)
	if err != nil {
		return err
	}

	w := wizard.Wizard{
		Prompter:        wizard.SurveyPrompter{},
		Saver:           cmds.writer(ctx, config),
		Renderer:        config.Renderer(),
		Out:             cmds.stdout,
		MaxRunners:      config.MaxRunners,
		DefaultLocation: config.DefaultLocation(),
	}
	result, err := w.Run(ctx)
	if err != nil {
		return err
	}
	logger.Get(ctx).Info(
		"wizard finished",
		"jobs", len(result.Spec.Jobs),
		"location", result.Location,
	)
	return nil
}

func (cmds *commands) generate(c *cli.Context) error {
	ctx, config, err := cmds.setup(c)
	if err != nil {
		return err
	}

	spec, err := cmds.readAnswers(c.String("answers"))
	if err != nil {
		return err
	}

	renderer := config.Renderer()
	doc := renderer.Render(spec)

	location := c.String("output")
	if location == "" {
		_, err := io.WriteString(cmds.stdout, doc)
		return err
	}
	if err := cmds.writer(ctx, config).Save(
		ctx,
		location,
		[]byte(doc),
	); err != nil {
		return err
	}
	successColor.Fprintf(cmds.stdout, "Saved workflow to %s\n", location)
	return nil
}

func (cmds *commands) readAnswers(
	path string,
) (*workflow.WorkflowSpec, error) {
	if path == "-" {
		return workflow.DecodeAnswers(cmds.stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening answers file: %w", err)
	}
	defer file.Close()
	return workflow.DecodeAnswers(file)
}

func (cmds *commands) triggers(c *cli.Context) error {
	for _, name := range workflow.TriggerNames(workflow.AllTriggers[:]) {
		if _, err := fmt.Fprintln(cmds.stdout, name); err != nil {
			return err
		}
	}
	return nil
}
