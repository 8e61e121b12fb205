package wizard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/weberc2/actionswizard/pkg/logger"
	"github.com/weberc2/actionswizard/pkg/output"
	"github.com/weberc2/actionswizard/pkg/workflow"
)

const (
	DefaultMaxRunners = 10
	DefaultLocation   = "workflow.yml"

	choiceSave = "Save YAML"
	choiceQuit = "Quit"
	cloudNone  = "None"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
)

// Saver persists a rendered workflow document. `output.Writer` implements it.
type Saver interface {
	Save(ctx context.Context, location string, data []byte) error
}

// Wizard collects a workflow's configuration screen by screen and saves the
// rendered document.
type Wizard struct {
	Prompter Prompter
	Saver    Saver
	Renderer workflow.Renderer

	// Out receives messages for the user.
	Out io.Writer

	// MaxRunners bounds the runner count. Defaults to `DefaultMaxRunners`.
	MaxRunners int

	// DefaultLocation is offered when asking where to save. Defaults to
	// `DefaultLocation`.
	DefaultLocation string
}

// Result is the outcome of a wizard session.
type Result struct {
	Spec *workflow.WorkflowSpec

	// Location is where the workflow was saved. Empty if the user quit
	// without saving.
	Location string
}

// Run runs the wizard to completion. A failed or canceled save returns to
// the summary with the collected configuration intact; any other prompt
// failure (including a cancel outside the save prompt) ends the session with
// an error.
func (w *Wizard) Run(ctx context.Context) (*Result, error) {
	count, err := w.runnerCount()
	if err != nil {
		return nil, fmt.Errorf("running wizard: %w", err)
	}

	globals, err := w.triggers("Select workflow triggers:")
	if err != nil {
		return nil, fmt.Errorf("running wizard: %w", err)
	}

	b := workflow.NewBuilder().WithTrigger(globals...)
	for i := 1; i <= count; i++ {
		job, err := w.job(i, count)
		if err != nil {
			return nil, fmt.Errorf("running wizard: runner %d: %w", i, err)
		}
		b.WithJob(job)
		logger.Get(ctx).Debug(
			"collected job",
			"runner", i,
			"job", job.Name,
			"collected", b.Len(),
		)
	}

	result, err := w.summary(ctx, b.Build())
	if err != nil {
		return nil, fmt.Errorf("running wizard: %w", err)
	}
	return result, nil
}

func (w *Wizard) maxRunners() int {
	if w.MaxRunners < 1 {
		return DefaultMaxRunners
	}
	return w.MaxRunners
}

func (w *Wizard) runnerCount() (int, error) {
	limit := w.maxRunners()
	answer, err := w.Prompter.Input(
		fmt.Sprintf("Select number of runners (1-%d):", limit),
		"1",
		func(s string) error {
			_, err := parseRunnerCount(s, limit)
			return err
		},
	)
	if err != nil {
		return 0, err
	}
	return parseRunnerCount(answer, limit)
}

func parseRunnerCount(s string, limit int) (int, error) {
	count, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || count < 1 || count > limit {
		return 0, fmt.Errorf(
			"invalid runner count `%s`: wanted a number from 1 to %d",
			s,
			limit,
		)
	}
	return count, nil
}

func (w *Wizard) triggers(message string) ([]workflow.Trigger, error) {
	names, err := w.Prompter.MultiSelect(
		message,
		workflow.TriggerNames(workflow.AllTriggers[:]),
	)
	if err != nil {
		return nil, err
	}
	return workflow.ParseTriggers(names)
}

func (w *Wizard) job(index, total int) (workflow.JobSpec, error) {
	var job workflow.JobSpec
	fmt.Fprintf(w.Out, "Runner %d of %d\n", index, total)

	name, err := w.Prompter.Input(
		"Job name:",
		fmt.Sprintf("runner%d", index),
		requireValue("job name"),
	)
	if err != nil {
		return job, err
	}
	job.Name = strings.TrimSpace(name)

	// the simple variant renders neither runner images nor environments
	if w.Renderer.Variant == workflow.VariantExtended {
		if job.RunsOn, err = w.Prompter.Select(
			"Runs on:",
			workflow.RunnerImages[:],
			workflow.RunnerImages[0],
		); err != nil {
			return job, err
		}

		if job.Cloud, err = w.cloud(); err != nil {
			return job, err
		}

		if job.AccessKeySecret, err = w.secretName(
			"Access key secret name:",
		); err != nil {
			return job, err
		}

		if job.SecretKeySecret, err = w.secretName(
			"Secret key secret name:",
		); err != nil {
			return job, err
		}
	}

	if job.Triggers, err = w.triggers("Triggers:"); err != nil {
		return job, err
	}
	return job, nil
}

func (w *Wizard) cloud() (workflow.CloudProvider, error) {
	options := make([]string, 0, len(workflow.CloudProviders)+1)
	for _, c := range workflow.CloudProviders {
		options = append(options, string(c))
	}
	options = append(options, cloudNone)

	answer, err := w.Prompter.Select(
		"Cloud provider:",
		options,
		string(workflow.CloudAWS),
	)
	if err != nil {
		return workflow.CloudNone, err
	}
	if answer == cloudNone {
		return workflow.CloudNone, nil
	}
	return workflow.ParseCloudProvider(answer)
}

func (w *Wizard) secretName(message string) (string, error) {
	answer, err := w.Prompter.Input(message, "", nil)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (w *Wizard) summary(
	ctx context.Context,
	spec *workflow.WorkflowSpec,
) (*Result, error) {
	defaultLocation := w.DefaultLocation
	if defaultLocation == "" {
		defaultLocation = DefaultLocation
	}

	for {
		choice, err := w.Prompter.Select(
			"Configuration complete.",
			[]string{choiceSave, choiceQuit},
			choiceSave,
		)
		if err != nil {
			return nil, err
		}
		if choice == choiceQuit {
			return &Result{Spec: spec}, nil
		}

		location, err := w.Prompter.Input(
			"Save workflow to:",
			defaultLocation,
			func(s string) error {
				_, err := output.ParseLocation(s)
				return err
			},
		)
		if errors.Is(err, ErrCanceled) {
			// back to the summary
			continue
		}
		if err != nil {
			return nil, err
		}
		location = strings.TrimSpace(location)

		if err := w.Saver.Save(
			ctx,
			location,
			[]byte(w.Renderer.Render(spec)),
		); err != nil {
			logger.Get(ctx).Error(
				"saving workflow",
				"err", err.Error(),
				"location", location,
			)
			errorColor.Fprintf(w.Out, "Failed to save file: %v\n", err)
			defaultLocation = location
			continue
		}

		successColor.Fprintf(w.Out, "Saved workflow to %s\n", location)
		return &Result{Spec: spec, Location: location}, nil
	}
}

func requireValue(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
