package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/kelseyhightower/envconfig"
	"github.com/weberc2/actionswizard/pkg/logger"
	"github.com/weberc2/actionswizard/pkg/wizard"
	"github.com/weberc2/actionswizard/pkg/workflow"
	"gopkg.in/yaml.v2"
)

const (
	envVarPrefix = "ACTIONSWIZARD"
	appName      = "actionswizard"
)

type Config struct {
	WorkflowName  string           `envconfig:"ACTIONSWIZARD_WORKFLOW_NAME"   yaml:"workflowName"`
	Variant       workflow.Variant `envconfig:"ACTIONSWIZARD_VARIANT"         yaml:"variant"`
	DefaultRunsOn string           `envconfig:"ACTIONSWIZARD_DEFAULT_RUNS_ON" yaml:"defaultRunsOn"`
	Checkout      string           `envconfig:"ACTIONSWIZARD_CHECKOUT"        yaml:"checkout"`
	OutputDir     string           `envconfig:"ACTIONSWIZARD_OUTPUT_DIR"      yaml:"outputDir"`
	MaxRunners    int              `envconfig:"ACTIONSWIZARD_MAX_RUNNERS"     yaml:"maxRunners"`
	AWSRegion     string           `envconfig:"ACTIONSWIZARD_AWS_REGION"      yaml:"awsRegion"`
	LogLevel      string           `envconfig:"ACTIONSWIZARD_LOG_LEVEL"       yaml:"logLevel"`
}

// DefaultConfig returns the configuration used where neither the config file
// nor the environment say otherwise.
func DefaultConfig() Config {
	return Config{
		WorkflowName:  workflow.DefaultName,
		Variant:       workflow.VariantExtended,
		DefaultRunsOn: workflow.DefaultRunsOn,
		Checkout:      workflow.DefaultCheckout,
		OutputDir:     filepath.Join(".github", "workflows"),
		MaxRunners:    wizard.DefaultMaxRunners,
		LogLevel:      "warn",
	}
}

// LoadConfig loads the config file at `configFile` (or the default location
// if empty) over `DefaultConfig()` and then applies environment variables. A
// missing config file is not an error.
func LoadConfig(configFile string) (*Config, error) {
	if configFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("locating config file: %w", err)
		}
		configFile = filepath.Join(home, ".config", appName+".yaml")
	}

	c := DefaultConfig()
	data, err := os.ReadFile(configFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	} else if err := yaml.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("unmarshaling config file: %w", err)
	}

	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("parsing environment variables: %w", err)
	}

	return &c, nil
}

func (c *Config) Validate() error {
	if y, e := func() (string, string) {
		if c.WorkflowName == "" {
			return "workflowName", "WORKFLOW_NAME"
		}
		if c.DefaultRunsOn == "" {
			return "defaultRunsOn", "DEFAULT_RUNS_ON"
		}
		if c.Checkout == "" {
			return "checkout", "CHECKOUT"
		}
		if c.MaxRunners < 1 {
			return "maxRunners", "MAX_RUNNERS"
		}
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return "logLevel", "LOG_LEVEL"
		}
		return "", ""
	}(); y != "" {
		return fmt.Errorf(
			"missing or invalid configuration: %s / %s_%s",
			y,
			envVarPrefix,
			e,
		)
	}
	return nil
}

// Renderer returns the workflow renderer the configuration describes.
func (c *Config) Renderer() workflow.Renderer {
	return workflow.Renderer{
		Variant:       c.Variant,
		Name:          c.WorkflowName,
		DefaultRunsOn: c.DefaultRunsOn,
		Checkout:      c.Checkout,
	}
}

// DefaultLocation is the save location offered to the user: a file in the
// output directory named after the workflow, e.g.,
// `.github/workflows/generated-workflow.yml`. The output directory may be an
// `s3://bucket/prefix` location.
func (c *Config) DefaultLocation() string {
	name := slug.Make(c.WorkflowName)
	if name == "" {
		name = "workflow"
	}
	file := name + ".yml"

	if c.OutputDir == "" {
		return file
	}
	if strings.HasPrefix(c.OutputDir, "s3://") {
		return strings.TrimSuffix(c.OutputDir, "/") + "/" + file
	}
	return filepath.Join(c.OutputDir, file)
}
