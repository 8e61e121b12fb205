package workflow

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// CloudProvider identifies the cloud a job deploys to. The zero value means
// no cloud provider.
type CloudProvider string

const (
	CloudNone  CloudProvider = ""
	CloudAWS   CloudProvider = "AWS"
	CloudAzure CloudProvider = "Azure"
	CloudGCP   CloudProvider = "GCP"
)

// CloudProviders holds the selectable cloud providers (`CloudNone` excluded).
var CloudProviders = [...]CloudProvider{CloudAWS, CloudAzure, CloudGCP}

// UnknownCloudProviderErr is returned when a name isn't one of
// `CloudProviders`.
type UnknownCloudProviderErr struct {
	Name string
}

func (err *UnknownCloudProviderErr) Error() string {
	return fmt.Sprintf("unknown cloud provider: `%s`", err.Name)
}

// ParseCloudProvider looks up the cloud provider named `s`. An empty string
// parses as `CloudNone`.
func ParseCloudProvider(s string) (CloudProvider, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return CloudNone, nil
	}
	for _, c := range CloudProviders {
		if string(c) == s {
			return c, nil
		}
	}
	return CloudNone, &UnknownCloudProviderErr{Name: s}
}

// UnmarshalYAML implements `yaml.Unmarshaler`.
func (c *CloudProvider) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseCloudProvider(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// RunnerImages holds the runner image labels offered for `JobSpec.RunsOn`.
var RunnerImages = [...]string{
	"ubuntu-latest",
	"windows-latest",
	"macos-latest",
}

// JobSpec describes one runner's job.
type JobSpec struct {
	// Name is the job id. It is used verbatim as a YAML mapping key, so it
	// should not contain spaces or colons.
	Name string `yaml:"name"`

	// RunsOn is the runner image label (e.g., `ubuntu-latest`).
	RunsOn string `yaml:"runsOn"`

	// Cloud is the cloud provider exposed to the job as `CLOUD_PROVIDER`.
	// Optional.
	Cloud CloudProvider `yaml:"cloud"`

	// AccessKeySecret names the repository secret holding the cloud access
	// key. Optional.
	AccessKeySecret string `yaml:"accessKeySecret"`

	// SecretKeySecret names the repository secret holding the cloud secret
	// key. Optional.
	SecretKeySecret string `yaml:"secretKeySecret"`

	// Triggers restricts the job to these events. Empty means the job runs
	// for every workflow trigger.
	Triggers []Trigger `yaml:"triggers"`
}

// HasEnv reports whether any of the job's environment fields are set.
func (job *JobSpec) HasEnv() bool {
	return job.Cloud != CloudNone ||
		job.AccessKeySecret != "" ||
		job.SecretKeySecret != ""
}

func (job JobSpec) clone() JobSpec {
	if job.Triggers != nil {
		job.Triggers = append([]Trigger(nil), job.Triggers...)
	}
	return job
}
