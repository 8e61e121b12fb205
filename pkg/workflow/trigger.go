package workflow

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Trigger is a GitHub Actions event name that causes a workflow or job to
// run.
type Trigger string

const (
	TriggerPush             Trigger = "push"
	TriggerPullRequest      Trigger = "pull_request"
	TriggerWorkflowDispatch Trigger = "workflow_dispatch"
	TriggerSchedule         Trigger = "schedule"
	TriggerIssues           Trigger = "issues"
	TriggerRelease          Trigger = "release"
)

// AllTriggers holds every supported trigger in the order they are offered to
// the user.
var AllTriggers = [...]Trigger{
	TriggerPush,
	TriggerPullRequest,
	TriggerWorkflowDispatch,
	TriggerSchedule,
	TriggerIssues,
	TriggerRelease,
}

// UnknownTriggerErr is returned when a name isn't one of `AllTriggers`.
type UnknownTriggerErr struct {
	Name string
}

func (err *UnknownTriggerErr) Error() string {
	return fmt.Sprintf("unknown trigger: `%s`", err.Name)
}

// ParseTrigger looks up the trigger for the event name `s`.
func ParseTrigger(s string) (Trigger, error) {
	s = strings.TrimSpace(s)
	for _, t := range AllTriggers {
		if string(t) == s {
			return t, nil
		}
	}
	return "", &UnknownTriggerErr{Name: s}
}

// ParseTriggers parses each of `names` in order.
func ParseTriggers(names []string) ([]Trigger, error) {
	out := make([]Trigger, 0, len(names))
	for _, name := range names {
		t, err := ParseTrigger(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// TriggerNames returns the event names of `triggers`.
func TriggerNames(triggers []Trigger) []string {
	out := make([]string, len(triggers))
	for i, t := range triggers {
		out[i] = string(t)
	}
	return out
}

// UnmarshalYAML implements `yaml.Unmarshaler`, rejecting unknown event
// names.
func (t *Trigger) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseTrigger(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// appendUnique appends each of `triggers` not already in `set`, preserving
// first-seen order.
func appendUnique(set []Trigger, triggers ...Trigger) []Trigger {
outer:
	for _, t := range triggers {
		for _, existing := range set {
			if existing == t {
				continue outer
			}
		}
		set = append(set, t)
	}
	return set
}
