package workflow

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Answers is the document form of the wizard's answers, used to generate a
// workflow without prompting.
type Answers struct {
	Triggers []Trigger `yaml:"triggers"`
	Jobs     []JobSpec `yaml:"jobs"`
}

// DecodeAnswers decodes an `Answers` document from `r` and builds the
// corresponding `WorkflowSpec`. Unknown fields, triggers and cloud providers
// are rejected.
func DecodeAnswers(r io.Reader) (*WorkflowSpec, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var answers Answers
	if err := decoder.Decode(&answers); err != nil {
		if errors.Is(err, io.EOF) {
			return NewBuilder().Build(), nil
		}
		return nil, fmt.Errorf("decoding answers: %w", err)
	}
	return answers.Build(), nil
}

// Build assembles the answers into a `WorkflowSpec`. String fields are
// trimmed.
func (answers *Answers) Build() *WorkflowSpec {
	b := NewBuilder().WithTrigger(answers.Triggers...)
	for _, job := range answers.Jobs {
		job.Name = strings.TrimSpace(job.Name)
		job.RunsOn = strings.TrimSpace(job.RunsOn)
		job.AccessKeySecret = strings.TrimSpace(job.AccessKeySecret)
		job.SecretKeySecret = strings.TrimSpace(job.SecretKeySecret)
		b.WithJob(job)
	}
	return b.Build()
}
