package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func init() { color.NoColor = true }

const answersYAML = `triggers: [push]
jobs:
  - name: build
    runsOn: macos-latest
    cloud: AWS
    accessKeySecret: AWS_KEY
    triggers: [release]
`

const extendedYAML = `name: Generated Workflow
on:
  push:
  release:
jobs:
  build:
    runs-on: macos-latest
    env:
      CLOUD_PROVIDER: AWS
      ACCESS_KEY: ${{ secrets.AWS_KEY }}
    if: github.event_name == 'release'
    steps:
      - uses: actions/checkout@v3
`

const simpleYAML = `name: Generated Workflow
on:
  push:
  release:
jobs:
  build:
    runs-on: ubuntu-latest
    if: github.event_name == 'release'
    steps:
      - uses: actions/checkout@v3
`

type run struct {
	stdout bytes.Buffer
	stderr bytes.Buffer
	err    error
}

// runApp runs the app with a missing config file so only defaults and
// `args` apply.
func runApp(t *testing.T, stdin string, args ...string) *run {
	t.Helper()
	clearEnv(t)

	var r run
	cmds := commands{
		stdin:       strings.NewReader(stdin),
		stdout:      &r.stdout,
		stderr:      &r.stderr,
		interactive: func() bool { return false },
	}
	r.err = cmds.app().Run(append(
		[]string{
			appName,
			"--config",
			filepath.Join(t.TempDir(), "missing.yaml"),
		},
		args...,
	))
	return &r
}

func TestGenerate(t *testing.T) {
	answers := writeFile(t, "answers.yaml", answersYAML)
	for _, testCase := range []struct {
		name   string
		stdin  string
		args   []string
		wanted string
	}{
		{
			name:   "extended",
			args:   []string{"generate", "--answers", answers},
			wanted: extendedYAML,
		},
		{
			name: "simple",
			args: []string{
				"--variant",
				"simple",
				"generate",
				"--answers",
				answers,
			},
			wanted: simpleYAML,
		},
		{
			name:   "stdin",
			stdin:  answersYAML,
			args:   []string{"generate", "-a", "-"},
			wanted: extendedYAML,
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			r := runApp(t, testCase.stdin, testCase.args...)
			if r.err != nil {
				t.Fatalf("unexpected err: %v", r.err)
			}
			if found := r.stdout.String(); found != testCase.wanted {
				t.Fatalf("wanted:\n%s\nfound:\n%s", testCase.wanted, found)
			}
		})
	}
}

func TestGenerate_IgnoresUnprefixedEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "trace")
	t.Setenv("VARIANT", "simple")
	t.Setenv("CHECKOUT", "evil/checkout@v0")

	answers := writeFile(t, "answers.yaml", answersYAML)
	r := runApp(t, "", "generate", "--answers", answers)
	if r.err != nil {
		t.Fatalf("unexpected err: %v", r.err)
	}
	if found := r.stdout.String(); found != extendedYAML {
		t.Fatalf("wanted:\n%s\nfound:\n%s", extendedYAML, found)
	}
}

func TestGenerate_Output(t *testing.T) {
	answers := writeFile(t, "answers.yaml", answersYAML)
	location := filepath.Join(t.TempDir(), "ci.yml")

	r := runApp(t, "", "generate", "--answers", answers, "-o", location)
	if r.err != nil {
		t.Fatalf("unexpected err: %v", r.err)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != extendedYAML {
		t.Fatalf("wanted:\n%s\nfound:\n%s", extendedYAML, data)
	}
	if wanted := "Saved workflow to " + location; !strings.Contains(
		r.stdout.String(),
		wanted,
	) {
		t.Fatalf("wanted `%s`; found `%s`", wanted, r.stdout.String())
	}
}

func TestGenerate_Errors(t *testing.T) {
	for _, testCase := range []struct {
		name    string
		answers string
		args    []string
	}{
		{
			name:    "unknown-trigger",
			answers: "triggers: [nightly]\n",
		},
		{
			name:    "bad-extension",
			answers: answersYAML,
			args:    []string{"--output", "ci.json"},
		},
		{
			name:    "missing-directory",
			answers: answersYAML,
			args: []string{
				"--output",
				filepath.Join("does", "not", "exist", "ci.yml"),
			},
		},
	} {
		t.Run(testCase.name, func(t *testing.T) {
			answers := writeFile(t, "answers.yaml", testCase.answers)
			r := runApp(t, "", append(
				[]string{"generate", "--answers", answers},
				testCase.args...,
			)...)
			if r.err == nil {
				t.Fatalf("wanted err; found nil; stdout:\n%s", r.stdout.String())
			}
		})
	}
}

func TestGenerate_MissingAnswersFile(t *testing.T) {
	r := runApp(
		t,
		"",
		"generate",
		"--answers",
		filepath.Join(t.TempDir(), "missing.yaml"),
	)
	if !errors.Is(r.err, os.ErrNotExist) {
		t.Fatalf("wanted `%v`; found `%v`", os.ErrNotExist, r.err)
	}
}

func TestGenerate_UnknownVariant(t *testing.T) {
	answers := writeFile(t, "answers.yaml", answersYAML)
	r := runApp(t, "", "--variant", "fancy", "generate", "--answers", answers)
	if r.err == nil {
		t.Fatal("wanted err; found nil")
	}
}

func TestWizard_NotInteractive(t *testing.T) {
	for _, args := range [][]string{nil, {"wizard"}} {
		r := runApp(t, "", args...)
		if !errors.Is(r.err, ErrNotInteractive) {
			t.Fatalf(
				"args %v: wanted `%v`; found `%v`",
				args,
				ErrNotInteractive,
				r.err,
			)
		}
	}
}

func TestTriggers(t *testing.T) {
	r := runApp(t, "", "triggers")
	if r.err != nil {
		t.Fatalf("unexpected err: %v", r.err)
	}
	wanted := "push\npull_request\nworkflow_dispatch\nschedule\nissues\n" +
		"release\n"
	if found := r.stdout.String(); found != wanted {
		t.Fatalf("wanted:\n%s\nfound:\n%s", wanted, found)
	}
}
