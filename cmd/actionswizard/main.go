// The repo's own CI workflow is generated with this tool.
//go:generate go run . --config ../../.github/actionswizard.yaml generate --answers ../../.github/workflows/answers.yaml --output ../../.github/workflows/ci.yml

package main

import (
	"log"
	"os"

	"golang.org/x/term"
)

func main() {
	cmds := commands{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	if err := cmds.app().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
