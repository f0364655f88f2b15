package main

import (
	"os"

	cmd "code.vegaprotocol.io/keybot/cmd/keybot/commands"
)

func main() {
	writer := &cmd.Writer{
		Out: os.Stdout,
		Err: os.Stderr,
	}
	cmd.Execute(writer)
}
