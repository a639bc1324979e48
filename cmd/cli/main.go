package main

import "github.com/temponet/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
