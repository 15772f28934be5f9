package main

import "github.com/katalvlaran/tessera/cmd/tessera/cmd"

func main() {
	cmd.Execute()
}
