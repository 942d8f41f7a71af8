package main

import "github.com/torxlabs/go-treasury/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
