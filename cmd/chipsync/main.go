package main

import (
	"github.com/goldengate-rescue/chipsync/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
