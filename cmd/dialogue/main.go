package main

import (
	"os"

	"github.com/koscakluka/dialogue-core/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
