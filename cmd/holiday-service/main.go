package main

import (
	"os"

	"github.com/tessdev/holiday-service/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
