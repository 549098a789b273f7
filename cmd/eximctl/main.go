package main

import (
	"os"

	"github.com/eximdesk/eximdesk-api/cmd/eximctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
