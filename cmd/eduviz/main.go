package main

import (
	"os"

	"github.com/yungbote/eduviz/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout); err != nil {
		os.Exit(1)
	}
}
