package main

import (
	"os"

	"github.com/savortool/savor/pkg/cli"
)

func main() {
	os.Exit(cli.Run(os.Args))
}
