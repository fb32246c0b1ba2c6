package main

import (
	"os"

	"github.com/computerscienceiscool/minigrep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
