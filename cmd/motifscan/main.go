package main

import (
	"os"

	"motifscan/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
