package main

import (
	"os"

	"github.com/MirrorChyan/macdl/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
