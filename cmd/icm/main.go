// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"os"

	"github.com/ezrec/icm/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:]))
}
