package main

import (
	"os"

	"github.com/dshills/sqlformat/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
