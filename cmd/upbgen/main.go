package main

import (
	"os"

	"github.com/ehsaniara/upbgen/internal/upbgen/cli"
)

func main() {
	os.Exit(cli.Execute())
}
