package main

import (
	"os"

	"github.com/labmath/labcms/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
