package main

import (
	"os"

	"github.com/billboardhub/bbadmin/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
