package main

import (
	"os"

	"github.com/arthur-debert/icontheme/cmd/icontheme"
)

func main() {
	os.Exit(icontheme.Run(os.Args[1:], os.Stdout, os.Stderr))
}
