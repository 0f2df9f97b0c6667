package main

import (
	"os"
)

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
