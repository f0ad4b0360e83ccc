package main

import (
	"os"

	"github.com/wat-aro/wjson/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
