package main

import (
	"os"

	"github.com/anans9/ai-commit/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
