// main is the entry point for the freqseed CLI.
package main

import (
	"github.com/huangsam/freqseed/cmd"
	"github.com/huangsam/freqseed/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Command failed", err)
	}
}
