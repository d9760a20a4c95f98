// Entry point for waitlist-sim; all CLI handling lives in package cmd.

package main

import (
	"github.com/inference-sim/waitlist-sim/cmd"
)

func main() {
	cmd.Execute()
}
