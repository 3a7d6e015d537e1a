// Shiftbook - a scheduling book for healthcare staffing.
package main

import (
	"os"

	"github.com/rostrahealth/shiftbook/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
