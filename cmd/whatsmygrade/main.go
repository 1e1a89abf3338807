// main is the entry point for the whatsmygrade CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/huangsam/whatsmygrade/cmd"
	"github.com/huangsam/whatsmygrade/schema"
)

func main() {
	if err := cmd.Execute(); err != nil {
		errColor := color.New(color.FgRed)

		var userErr *schema.UserError
		if errors.As(err, &userErr) {
			fmt.Fprintln(os.Stderr, errColor.Sprintf("error: %s", userErr.Message))
			if userErr.OffendingLine != "" {
				fmt.Fprintln(os.Stderr, errColor.Sprintf("at line: %q", userErr.OffendingLine))
			}
		} else {
			fmt.Fprintln(os.Stderr, errColor.Sprintf("error: %v", err))
		}
		os.Exit(1)
	}
}
