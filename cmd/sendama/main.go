// @focus: #cmd { sendama }
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/sendama/core"
)

var rootCmd = &cobra.Command{
	Use:           "sendama",
	Short:         "Terminal game editor",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process status out of a command
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func main() {
	// Terminal is reset before the trace is printed
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		code := 1
		if ee, ok := err.(*exitError); ok {
			code = ee.code
		}
		if err.Error() != "" {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(code)
	}
}
