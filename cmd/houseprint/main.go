// Command houseprint browses the property record list and prints sheets.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-houseprint/pkg/config"
)

const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	return execute(newApp(stdout, stderr), args)
}

func execute(a *app, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	return report(cmd.Execute(), a.errOut)
}

// report maps an error onto an exit code. The missing endpoint message is
// printed verbatim, without the wrapped error chain.
func report(err error, stderr io.Writer) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrMissingEndpoint):
		fmt.Fprintln(stderr, config.MissingEndpointMessage)
		return exitConfig
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitError
	}
}
