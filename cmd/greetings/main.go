package main

import (
	"fmt"
	"os"
	"path/filepath"

	"walkintheforest/greeter"
	"walkintheforest/logging"
)

func main() {
	logger, err := logging.New(os.Stderr, "greetings", logging.DefaultLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	spec := greeter.DefaultSpec()
	spec.Use = filepath.Base(os.Args[0])

	os.Exit(greeter.Run(spec, os.Args[1:], os.Stdout, os.Stderr, logger))
}
