// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Command hostcheck validates hostnames from arguments or a file.
//
//	hostcheck a.good.example -initial.hyphen.example
//	hostcheck --allow-underscore --input names.txt --xlsx report.xlsx
//
// It prints one line per candidate and exits with status 1 when any
// candidate is invalid, or 2 on usage and I/O errors.
package main

import (
	"errors"
	"os"
)

func main() {
	logger := newLogger(os.Stderr)
	if err := newRootCmd(logger).Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		logger.Error("hostcheck failed", "err", err)
		os.Exit(2)
	}
}
