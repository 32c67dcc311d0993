// Command validacion validates RFCs and email addresses in batch.
//
//	validacion rfc VACE611210MQ9 ABC680524P73
//	cat rfcs.txt | validacion rfc --reject-generic --json
//	validacion email --strict user@example.com
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errInvalidInput) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
