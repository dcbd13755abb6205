package main

import (
	"errors"
	"log"
	"os"

	"github.com/HicaroD/clite/internal/diagnostics"
)

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	// diagnostics were already printed
	if errors.Is(err, diagnostics.COMPILER_ERROR_FOUND) {
		os.Exit(1)
	}
	log.Fatal(err)
}
