// Command seqcheck generates reference sequences, classifies numeric tokens
// and runs compile-and-check manifests against a pattern compiler.
//
// Usage:
//
//	seqcheck generate geometric --start 1 --step 2 --count 9
//	seqcheck classify 1 1 2 3 5
//	seqcheck run cases.yaml --compiler "python3 main.py"
//	seqcheck demo
//
// The compiler command defaults to $SEQCHECK_COMPILER; a .env file in the
// working directory is loaded first when present.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// compilerEnv names the environment variable holding the compiler command line.
const compilerEnv = "SEQCHECK_COMPILER"

func main() {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
