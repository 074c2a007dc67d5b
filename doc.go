// Package seqcheck is a validation harness for the numeric sequences produced
// by a pattern-description compiler.
//
// 🚀 What is seqcheck?
//
//	A small toolkit that answers one question: "did the compiler print the
//	sequence it was supposed to?" It brings together:
//		• Reference generators: arithmetic, geometric, modulo-alternating,
//		  Fibonacci, squares, factorial values, series sums
//		• Family classifiers: fail-closed predicates over text tokens
//		• A compiler capability interface (in-process or external process)
//		• A manifest-driven harness with structured logging and a report
//
// Under the hood, everything is organized in four packages:
//
//	sequence/  — pure reference generators + DTW distance for diagnostics
//	classify/  — token parsing and family classifiers (never panic, never error)
//	compiler/  — Compiler interface, Func and Exec adapters
//	harness/   — YAML manifests, concurrent runner, reports
//
// The seqcheck command (cmd/seqcheck) exposes generate, classify, run and demo.
//
//	go install github.com/katalvlaran/seqcheck/cmd/seqcheck@latest
package seqcheck
