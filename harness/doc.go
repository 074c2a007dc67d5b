// Package harness orchestrates end-to-end checks of a pattern compiler.
//
// A Case pairs pattern source text with what its output should look like:
// a family (checked with package classify) and/or an exact reference sequence
// (generated with package sequence). The Runner compiles every case through a
// compiler.Compiler, evaluates the output and collects a Report.
//
// ⚙️ Usage:
//
//	m, err := harness.LoadManifestFile("cases.yaml")
//	r := harness.NewRunner(compiler.ParseCommandLine("python3 main.py"),
//	  harness.WithLogger(logger), harness.WithConcurrency(4))
//	rep, err := r.Run(ctx, m.Cases)
//	rep.Write(os.Stdout)
//
// Manifest format (YAML, unknown fields rejected):
//
//	cases:
//	  - name: fibonacci
//	    file: example1_fibonacci.ps   # or inline `source: |`
//	    family: fibonacci
//	  - name: doubling
//	    source: "..."
//	    family: geometric
//	    reference: {kind: geometric, start: 1, step: 2, count: 9}
//
// Compiler failures are reported as failed cases; nothing is retried.
package harness
