// Package vitecn wires Tailwind CSS and shadcn/ui into an existing Vite
// project.
//
// A run is a fixed, linear sequence of steps: select the project language,
// install dependencies, rewrite the stylesheet entry point, reconcile the
// "@/*" compiler path alias, patch or materialize the Vite config and finally
// run the shadcn initializer. The first failing step aborts the run; files
// already written are left in place.
//
// # Setup
//
//	result, err := vitecn.Setup(ctx, vitecn.Options{
//		Dir:    ".",
//		Runner: &runner.Exec{Stdout: os.Stdout, Stderr: os.Stderr},
//	})
//
// Configuration files are edited surgically: comments and unrelated keys in
// tsconfig.json survive, and a second run leaves every file byte for byte
// unchanged.
//
// # CLI Tool
//
//	go install github.com/yacobolo/vitecn/cmd/vitecn@latest
package vitecn
