// Package exec provides utilities for executing external commands with beautiful UX.
//
// Executor runs system commands with context support and streaming output,
// plus an optional spinner for longer operations. GenericCommand offers a
// fluent builder on top of an Executor:
//
//	executor := exec.NewExecutor(nil)
//	err := exec.NewGenericCommand(executor, "gofmt").
//		WithArgs("-w", "tests/out_test.go").
//		Run(ctx)
//
// Cancelling the context kills the running process. Output streams to the
// executor's writers as the command produces it.
package exec
