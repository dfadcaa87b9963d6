// Package shutdown provides a cooperative combinator for graceful shutdown
// of concurrent workloads. A Combinator owns a set of shutdown triggers,
// a set of in-flight tasks and one cleanup action; once any trigger or task
// completes, it runs the cleanup action and then drains the remaining tasks.
// The package includes channel/signal adapters for building triggers, a
// goroutine-backed task adapter with error aggregation, and a minimal
// drive loop for running a Pollable to completion.
package shutdown
