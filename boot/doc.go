// Package boot implements the bootstrap sequence for ahead-of-time
// compiled guest programs.
//
// The sequence is strictly linear and runs once per process: initialize the
// runtime from its image, clear stale error state, forward the process
// arguments, resolve the well-known arguments binding, invoke the compiled
// entry function, and surface its integer status as the exit code. The
// package holds no state and makes no decisions of its own; it only
// sequences calls into the runtime collaborator.
package boot
