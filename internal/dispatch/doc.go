// Package dispatch executes selected hooks sequentially and applies
// trigger-direction semantics.
//
// Each hook moves Pending → Running → Succeeded|Failed. Execution is
// single-threaded: hooks never overlap, and a slow hook delays but never
// reorders the queue. Exit code 0 is success; anything else, a timeout, or
// a command that cannot start is a failure.
//
// The direction of the event's trigger decides what a failure means:
//
//   - before-class (a gated event with trigger "before"): the failure blocks
//     the guarded action and the rest of the batch is not executed.
//   - after-class (everything else): the failure is recorded and the next
//     hook runs; the guarded action already happened.
//
// Command execution sits behind the Runner interface so tests and dry runs
// can swap out the subprocess strategy.
package dispatch
