// Package guilog is a console logging library for graphical applications.
//
// Processes built without an attached console (GUI subsystems, service
// hosts) normally have nowhere to print diagnostics. guilog acquires a
// console on demand the first time anything is logged: if the process
// already has one it is used as-is, otherwise a console is allocated,
// standard output is redirected into it, and virtual terminal processing is
// enabled so output renders in color. Teardown releases exactly the
// resources guilog created and nothing it merely inherited.
//
// Messages are brace-placeholder templates. Each {} consumes the next
// argument in order:
//
//	guilog.SetMinimumLevel(core.WarnLevel)
//	guilog.Fail("device {} returned {}", name, status)
//
// Every emitted line is tagged [APP], timestamped with local wall-clock
// time, and colored by severity (trace, info, warn, fail). When a failed
// system call has left an error code pending, the code's human-readable
// translation follows on its own [SYS] line and is shown once.
//
// Building with the guilog_release tag turns every operation into a no-op;
// no console is ever touched in such builds.
package guilog
