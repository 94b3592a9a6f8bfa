// Package ratelog gates a stream of log messages so repeated lines do not
// flood the output. The first occurrence of any message is emitted
// immediately; repeats are suppressed and accumulated until a configured
// limit is crossed, at which point a single summary line reports how many
// times the message repeated and over how long:
//
//	Message: "connection refused" repeat for 5 times in the past 12s
//
// A tracker is created with either a count-based or a window-based limit:
//
//	rl := ratelog.New(ratelog.Count(5))
//	rl.Log("connection refused") // printed immediately
//	rl.Log("connection refused") // suppressed
//	...                          // 5th silent repeat prints the summary
//
//	rl = ratelog.New(ratelog.Window(30 * time.Second))
//
// Logging a different message prints it immediately and silently discards
// the previous key's partial accumulation.
//
// Emission and time access are injected capabilities: WithSink replaces
// the default stdout destination (see the sink package for the capture and
// redis implementations) and WithClock replaces the system clock (see
// clock.Manual for deterministic tests). The global package holds an
// explicit process-wide tracker for applications that want one.
package ratelog
