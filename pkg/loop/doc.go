// Package loop provides the single event loop every handler of the client runs
// on. Tasks posted to a Loop execute one at a time, in posting order, each to
// completion. Blocking work (dials, reads, HTTP calls) stays on its own
// goroutine and posts its continuation back with Post.
//
// Timers are created through AfterFunc and fire on the loop; every timer
// returns a Handle that cancels it.
package loop
