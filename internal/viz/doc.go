// Package viz renders finished sample series in the terminal.
//
// Output is always derived from a [dynamo.Result]; nothing here feeds back
// into the simulation. [Console] is the exception in timing only: it is an
// observer printing one line per sample while the run progresses.
package viz
