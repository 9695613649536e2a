// Package spacer relays lines from an input stream to an output stream and
// inserts a spacer line whenever the input has been idle for a configured
// threshold.
//
// Two goroutines share one State and one Sink:
//   - Relay reads lines, records their arrival, and writes them through.
//   - Clock watches the state and writes a spacer once the last line is
//     older than the threshold and no spacer has followed it yet.
//
// The Sink serializes whole writes, so a spacer never splits a line, and a
// spacer is committed to the State under the Sink lock, so a line that
// arrives while the spacer is being rendered suppresses it instead of being
// printed before a stale spacer.
package spacer
