// Package trace defines the turn-state trace contract.
//
// A trace is one exported session: an ordered log of atomic transitions
// captured from a live client. Each step records the triggering event and
// the turn state immediately before and after it. Records are immutable
// once captured; this package only decodes and inspects them, it never
// constructs or repairs traces.
//
// Field names and enum values are part of the wire contract shared with
// the client-side exporter and the existing fixture corpus. They must not
// be renamed.
package trace
