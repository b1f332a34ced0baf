// Package handling records what physically happened to a cargo.
//
// A HandlingEvent is registered against a cargo's TrackingID at a location. The
// HandlingHistory of a cargo is the ordered list of its events. Events are only
// ever appended; deriving a transport status from the history is left to the
// caller.
package handling
