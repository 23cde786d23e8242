// Package resume models a single fallible step as an always-ready resume
// point. The abstraction looks like a suspension (Ready, OnReady, Poll)
// but resolves immediately and synchronously in every case; it is how the
// seq coordinator consumes one Result at a time without the caller writing
// a conditional after every step.
//
// A failed Point never yields a value: Poll reports not-ok and the
// original error stays available via Abort, untouched, for the coordinator
// to surface as the chain's outcome.
package resume
