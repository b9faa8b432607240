// Package tracker keeps a client-side snapshot of the job collection in sync
// with the server and derives filtered views and statistics from it.
//
// A Cache never patches its snapshot locally. Every successful mutation is
// followed by a full re-fetch, and whichever fetch completes last defines the
// snapshot. Filter and Aggregate are pure helpers that work on any slice of
// jobs, usually Snapshot().Jobs.
package tracker
