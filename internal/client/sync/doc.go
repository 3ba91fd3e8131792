// Package sync implements the Sync Engine, the only component allowed to
// reconcile the Local Mirror with the authoritative backend.
//
// Every mutation follows the write-behind shape: it is applied to the Local
// Mirror synchronously and unconditionally, then attempted against the
// remote exactly once. A remote failure is logged and swallowed — the local
// copy becomes the sole record of truth until the next successful read.
//
// Every read follows the read-and-reconcile shape: the local snapshot is
// merged with the remote result (a remote record wins wholesale over a
// local record sharing its id; local-only records are appended), the merged
// snapshot is persisted, and the merged view is returned. When the remote
// is unreachable the local snapshot is returned as-is.
//
// The merge key is id equality and nothing else. There is no timestamp
// comparison and no field-level merge, so concurrent edits to the same id
// from two offline sources are unrecoverable: the remote copy silently wins.
package sync
