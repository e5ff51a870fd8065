// Package server hosts the showcase page over HTTP and drives each open page
// through a WebSocket session.
//
// Every session owns one viewstate.Controller. Client actions and toast
// timer expiries both run on the session's event loop, so the controller is
// only ever touched from a single goroutine. When the controller reports a
// change, the session re-renders the affected slot and sends it as a patch.
//
// # Protocol
//
// Messages are JSON text frames.
//
//	client → server  {"type":"action","action":"modal.open","args":["small"]}
//	server → client  {"type":"hello","session":"<id>","variant":"rich"}
//	server → client  {"type":"patch","slot":"toast-slot","html":"<div ...>"}
//	server → client  {"type":"error","code":"E142","category":"validation","message":"..."}
//
// Errors never close the session.
package server
