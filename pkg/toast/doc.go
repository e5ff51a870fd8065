// Package toast provides typed helpers for showing toast notifications
// through anything that owns a toast slot, usually a session's
// viewstate.Controller.
//
//	toast.Success(ctrl, "Item moved successfully.")
//	toast.Danger(ctrl, "Item has been deleted.")
//
// Each call replaces the visible toast and restarts its auto-dismiss
// countdown.
package toast
