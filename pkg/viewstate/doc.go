// Package viewstate holds the transient UI state of one showcase page:
// whether the modal is open and at what size, which toast is showing, and
// which dropdown triggers are bound to which panels.
//
// A Controller owns that state for a single session. Every operation is
// meant to run on one logical thread (the session event loop); timers are
// routed back onto that thread through a Scheduler, so the state never needs
// to be observed half-updated.
//
// # Toast lifetime
//
// ShowToast replaces whatever toast is visible and restarts the auto-dismiss
// countdown (3 seconds by default). Only the most recent countdown can hide
// the toast: each show bumps a generation counter and an expiring timer whose
// generation no longer matches is ignored.
//
//	ctrl := viewstate.New(viewstate.WithScheduler(sched))
//	ctrl.ShowToast(viewstate.CategorySuccess, "Item moved successfully.")
//	// ... 3s later the toast hides on its own
//
// # Testing
//
// ManualScheduler gives tests a clock they advance by hand:
//
//	sched := viewstate.NewManualScheduler()
//	ctrl := viewstate.New(viewstate.WithScheduler(sched))
//	ctrl.ShowToast(viewstate.CategoryWarning, "careful")
//	sched.Advance(3 * time.Second)
//	// ctrl.Toast().Show == false
package viewstate
