package viewstate

import (
	"errors"
	"testing"
	"time"
)

type recorder struct {
	changes []Change
}

func (r *recorder) record(c Change) { r.changes = append(r.changes, c) }

func (r *recorder) count(kind ChangeKind, reason Reason) int {
	n := 0
	for _, c := range r.changes {
		if c.Kind == kind && c.Reason == reason {
			n++
		}
	}
	return n
}

func newTestController(opts ...Option) (*Controller, *ManualScheduler, *recorder) {
	sched := NewManualScheduler()
	rec := &recorder{}
	base := []Option{WithScheduler(sched), WithOnChange(rec.record)}
	return New(append(base, opts...)...), sched, rec
}

func TestNewControllerDefaults(t *testing.T) {
	ctrl, _, _ := newTestController()

	if got := ctrl.Modal(); got.Open || got.Size != SizeMedium {
		t.Errorf("Modal() = %+v, want closed/medium", got)
	}
	if got := ctrl.Toast(); got != (ToastState{}) {
		t.Errorf("Toast() = %+v, want zero", got)
	}
	if ctrl.ToastDelay() != 3000*time.Millisecond {
		t.Errorf("ToastDelay() = %v, want 3s", ctrl.ToastDelay())
	}
	if !ctrl.Dismissible() {
		t.Error("default controller should use the rich preset and be dismissible")
	}
}

func TestDefaultMatchesRichPreset(t *testing.T) {
	def, rich := New(), New(WithVariant(VariantRich))
	t.Cleanup(def.Close)
	t.Cleanup(rich.Close)

	if def.Dismissible() != rich.Dismissible() {
		t.Errorf("Dismissible() = %v, rich = %v", def.Dismissible(), rich.Dismissible())
	}
	if _, err := def.BindDropdown(DropdownBinding{TriggerID: "b", TargetID: "m", Mode: TriggerHover}); err != nil {
		t.Errorf("default controller should allow hover dropdowns: %v", err)
	}
}

func TestOpenModal(t *testing.T) {
	tests := []struct {
		name string
		size ModalSize
	}{
		{"small", SizeSmall},
		{"medium", SizeMedium},
		{"large", SizeLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, _, rec := newTestController()
			if err := ctrl.OpenModal(tt.size); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ctrl.Modal(); !got.Open || got.Size != tt.size {
				t.Errorf("Modal() = %+v, want open/%s", got, tt.size)
			}
			if rec.count(ChangeModal, ReasonOpened) != 1 {
				t.Errorf("expected one opened change, got %+v", rec.changes)
			}
		})
	}
}

func TestOpenModalWhileOpenUpdatesSize(t *testing.T) {
	ctrl, _, rec := newTestController()

	ctrl.OpenModal(SizeSmall)
	if err := ctrl.OpenModal(SizeLarge); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ctrl.Modal(); !got.Open || got.Size != SizeLarge {
		t.Errorf("Modal() = %+v, want open/large", got)
	}
	if rec.count(ChangeModal, ReasonResized) != 1 {
		t.Errorf("expected one resized change, got %+v", rec.changes)
	}

	// Same size again changes nothing.
	ctrl.OpenModal(SizeLarge)
	if len(rec.changes) != 2 {
		t.Errorf("re-open at same size should not notify, got %d changes", len(rec.changes))
	}
}

func TestCloseModalIdempotent(t *testing.T) {
	ctrl, _, rec := newTestController()

	ctrl.OpenModal(SizeLarge)
	for i := 0; i < 2; i++ {
		if err := ctrl.CloseModal(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ctrl.Modal().Open {
			t.Fatal("modal should be closed")
		}
	}
	if rec.count(ChangeModal, ReasonClosed) != 1 {
		t.Errorf("expected one closed change, got %+v", rec.changes)
	}
}

func TestOpenModalInvalidSize(t *testing.T) {
	ctrl, _, rec := newTestController()
	ctrl.OpenModal(SizeSmall)
	before := ctrl.Modal()

	err := ctrl.OpenModal(ModalSize("huge"))

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if ve.Value != "huge" {
		t.Errorf("Value = %q, want huge", ve.Value)
	}
	if got := ctrl.Modal(); got != before {
		t.Errorf("Modal() = %+v, want unchanged %+v", got, before)
	}
	if len(rec.changes) != 1 {
		t.Errorf("invalid open should not notify, got %+v", rec.changes)
	}
}

func TestShowToastAutoDismiss(t *testing.T) {
	ctrl, sched, rec := newTestController()

	if err := ctrl.ShowToast(CategorySuccess, "Item moved successfully."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := ToastState{Show: true, Category: CategorySuccess, Message: "Item moved successfully."}
	if got := ctrl.Toast(); got != want {
		t.Fatalf("Toast() = %+v, want %+v", got, want)
	}

	sched.Advance(2999 * time.Millisecond)
	if !ctrl.Toast().Show {
		t.Fatal("toast should still be visible at t=2999ms")
	}

	sched.Advance(1 * time.Millisecond)
	if got := ctrl.Toast(); got != (ToastState{}) {
		t.Fatalf("Toast() = %+v, want hidden and cleared at t=3000ms", got)
	}
	if rec.count(ChangeToast, ReasonExpired) != 1 {
		t.Errorf("expected one expiry, got %+v", rec.changes)
	}
}

func TestShowToastRestartsCountdown(t *testing.T) {
	ctrl, sched, rec := newTestController()

	ctrl.ShowToast(CategorySuccess, "first")
	sched.AdvanceTo(1000 * time.Millisecond)
	ctrl.ShowToast(CategoryDanger, "second")

	sched.AdvanceTo(3000 * time.Millisecond)
	if got := ctrl.Toast(); !got.Show || got.Category != CategoryDanger || got.Message != "second" {
		t.Fatalf("at t=3000ms Toast() = %+v, want second danger toast visible", got)
	}
	if rec.count(ChangeToast, ReasonExpired) != 0 {
		t.Fatal("first countdown must not hide the replacement toast")
	}

	sched.AdvanceTo(3999 * time.Millisecond)
	if !ctrl.Toast().Show {
		t.Fatal("toast should still be visible at t=3999ms")
	}

	sched.AdvanceTo(4000 * time.Millisecond)
	if ctrl.Toast().Show {
		t.Fatal("toast should be hidden at t=4000ms")
	}

	sched.AdvanceTo(10 * time.Second)
	if n := rec.count(ChangeToast, ReasonExpired); n != 1 {
		t.Errorf("expected exactly one expiry, got %d", n)
	}
	if rec.count(ChangeToast, ReasonReplaced) != 1 {
		t.Errorf("expected one replaced change, got %+v", rec.changes)
	}
	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", sched.Pending())
	}
}

func TestShowToastInvalidCategory(t *testing.T) {
	ctrl, sched, _ := newTestController()
	ctrl.ShowToast(CategoryWarning, "keep me")
	before := ctrl.Toast()

	err := ctrl.ShowToast(Category("info"), "nope")
	if !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := ctrl.Toast(); got != before {
		t.Errorf("Toast() = %+v, want unchanged %+v", got, before)
	}

	// The original countdown is still the one in force.
	sched.Advance(3 * time.Second)
	if ctrl.Toast().Show {
		t.Error("original countdown should still hide the toast")
	}
}

func TestShowToastInvalidCategoryWhileHidden(t *testing.T) {
	ctrl, sched, _ := newTestController()

	if err := ctrl.ShowToast("", "empty"); !IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if ctrl.Toast().Show {
		t.Error("toast should stay hidden")
	}
	if sched.Pending() != 0 {
		t.Errorf("no countdown should be scheduled, got %d", sched.Pending())
	}
}

func TestDismissToastBeforeExpiry(t *testing.T) {
	ctrl, sched, rec := newTestController(WithDismissible(true))

	ctrl.ShowToast(CategoryDanger, "Item has been deleted.")
	sched.Advance(500 * time.Millisecond)

	if err := ctrl.DismissToast(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ctrl.Toast(); got != (ToastState{}) {
		t.Fatalf("Toast() = %+v, want hidden", got)
	}

	sched.Advance(5 * time.Second)
	if rec.count(ChangeToast, ReasonExpired) != 0 {
		t.Error("cancelled countdown must not fire")
	}
	if rec.count(ChangeToast, ReasonDismissed) != 1 {
		t.Errorf("expected one dismissed change, got %+v", rec.changes)
	}
}

func TestDismissHiddenToastIsNoop(t *testing.T) {
	ctrl, _, rec := newTestController()

	if err := ctrl.DismissToast(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.changes) != 0 {
		t.Errorf("expected no changes, got %+v", rec.changes)
	}
}

func TestShowAfterDismissStartsFreshCountdown(t *testing.T) {
	ctrl, sched, _ := newTestController()

	ctrl.ShowToast(CategorySuccess, "one")
	sched.AdvanceTo(2000 * time.Millisecond)
	ctrl.DismissToast()
	ctrl.ShowToast(CategoryWarning, "two")

	sched.AdvanceTo(4999 * time.Millisecond)
	if !ctrl.Toast().Show {
		t.Fatal("second toast should be visible until t=5000ms")
	}
	sched.AdvanceTo(5000 * time.Millisecond)
	if ctrl.Toast().Show {
		t.Fatal("second toast should hide at t=5000ms")
	}
}

func TestCloseCancelsCountdown(t *testing.T) {
	ctrl, sched, rec := newTestController()

	ctrl.ShowToast(CategorySuccess, "bye")
	ctrl.Close()

	if sched.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0 after Close", sched.Pending())
	}
	sched.Advance(time.Minute)
	if rec.count(ChangeToast, ReasonExpired) != 0 {
		t.Error("no expiry should be observed after Close")
	}

	if err := ctrl.ShowToast(CategorySuccess, "late"); !errors.Is(err, ErrClosed) {
		t.Errorf("ShowToast after Close = %v, want ErrClosed", err)
	}
	if err := ctrl.OpenModal(SizeSmall); !errors.Is(err, ErrClosed) {
		t.Errorf("OpenModal after Close = %v, want ErrClosed", err)
	}
	if err := ctrl.CloseModal(); !errors.Is(err, ErrClosed) {
		t.Errorf("CloseModal after Close = %v, want ErrClosed", err)
	}
	if err := ctrl.DismissToast(); !errors.Is(err, ErrClosed) {
		t.Errorf("DismissToast after Close = %v, want ErrClosed", err)
	}
	if !ctrl.Closed() {
		t.Error("Closed() should be true")
	}

	ctrl.Close()
}

func TestStaleExpiryIgnored(t *testing.T) {
	ctrl, _, _ := newTestController()

	ctrl.ShowToast(CategorySuccess, "first")
	stale := ctrl.gen
	ctrl.ShowToast(CategorySuccess, "second")

	if err := ctrl.expire(stale); !errors.Is(err, errStaleTimer) {
		t.Fatalf("expire(stale) = %v, want errStaleTimer", err)
	}
	if got := ctrl.Toast(); !got.Show || got.Message != "second" {
		t.Errorf("Toast() = %+v, want second still visible", got)
	}

	if err := ctrl.expire(ctrl.gen); err != nil {
		t.Fatalf("expire(current) = %v, want nil", err)
	}
	if ctrl.Toast().Show {
		t.Error("current expiry should hide the toast")
	}
	if err := ctrl.expire(ctrl.gen); !errors.Is(err, errStaleTimer) {
		t.Errorf("second expire = %v, want errStaleTimer", err)
	}
}

func TestModalAndToastIndependent(t *testing.T) {
	ctrl, sched, _ := newTestController()

	ctrl.OpenModal(SizeSmall)
	ctrl.ShowToast(CategoryWarning, "heads up")
	sched.Advance(3 * time.Second)

	if !ctrl.Modal().Open {
		t.Error("toast expiry must not close the modal")
	}
	ctrl.ShowToast(CategoryWarning, "again")
	ctrl.CloseModal()
	if !ctrl.Toast().Show {
		t.Error("closing the modal must not hide the toast")
	}
}

func TestOnChangeMayReenter(t *testing.T) {
	sched := NewManualScheduler()
	var ctrl *Controller
	reshown := false
	ctrl = New(WithScheduler(sched), WithOnChange(func(c Change) {
		if c.Reason == ReasonExpired && !reshown {
			reshown = true
			ctrl.ShowToast(CategorySuccess, "again")
		}
	}))

	ctrl.ShowToast(CategorySuccess, "once")
	sched.Advance(3 * time.Second)
	if got := ctrl.Toast(); !got.Show || got.Message != "again" {
		t.Fatalf("Toast() = %+v, want re-shown toast", got)
	}
	sched.Advance(3 * time.Second)
	if ctrl.Toast().Show {
		t.Error("re-shown toast should expire")
	}
}

func TestWithToastDelay(t *testing.T) {
	ctrl, sched, _ := newTestController(WithToastDelay(500 * time.Millisecond))

	ctrl.ShowToast(CategorySuccess, "quick")
	sched.Advance(499 * time.Millisecond)
	if !ctrl.Toast().Show {
		t.Fatal("toast should be visible before the custom delay")
	}
	sched.Advance(time.Millisecond)
	if ctrl.Toast().Show {
		t.Fatal("toast should hide at the custom delay")
	}

	if New(WithToastDelay(0)).ToastDelay() != DefaultToastDelay {
		t.Error("zero delay should keep the default")
	}
}

func TestLoopSchedulerDispatches(t *testing.T) {
	manual := NewManualScheduler()
	var queued []func()
	loop := LoopScheduler{
		Base:     manual,
		Dispatch: func(fn func()) { queued = append(queued, fn) },
	}
	ctrl := New(WithScheduler(loop))

	ctrl.ShowToast(CategorySuccess, "looped")
	manual.Advance(3 * time.Second)

	if !ctrl.Toast().Show {
		t.Fatal("expiry should wait for the loop to run it")
	}
	if len(queued) != 1 {
		t.Fatalf("expected one dispatched callback, got %d", len(queued))
	}
	queued[0]()
	if ctrl.Toast().Show {
		t.Error("toast should hide once the loop runs the expiry")
	}
}
