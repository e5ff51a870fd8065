package viewstate

import (
	"log/slog"
	"sync"
	"time"
)

// Controller owns the modal, toast and dropdown state of one page session.
//
// Methods are safe to call from multiple goroutines, but the intended use is
// a single event loop that also receives timer expiries (see LoopScheduler).
type Controller struct {
	mu sync.Mutex

	modal     ModalState
	toast     ToastState
	dropdowns dropdownArena

	// timer is the one outstanding toast countdown, if any.
	timer Timer
	// gen increments on every show, dismiss and close. A countdown only
	// hides the toast if gen still matches the value it captured.
	gen    uint64
	closed bool

	opts   options
	logger *slog.Logger
}

// New creates a controller with the modal closed at the default size and
// the toast hidden. Without WithVariant it behaves as VariantRich.
func New(opts ...Option) *Controller {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		modal:  ModalState{Size: DefaultModalSize},
		opts:   o,
		logger: o.logger.With("component", "viewstate"),
	}
}

// Modal returns a snapshot of the modal state.
func (c *Controller) Modal() ModalState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.modal
}

// Toast returns a snapshot of the toast state.
func (c *Controller) Toast() ToastState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.toast
}

// Dismissible reports whether toasts offer a close control.
func (c *Controller) Dismissible() bool {
	return c.opts.dismissible
}

// ToastDelay returns the auto-dismiss delay.
func (c *Controller) ToastDelay() time.Duration {
	return c.opts.toastDelay
}

// OpenModal opens the modal at size. Opening an already open modal only
// changes its size.
func (c *Controller) OpenModal(size ModalSize) error {
	if !size.Valid() {
		return &ValidationError{Field: "modal size", Value: string(size), Allowed: sizeNames()}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	reason := ReasonOpened
	if c.modal.Open {
		if c.modal.Size == size {
			c.mu.Unlock()
			return nil
		}
		reason = ReasonResized
	}
	c.modal = ModalState{Open: true, Size: size}
	change := c.changeLocked(ChangeModal, reason)
	c.mu.Unlock()

	c.notify(change)
	return nil
}

// CloseModal closes the modal. Closing a closed modal is a no-op.
func (c *Controller) CloseModal() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if !c.modal.Open {
		c.mu.Unlock()
		return nil
	}
	c.modal.Open = false
	change := c.changeLocked(ChangeModal, ReasonClosed)
	c.mu.Unlock()

	c.notify(change)
	return nil
}

// ShowToast makes the toast visible with the given category and message,
// replacing any visible toast, and restarts the auto-dismiss countdown.
func (c *Controller) ShowToast(category Category, message string) error {
	if !category.Valid() {
		return &ValidationError{Field: "toast category", Value: string(category), Allowed: categoryNames()}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	reason := ReasonShown
	if c.toast.Show {
		reason = ReasonReplaced
	}
	c.stopTimerLocked()
	c.gen++
	gen := c.gen
	c.toast = ToastState{Show: true, Category: category, Message: message}
	c.timer = c.opts.scheduler.AfterFunc(c.opts.toastDelay, func() {
		if err := c.expire(gen); err != nil {
			c.logger.Debug("toast timer ignored", "gen", gen, "error", err)
		}
	})
	change := c.changeLocked(ChangeToast, reason)
	c.mu.Unlock()

	c.notify(change)
	return nil
}

// DismissToast hides the toast immediately and cancels its countdown.
// Dismissing a hidden toast is a no-op.
func (c *Controller) DismissToast() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.stopTimerLocked()
	c.gen++
	if !c.toast.Show {
		c.mu.Unlock()
		return nil
	}
	c.toast = ToastState{}
	change := c.changeLocked(ChangeToast, ReasonDismissed)
	c.mu.Unlock()

	c.notify(change)
	return nil
}

// BindDropdown registers a trigger/target pair. An empty Mode takes the
// controller default. The stored binding is returned.
func (c *Controller) BindDropdown(b DropdownBinding) (DropdownBinding, error) {
	if b.TriggerID == "" {
		return DropdownBinding{}, &ValidationError{Field: "dropdown trigger id", Value: ""}
	}
	if b.TargetID == "" {
		return DropdownBinding{}, &ValidationError{Field: "dropdown target id", Value: ""}
	}
	if b.TriggerID == b.TargetID {
		return DropdownBinding{}, &ValidationError{Field: "dropdown id", Value: b.TargetID}
	}
	mode, err := ParseTriggerMode(string(b.Mode))
	if err != nil {
		return DropdownBinding{}, err
	}
	if mode == "" {
		mode = c.opts.triggerMode
	}
	if mode == TriggerHover && !c.opts.allowHover {
		return DropdownBinding{}, &ValidationError{
			Field:   "trigger mode",
			Value:   string(mode),
			Allowed: []string{string(TriggerClick)},
		}
	}
	b.Mode = mode

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return DropdownBinding{}, ErrClosed
	}
	if err := c.dropdowns.add(b); err != nil {
		return DropdownBinding{}, err
	}
	return b, nil
}

// Dropdown looks up a binding by its trigger or target ID.
func (c *Controller) Dropdown(id string) (DropdownBinding, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropdowns.lookup(id)
}

// Dropdowns returns all bindings in registration order.
func (c *Controller) Dropdowns() []DropdownBinding {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropdowns.all()
}

// Close cancels any pending countdown. Later operations return ErrClosed
// and late timer callbacks are ignored. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopTimerLocked()
	c.gen++
}

// Closed reports whether Close has been called.
func (c *Controller) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// expire hides the toast if gen is still the current countdown.
func (c *Controller) expire(gen uint64) error {
	c.mu.Lock()
	if c.closed || gen != c.gen || !c.toast.Show {
		c.mu.Unlock()
		return errStaleTimer
	}
	c.timer = nil
	c.toast = ToastState{}
	change := c.changeLocked(ChangeToast, ReasonExpired)
	c.mu.Unlock()

	c.notify(change)
	return nil
}

func (c *Controller) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Controller) changeLocked(kind ChangeKind, reason Reason) Change {
	return Change{Kind: kind, Reason: reason, Modal: c.modal, Toast: c.toast}
}

func (c *Controller) notify(change Change) {
	c.logger.Debug("state changed", "slot", change.Kind.String(), "reason", string(change.Reason))
	if c.opts.onChange != nil {
		c.opts.onChange(change)
	}
}
