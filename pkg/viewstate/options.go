package viewstate

import (
	"log/slog"
	"time"
)

// Variant is a named preset of controller options.
type Variant string

const (
	// VariantSimple renders toasts without a close control and offers only
	// click-triggered dropdowns.
	VariantSimple Variant = "simple"

	// VariantRich adds a close control to toasts and allows hover dropdowns.
	VariantRich Variant = "rich"
)

// ParseVariant converts a string to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantSimple, VariantRich:
		return v, nil
	}
	return "", &ValidationError{
		Field:   "variant",
		Value:   s,
		Allowed: []string{string(VariantSimple), string(VariantRich)},
	}
}

// Option configures a Controller.
type Option func(*options)

type options struct {
	dismissible bool
	triggerMode TriggerMode
	allowHover  bool
	toastDelay  time.Duration
	scheduler   Scheduler
	onChange    func(Change)
	logger      *slog.Logger
}

// defaultOptions is the rich preset.
func defaultOptions() options {
	o := options{
		triggerMode: TriggerClick,
		toastDelay:  DefaultToastDelay,
		scheduler:   SystemScheduler{},
		logger:      slog.Default(),
	}
	WithVariant(VariantRich)(&o)
	return o
}

// WithVariant applies a preset. Options given after it override the preset.
func WithVariant(v Variant) Option {
	return func(o *options) {
		switch v {
		case VariantSimple:
			o.dismissible = false
			o.allowHover = false
			o.triggerMode = TriggerClick
		case VariantRich:
			o.dismissible = true
			o.allowHover = true
		}
	}
}

// WithDismissible controls whether a visible toast offers a close control.
func WithDismissible(dismissible bool) Option {
	return func(o *options) {
		o.dismissible = dismissible
	}
}

// WithTriggerMode sets the mode used for dropdown bindings that do not
// name one.
func WithTriggerMode(mode TriggerMode) Option {
	return func(o *options) {
		o.triggerMode = mode
		if mode == TriggerHover {
			o.allowHover = true
		}
	}
}

// WithToastDelay overrides the auto-dismiss delay. Non-positive values keep
// the default.
func WithToastDelay(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.toastDelay = d
		}
	}
}

// WithScheduler sets the scheduler used for toast countdowns.
func WithScheduler(s Scheduler) Option {
	return func(o *options) {
		if s != nil {
			o.scheduler = s
		}
	}
}

// WithOnChange registers a callback invoked after every state transition.
// It runs without the controller lock held and may call back into the
// controller.
func WithOnChange(fn func(Change)) Option {
	return func(o *options) {
		o.onChange = fn
	}
}

// WithLogger sets the logger for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
