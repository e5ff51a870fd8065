package server

import (
	"context"
	"strconv"

	"github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/toast"
	"github.com/vango-dev/showcase/pkg/ui"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

// Action is one client request as seen by handlers and middleware.
type Action struct {
	Name string
	Args []string

	// SessionID identifies the session the action arrived on.
	SessionID string

	ctx        context.Context
	controller *viewstate.Controller
}

// NewAction builds an action bound to ctrl.
func NewAction(ctx context.Context, sessionID, name string, args []string, ctrl *viewstate.Controller) *Action {
	return &Action{
		Name:       name,
		Args:       args,
		SessionID:  sessionID,
		ctx:        ctx,
		controller: ctrl,
	}
}

// Context returns the action's context. Middleware may replace it with
// WithContext so downstream code sees trace spans.
func (a *Action) Context() context.Context {
	if a.ctx == nil {
		return context.Background()
	}
	return a.ctx
}

// WithContext returns a shallow copy of a carrying ctx.
func (a *Action) WithContext(ctx context.Context) *Action {
	c := *a
	c.ctx = ctx
	return &c
}

// Controller returns the session's controller.
func (a *Action) Controller() *viewstate.Controller {
	return a.controller
}

// HandlerFunc executes an action.
type HandlerFunc func(a *Action) error

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain applies mw around h so that mw[0] runs first.
func Chain(h HandlerFunc, mw ...Middleware) HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// HandleAction maps an action onto the controller.
func HandleAction(a *Action) error {
	ctrl := a.controller
	switch a.Name {
	case ui.ActionModalOpen:
		if err := wantArgs(a, 1); err != nil {
			return err
		}
		size, err := viewstate.ParseModalSize(a.Args[0])
		if err != nil {
			return err
		}
		return ctrl.OpenModal(size)

	case ui.ActionModalClose:
		if err := wantArgs(a, 0); err != nil {
			return err
		}
		return ctrl.CloseModal()

	case ui.ActionToastShow:
		category, message, err := toast.FromArgs(a.Args)
		if err != nil {
			if viewstate.IsValidationError(err) {
				return err
			}
			return errors.New("E142").WithDetail(err.Error())
		}
		return toast.Show(ctrl, category, message)

	case ui.ActionToastDismiss:
		if err := wantArgs(a, 0); err != nil {
			return err
		}
		if !ctrl.Dismissible() {
			return errors.New("E143").WithDetail(a.Name)
		}
		return ctrl.DismissToast()

	default:
		return errors.New("E141").WithDetail(a.Name)
	}
}

func wantArgs(a *Action, n int) error {
	if len(a.Args) == n {
		return nil
	}
	return errors.New("E142").
		WithDetail(a.Name + " takes " + strconv.Itoa(n) + " argument(s), got " + strconv.Itoa(len(a.Args)))
}
