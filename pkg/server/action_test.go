package server

import (
	"errors"
	"testing"

	showcaseerrors "github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

func newTestAction(t *testing.T, variant viewstate.Variant, name string, args ...string) *Action {
	t.Helper()
	ctrl := viewstate.New(
		viewstate.WithVariant(variant),
		viewstate.WithScheduler(viewstate.NewManualScheduler()),
	)
	t.Cleanup(ctrl.Close)
	return &Action{Name: name, Args: args, controller: ctrl}
}

func errCode(err error) string {
	var se *showcaseerrors.ShowcaseError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

func TestHandleAction(t *testing.T) {
	tests := []struct {
		name    string
		variant viewstate.Variant
		action  string
		args    []string
		code    string
		check   func(t *testing.T, c *viewstate.Controller)
	}{
		{
			name: "open small", variant: viewstate.VariantRich,
			action: "modal.open", args: []string{"small"},
			check: func(t *testing.T, c *viewstate.Controller) {
				if m := c.Modal(); !m.Open || m.Size != viewstate.SizeSmall {
					t.Errorf("Modal() = %+v", m)
				}
			},
		},
		{
			name: "open without size", variant: viewstate.VariantRich,
			action: "modal.open", code: "E142",
		},
		{
			name: "close", variant: viewstate.VariantRich,
			action: "modal.close",
			check: func(t *testing.T, c *viewstate.Controller) {
				if c.Modal().Open {
					t.Error("modal should be closed")
				}
			},
		},
		{
			name: "show toast", variant: viewstate.VariantRich,
			action: "toast.show", args: []string{"danger", "Item has been deleted."},
			check: func(t *testing.T, c *viewstate.Controller) {
				want := viewstate.ToastState{Show: true, Category: viewstate.CategoryDanger, Message: "Item has been deleted."}
				if got := c.Toast(); got != want {
					t.Errorf("Toast() = %+v, want %+v", got, want)
				}
			},
		},
		{
			name: "toast missing message", variant: viewstate.VariantRich,
			action: "toast.show", args: []string{"danger"}, code: "E142",
		},
		{
			name: "dismiss rich", variant: viewstate.VariantRich,
			action: "toast.dismiss",
		},
		{
			name: "dismiss simple", variant: viewstate.VariantSimple,
			action: "toast.dismiss", code: "E143",
		},
		{
			name: "unknown", variant: viewstate.VariantRich,
			action: "modal.explode", code: "E141",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestAction(t, tt.variant, tt.action, tt.args...)
			err := HandleAction(a)
			if tt.code != "" {
				if got := errCode(err); got != tt.code {
					t.Fatalf("error code = %q, want %q (err=%v)", got, tt.code, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("HandleAction() error = %v", err)
			}
			if tt.check != nil {
				tt.check(t, a.Controller())
			}
		})
	}
}

func TestHandleAction_InvalidValuesAreValidationErrors(t *testing.T) {
	a := newTestAction(t, viewstate.VariantRich, "modal.open", "huge")
	err := HandleAction(a)
	if !viewstate.IsValidationError(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if a.Controller().Modal().Open {
		t.Error("state must be unchanged after a rejected action")
	}

	a = newTestAction(t, viewstate.VariantRich, "toast.show", "info", "hi")
	if err := HandleAction(a); !viewstate.IsValidationError(err) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if a.Controller().Toast().Show {
		t.Error("toast must stay hidden after a rejected action")
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next HandlerFunc) HandlerFunc {
			return func(a *Action) error {
				order = append(order, name+">")
				err := next(a)
				order = append(order, "<"+name)
				return err
			}
		}
	}
	h := Chain(func(a *Action) error {
		order = append(order, "handler")
		return nil
	}, mw("a"), mw("b"))

	if err := h(&Action{Name: "x"}); err != nil {
		t.Fatal(err)
	}
	want := []string{"a>", "b>", "handler", "<b", "<a"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
