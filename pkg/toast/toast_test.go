package toast_test

import (
	"errors"
	"testing"

	"github.com/vango-dev/showcase/pkg/toast"
	"github.com/vango-dev/showcase/pkg/viewstate"
)

// mockShower captures shown toasts for verification.
type mockShower struct {
	shown []shownToast
	err   error
}

type shownToast struct {
	category viewstate.Category
	message  string
}

func (m *mockShower) ShowToast(c viewstate.Category, msg string) error {
	if m.err != nil {
		return m.err
	}
	m.shown = append(m.shown, shownToast{c, msg})
	return nil
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name string
		show func(toast.Shower, string) error
		want viewstate.Category
	}{
		{"success", toast.Success, viewstate.CategorySuccess},
		{"danger", toast.Danger, viewstate.CategoryDanger},
		{"warning", toast.Warning, viewstate.CategoryWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &mockShower{}
			if err := tt.show(m, "hello"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(m.shown) != 1 {
				t.Fatalf("expected 1 toast, got %d", len(m.shown))
			}
			if m.shown[0].category != tt.want || m.shown[0].message != "hello" {
				t.Errorf("shown = %+v", m.shown[0])
			}
		})
	}
}

func TestShowPropagatesError(t *testing.T) {
	m := &mockShower{err: viewstate.ErrClosed}
	if err := toast.Success(m, "x"); !errors.Is(err, viewstate.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}

func TestShowWithController(t *testing.T) {
	sched := viewstate.NewManualScheduler()
	ctrl := viewstate.New(viewstate.WithScheduler(sched))

	if err := toast.Warning(ctrl, "This is a warning toast."); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ctrl.Toast()
	if !got.Show || got.Category != viewstate.CategoryWarning {
		t.Errorf("Toast() = %+v", got)
	}
}

func TestFromArgs(t *testing.T) {
	level, msg, err := toast.FromArgs([]string{"danger", "Item has been deleted."})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != toast.TypeDanger || msg != "Item has been deleted." {
		t.Errorf("FromArgs = %q, %q", level, msg)
	}

	if _, _, err := toast.FromArgs([]string{"danger"}); err == nil {
		t.Error("expected error for missing message")
	}
	if _, _, err := toast.FromArgs([]string{"info", "x"}); !viewstate.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}
