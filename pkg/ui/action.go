package ui

import (
	"encoding/json"

	"github.com/vango-dev/showcase/pkg/vdom"
)

// Action names understood by the session.
const (
	ActionModalOpen    = "modal.open"
	ActionModalClose   = "modal.close"
	ActionToastShow    = "toast.show"
	ActionToastDismiss = "toast.dismiss"
)

// Action binds an element to a session action. Arguments travel as a JSON
// array in data-args.
func Action(name string, args ...string) []vdom.Attr {
	attrs := []vdom.Attr{vdom.Data("action", name)}
	if len(args) > 0 {
		encoded, _ := json.Marshal(args)
		attrs = append(attrs, vdom.Data("args", string(encoded)))
	}
	return attrs
}
