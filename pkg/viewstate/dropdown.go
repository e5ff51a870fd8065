package viewstate

// TriggerMode selects how a dropdown trigger opens its panel.
type TriggerMode string

const (
	TriggerClick TriggerMode = "click"
	TriggerHover TriggerMode = "hover"
)

// ParseTriggerMode converts a string to a TriggerMode. An empty string
// yields an empty mode, meaning "use the controller default".
func ParseTriggerMode(s string) (TriggerMode, error) {
	switch m := TriggerMode(s); m {
	case "", TriggerClick, TriggerHover:
		return m, nil
	}
	return "", &ValidationError{
		Field:   "trigger mode",
		Value:   s,
		Allowed: []string{string(TriggerClick), string(TriggerHover)},
	}
}

// DropdownBinding ties a trigger element to the panel it toggles. Open and
// close behavior is left to the client; the controller only keeps the IDs
// stable and unique.
type DropdownBinding struct {
	TriggerID string      `json:"triggerId"`
	TargetID  string      `json:"targetId"`
	Mode      TriggerMode `json:"mode"`
}

// dropdownArena stores bindings in registration order with an index by ID.
type dropdownArena struct {
	bindings []DropdownBinding
	byID     map[string]int
}

func (a *dropdownArena) add(b DropdownBinding) error {
	if a.byID == nil {
		a.byID = make(map[string]int)
	}
	for _, id := range []string{b.TriggerID, b.TargetID} {
		if _, taken := a.byID[id]; taken {
			return &ValidationError{Field: "dropdown id", Value: id}
		}
	}
	a.bindings = append(a.bindings, b)
	idx := len(a.bindings) - 1
	a.byID[b.TriggerID] = idx
	a.byID[b.TargetID] = idx
	return nil
}

func (a *dropdownArena) lookup(id string) (DropdownBinding, bool) {
	idx, ok := a.byID[id]
	if !ok {
		return DropdownBinding{}, false
	}
	return a.bindings[idx], true
}

func (a *dropdownArena) all() []DropdownBinding {
	out := make([]DropdownBinding, len(a.bindings))
	copy(out, a.bindings)
	return out
}
