package viewstate

// ModalSize selects the width of the modal dialog.
type ModalSize string

const (
	SizeSmall  ModalSize = "small"
	SizeMedium ModalSize = "medium"
	SizeLarge  ModalSize = "large"
)

// DefaultModalSize is the size a fresh controller reports.
const DefaultModalSize = SizeMedium

// ModalSizes lists every valid size, smallest first.
var ModalSizes = []ModalSize{SizeSmall, SizeMedium, SizeLarge}

// Valid reports whether s is one of the known sizes.
func (s ModalSize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// ParseModalSize converts a string to a ModalSize.
func ParseModalSize(s string) (ModalSize, error) {
	size := ModalSize(s)
	if !size.Valid() {
		return "", &ValidationError{Field: "modal size", Value: s, Allowed: sizeNames()}
	}
	return size, nil
}

func sizeNames() []string {
	names := make([]string, len(ModalSizes))
	for i, s := range ModalSizes {
		names[i] = string(s)
	}
	return names
}

// ModalState is the observable state of the modal.
// Size is meaningful only while Open; it keeps the last requested size.
type ModalState struct {
	Open bool      `json:"isOpen"`
	Size ModalSize `json:"size"`
}
