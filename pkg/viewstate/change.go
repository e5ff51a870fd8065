package viewstate

// ChangeKind identifies which slot a Change affects.
type ChangeKind uint8

const (
	ChangeModal ChangeKind = iota
	ChangeToast
)

// String returns the slot name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeModal:
		return "modal"
	case ChangeToast:
		return "toast"
	default:
		return "unknown"
	}
}

// Reason says why a slot changed.
type Reason string

const (
	ReasonOpened    Reason = "opened"
	ReasonResized   Reason = "resized"
	ReasonClosed    Reason = "closed"
	ReasonShown     Reason = "shown"
	ReasonReplaced  Reason = "replaced"
	ReasonExpired   Reason = "expired"
	ReasonDismissed Reason = "dismissed"
)

// Change describes one transition. Modal and Toast hold the state after it.
type Change struct {
	Kind   ChangeKind
	Reason Reason
	Modal  ModalState
	Toast  ToastState
}
