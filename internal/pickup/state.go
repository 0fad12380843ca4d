package pickup

// State is a step of the pickup flow.
type State string

const (
	StateIdle          State = "IDLE"
	StateStatusChecked State = "STATUS_CHECKED"
	StateOtpGenerated  State = "OTP_GENERATED"
	StateOtpEntering   State = "OTP_ENTERING"
	StateOtpVerified   State = "OTP_VERIFIED"
	StateBoxOpened     State = "BOX_OPENED"
	StateBoxClosed     State = "BOX_CLOSED"
)

func (s State) String() string { return string(s) }

// Terminal reports whether the pickup has been completed at least as far as
// opening the box.
func (s State) Terminal() bool {
	return s == StateBoxOpened || s == StateBoxClosed
}
