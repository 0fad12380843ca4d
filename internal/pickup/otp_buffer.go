package pickup

import (
	"fmt"
	"strconv"
	"strings"
)

// OtpLength is the number of digits in a pickup OTP.
const OtpLength = 6

// OtpBuffer is the keypad state of the verification step: six digit slots
// and a cursor. Untouched slots hold 0.
type OtpBuffer struct {
	digits [OtpLength]int
	cursor int
}

// Enter writes d into the cursor slot and advances the cursor, wrapping from
// the last slot back to the first.
func (b *OtpBuffer) Enter(d int) error {
	if d < 0 || d > 9 {
		return fmt.Errorf("otp buffer: %d is not a digit", d)
	}
	b.digits[b.cursor] = d
	b.cursor = (b.cursor + 1) % OtpLength
	return nil
}

// Backspace clears the cursor slot when it holds a non-zero digit. When the
// cursor slot is already 0 the cursor moves back one slot (wrapping from the
// first to the last) and that slot is cleared instead.
func (b *OtpBuffer) Backspace() {
	if b.digits[b.cursor] != 0 {
		b.digits[b.cursor] = 0
		return
	}
	b.cursor = (b.cursor + OtpLength - 1) % OtpLength
	b.digits[b.cursor] = 0
}

func (b *OtpBuffer) Reset() {
	*b = OtpBuffer{}
}

func (b OtpBuffer) Digits() [OtpLength]int { return b.digits }

func (b OtpBuffer) Cursor() int { return b.cursor }

// String concatenates the six digits, e.g. "042917".
func (b OtpBuffer) String() string {
	var sb strings.Builder
	sb.Grow(OtpLength)
	for _, d := range b.digits {
		sb.WriteString(strconv.Itoa(d))
	}
	return sb.String()
}
