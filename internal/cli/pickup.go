package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sdb-client/internal/domain"
	"sdb-client/internal/pickup"
	"sdb-client/internal/session"
)

// openSequence is the box opening shown after a successful verification.
var openSequence = []struct {
	step string
	dur  time.Duration
}{
	{"turning handle", 500 * time.Millisecond},
	{"opening lid", time.Second},
	{"sliding parcel out", 1200 * time.Millisecond},
}

var pickupCmd = &cobra.Command{
	Use:   "pickup [parcel-id]",
	Short: "Collect a delivered parcel from its smart box",
	Long: `Collect a delivered parcel. The parcel's status is checked, an OTP is
sent to --email, and the code is typed on the keypad: digits fill the slots
and '<' is backspace. Each entered line is submitted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		animate, _ := cmd.Flags().GetBool("animate")

		c, cfg, err := connect(cmd)
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)

		emails := session.Default
		if !cfg.StrictSession {
			emails = session.NewEmailStore(false)
		}
		flow := pickup.NewCoordinator(c, emails)
		defer flow.Reset()

		status, err := flow.CheckStatus(ctx, args[0])
		if err != nil {
			return userError("check status", err)
		}
		fmt.Printf("Parcel %s: %s\n", args[0], statusColor(string(status)))
		if status != domain.StatusDelivered {
			fmt.Printf("%s Parcel is not ready for pickup yet\n", warnMark)
			return nil
		}

		msg, err := flow.GenerateOtp(ctx, email)
		if err != nil {
			return userError("generate otp", err)
		}
		fmt.Printf("%s %s\n", okMark, orDefault(msg, "OTP sent to "+email))

		if err := flow.BeginEntry(); err != nil {
			return err
		}

		in := bufio.NewScanner(cmd.InOrStdin())
		for {
			snap := flow.Snapshot()
			fmt.Printf("%s  enter code: ", renderKeypad(snap.Digits, snap.Cursor))
			if !in.Scan() {
				return errors.New("pickup abandoned")
			}
			if err := applyKeys(flow, in.Text(), cmd.ErrOrStderr()); err != nil {
				return err
			}

			msg, err := flow.Submit(ctx)
			if err == nil {
				fmt.Printf("%s %s\n", okMark, orDefault(msg, "OTP verified"))
				break
			}
			if domain.Classify(err) == domain.DomainFailure {
				fmt.Printf("%s %s\n", failMark, domain.UserMessage(err, "Invalid OTP"))
				continue
			}
			return userError("verify otp", err)
		}

		if err := flow.OpenBox(); err != nil {
			return err
		}
		for _, s := range openSequence {
			fmt.Printf("  %s...\n", s.step)
			if animate {
				time.Sleep(s.dur)
			}
		}
		fmt.Printf("%s Box open. Take your parcel and press Enter to close.\n", okMark)
		in.Scan()

		if err := flow.CloseBox(); err != nil {
			return err
		}
		if err := flow.Finish(); err != nil {
			return err
		}
		fmt.Printf("%s Box closed\n", okMark)
		return nil
	},
}

// applyKeys feeds one line of keypad input to the flow.
func applyKeys(flow *pickup.Coordinator, line string, errOut io.Writer) error {
	for _, r := range strings.TrimSpace(line) {
		switch {
		case r >= '0' && r <= '9':
			if err := flow.EnterDigit(int(r - '0')); err != nil {
				return err
			}
		case r == '<':
			if err := flow.Backspace(); err != nil {
				return err
			}
		case r == ' ':
		default:
			fmt.Fprintf(errOut, "%s ignoring %q\n", warnMark, r)
		}
	}
	return nil
}

func init() {
	pickupCmd.Flags().StringP("email", "e", "", "Email the OTP is sent to")
	pickupCmd.Flags().Bool("animate", true, "Pace the box opening sequence")
	_ = pickupCmd.MarkFlagRequired("email")
}

// PickupCmd returns the pickup command
func PickupCmd() *cobra.Command {
	return pickupCmd
}
