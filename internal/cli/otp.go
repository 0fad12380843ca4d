package cli

import (
	"github.com/spf13/cobra"
)

var otpCmd = &cobra.Command{
	Use:   "otp",
	Short: "Inspect pickup OTP activity",
}

var otpLogsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the OTP audit log",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		logs, err := c.ListOtpLogs(commandContext(cmd))
		if err != nil {
			return userError("list otp logs", err)
		}

		printOtpLogs(cmd.OutOrStdout(), logs)
		return nil
	},
}

func init() {
	otpCmd.AddCommand(otpLogsCmd)
}

// OtpCmd returns the otp command
func OtpCmd() *cobra.Command {
	return otpCmd
}
