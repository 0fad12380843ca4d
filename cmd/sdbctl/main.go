package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sdb-client/internal/cli"
	"sdb-client/internal/config"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sdbctl",
		Short: "sdbctl - Smart Delivery Box client",
		Long: `sdbctl talks to the SDB parcel backend: accounts, delivery boxes,
parcels, tracking and OTP-gated pickup from a smart box.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("base-url", "", fmt.Sprintf("Backend base URL (default $SDB_BASE_URL or %s)", config.DefaultBaseURL))

	// Accounts
	rootCmd.AddCommand(cli.LoginCmd())
	rootCmd.AddCommand(cli.RegisterCmd())
	rootCmd.AddCommand(cli.ResetPasswordCmd())

	// Admin and courier views
	rootCmd.AddCommand(cli.UsersCmd())
	rootCmd.AddCommand(cli.BoxesCmd())
	rootCmd.AddCommand(cli.ParcelsCmd())
	rootCmd.AddCommand(cli.OtpCmd())

	// Customer views
	rootCmd.AddCommand(cli.TrackCmd())
	rootCmd.AddCommand(cli.PickupCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
