package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sdb-client/internal/auth"
	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"sdb-client/internal/services"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and show your dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		if strings.TrimSpace(email) == "" || password == "" {
			return fmt.Errorf("please enter both email and password")
		}

		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		resp, err := c.Login(commandContext(cmd), contracts.LoginRequest{Email: email, Password: password})
		if err != nil {
			return userError("login", err)
		}

		dash := services.DashboardFor(resp.Role)
		fmt.Printf("%s %s\n", okMark, orDefault(resp.Message, "Login successful"))
		fmt.Printf("  Role: %s\n", orDefault(string(resp.Role), "-"))
		fmt.Printf("  Dashboard: %s\n", dash)
		for _, a := range dash.Actions() {
			fmt.Printf("    - %s\n", a)
		}

		if resp.Token != "" {
			claims, err := auth.DecodeClaims(resp.Token)
			if err != nil {
				fmt.Printf("  %s token could not be decoded: %v\n", warnMark, err)
				return nil
			}
			if claims.ExpiresAt != nil {
				fmt.Printf("  Token expires: %s\n", claims.ExpiresAt.Time.Local().Format(time.RFC1123))
			}
		}
		return nil
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		confirm, _ := cmd.Flags().GetString("confirm")
		role, _ := cmd.Flags().GetString("role")

		req, err := services.ValidateRegistration(services.Registration{
			Name:            name,
			Email:           email,
			Password:        password,
			ConfirmPassword: confirm,
			Role:            domain.Role(role),
		})
		if err != nil {
			return userError("register", err)
		}

		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		resp, err := c.Register(commandContext(cmd), req)
		if err != nil {
			return userError("register", err)
		}

		fmt.Printf("%s %s\n", okMark, orDefault(resp.Message, "Registration successful"))
		if resp.UserID != "" {
			fmt.Printf("  User ID: %s\n", resp.UserID)
		}
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password",
	Short: "Set a new password for an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		resp, err := c.ResetPassword(commandContext(cmd), contracts.ResetPasswordRequest{Email: email, Password: password})
		if err != nil {
			return userError("reset password", err)
		}

		fmt.Printf("%s %s\n", okMark, orDefault(resp.Message, "Password reset successfully"))
		return nil
	},
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

func init() {
	loginCmd.Flags().StringP("email", "e", "", "Account email")
	loginCmd.Flags().StringP("password", "p", "", "Account password")

	registerCmd.Flags().StringP("name", "n", "", "Full name")
	registerCmd.Flags().StringP("email", "e", "", "Email")
	registerCmd.Flags().StringP("password", "p", "", "Password")
	registerCmd.Flags().String("confirm", "", "Password again")
	registerCmd.Flags().StringP("role", "r", string(domain.RoleCustomer), "Role (Admin, Courier, Customer)")

	resetPasswordCmd.Flags().StringP("email", "e", "", "Account email")
	resetPasswordCmd.Flags().StringP("password", "p", "", "New password")
}

// LoginCmd returns the login command
func LoginCmd() *cobra.Command {
	return loginCmd
}

// RegisterCmd returns the register command
func RegisterCmd() *cobra.Command {
	return registerCmd
}

// ResetPasswordCmd returns the reset-password command
func ResetPasswordCmd() *cobra.Command {
	return resetPasswordCmd
}
