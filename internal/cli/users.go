package cli

import (
	"github.com/spf13/cobra"

	"sdb-client/internal/domain"
	"sdb-client/internal/services"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Inspect registered users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		users, err := c.ListUsers(commandContext(cmd))
		if err != nil {
			return userError("list users", err)
		}
		if role != "" {
			users = services.FilterByRole(users, domain.Role(role))
		}

		printUsers(cmd.OutOrStdout(), users)
		return nil
	},
}

func init() {
	usersListCmd.Flags().StringP("role", "r", "", "Filter by role (Admin, Courier, Customer)")

	usersCmd.AddCommand(usersListCmd)
}

// UsersCmd returns the users command
func UsersCmd() *cobra.Command {
	return usersCmd
}
