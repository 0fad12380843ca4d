package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
)

var boxesCmd = &cobra.Command{
	Use:   "boxes",
	Short: "Manage delivery boxes",
}

var boxesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List delivery boxes",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		boxes, err := c.ListDeliveryBoxes(commandContext(cmd))
		if err != nil {
			return userError("list delivery boxes", err)
		}

		printBoxes(cmd.OutOrStdout(), boxes)
		return nil
	},
}

var boxesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new delivery box",
	RunE: func(cmd *cobra.Command, args []string) error {
		address, _ := cmd.Flags().GetString("address")
		boxType, _ := cmd.Flags().GetString("type")
		status, _ := cmd.Flags().GetString("status")
		secured, _ := cmd.Flags().GetBool("secured")

		req := contracts.CreateDeliveryBoxRequest{
			Type:      domain.BoxType(boxType),
			Address:   address,
			IsSecured: secured,
			Status:    domain.BoxStatus(status),
		}
		if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
			lat, _ := cmd.Flags().GetFloat64("lat")
			lng, _ := cmd.Flags().GetFloat64("lng")
			req.Location = &domain.Coordinates{Latitude: lat, Longitude: lng}
		}

		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		id, err := c.CreateDeliveryBox(commandContext(cmd), req)
		if err != nil {
			return userError("create delivery box", err)
		}

		fmt.Printf("%s Created delivery box %s\n", okMark, id)
		return nil
	},
}

func init() {
	boxesCreateCmd.Flags().StringP("address", "a", "", "Street address")
	boxesCreateCmd.Flags().StringP("type", "t", string(domain.BoxSmall), "Box size (SMALL, MEDIUM, LARGE)")
	boxesCreateCmd.Flags().StringP("status", "s", string(domain.BoxAvailable), "Status (AVAILABLE, UNAVAILABLE)")
	boxesCreateCmd.Flags().Bool("secured", false, "Box is secured")
	boxesCreateCmd.Flags().Float64("lat", 0, "Latitude")
	boxesCreateCmd.Flags().Float64("lng", 0, "Longitude")

	boxesCmd.AddCommand(boxesListCmd)
	boxesCmd.AddCommand(boxesCreateCmd)
}

// BoxesCmd returns the boxes command
func BoxesCmd() *cobra.Command {
	return boxesCmd
}
