package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"sdb-client/internal/contracts"
	"sdb-client/internal/domain"
	"sdb-client/internal/services"
)

var parcelsCmd = &cobra.Command{
	Use:   "parcels",
	Short: "Manage parcels",
}

var parcelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all parcels",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		parcels, err := c.ListParcels(commandContext(cmd))
		if err != nil {
			return userError("list parcels", err)
		}

		printParcels(cmd.OutOrStdout(), parcels)
		return nil
	},
}

var parcelsUnassignedCmd = &cobra.Command{
	Use:   "unassigned",
	Short: "List parcels with no courier",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		parcels, err := c.ListParcels(commandContext(cmd))
		if err != nil {
			return userError("list parcels", err)
		}

		printParcels(cmd.OutOrStdout(), services.UnassignedParcels(parcels))
		return nil
	},
}

var parcelsMineCmd = &cobra.Command{
	Use:   "mine",
	Short: "List a courier's or a customer's parcels",
	RunE: func(cmd *cobra.Command, args []string) error {
		courier, _ := cmd.Flags().GetString("courier")
		customer, _ := cmd.Flags().GetString("customer")

		if (courier == "") == (customer == "") {
			return fmt.Errorf("exactly one of --courier or --customer is required")
		}

		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		parcels, err := c.ListParcels(commandContext(cmd))
		if err != nil {
			return userError("list parcels", err)
		}

		if courier != "" {
			parcels = services.ParcelsForCourier(parcels, courier)
		} else {
			parcels = services.ParcelsOwnedBy(parcels, customer)
		}
		printParcels(cmd.OutOrStdout(), parcels)
		return nil
	},
}

var parcelsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a parcel",
	Long: `Create a parcel. When --owner or --box is omitted the first customer
and the first delivery box returned by the backend are used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		owner, _ := cmd.Flags().GetString("owner")
		boxID, _ := cmd.Flags().GetString("box")
		size, _ := cmd.Flags().GetString("size")
		destination, _ := cmd.Flags().GetString("destination")
		fragile, _ := cmd.Flags().GetBool("fragile")

		c, _, err := connect(cmd)
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)

		if owner == "" {
			users, err := c.ListUsers(ctx)
			if err != nil {
				return userError("list users", err)
			}
			customers := services.FilterByRole(users, domain.RoleCustomer)
			var ok bool
			if owner, ok = services.PickDefault(customers, func(u domain.User) string { return u.Email }); !ok {
				return fmt.Errorf("no customers registered; pass --owner")
			}
		}
		if boxID == "" {
			boxes, err := c.ListDeliveryBoxes(ctx)
			if err != nil {
				return userError("list delivery boxes", err)
			}
			var ok bool
			if boxID, ok = services.PickDefault(boxes, func(b domain.DeliveryBox) string { return b.BoxID }); !ok {
				return fmt.Errorf("no delivery boxes registered; pass --box")
			}
		}

		id, err := c.CreateParcel(ctx, contracts.CreateParcelRequest{
			UserID:        owner,
			Size:          domain.BoxType(strings.ToUpper(size)),
			Destination:   destination,
			IsFragile:     fragile,
			DeliveryBoxID: boxID,
		})
		if err != nil {
			return userError("create parcel", err)
		}

		fmt.Printf("%s Created parcel %s\n", okMark, id)
		fmt.Printf("  Owner: %s\n", owner)
		fmt.Printf("  Box: %s\n", boxID)
		return nil
	},
}

var parcelsAssignCmd = &cobra.Command{
	Use:   "assign [parcel-id]",
	Short: "Assign a courier to a parcel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parcelID := args[0]
		courier, _ := cmd.Flags().GetString("courier")

		c, _, err := connect(cmd)
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)

		if courier == "" {
			users, err := c.ListUsers(ctx)
			if err != nil {
				return userError("list users", err)
			}
			couriers := services.FilterByRole(users, domain.RoleCourier)
			var ok bool
			if courier, ok = services.PickDefault(couriers, func(u domain.User) string { return u.Email }); !ok {
				return fmt.Errorf("no couriers registered; pass --courier")
			}
		}

		board := services.NewParcelBoard(c)
		if _, err := board.Revisit(ctx); err != nil {
			return userError("list parcels", err)
		}
		if err := board.Assign(ctx, parcelID, courier); err != nil {
			return userError("assign courier", err)
		}

		fmt.Printf("%s Assigned %s to %s\n", okMark, courier, parcelID)
		if p, ok := services.FindParcel(board.Parcels(), parcelID); ok {
			printParcels(cmd.OutOrStdout(), []domain.Parcel{p})
		}
		return nil
	},
}

var parcelsStatusCmd = &cobra.Command{
	Use:   "status [parcel-id] [status]",
	Short: "Report a parcel's delivery status",
	Long:  "Report a parcel's delivery status. Status is one of DISPATCHED, IN_TRANSIT, OUT_FOR_DELIVERY, DELIVERED.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		location, _ := cmd.Flags().GetString("location")
		provider, _ := cmd.Flags().GetString("provider")

		c, _, err := connect(cmd)
		if err != nil {
			return err
		}
		ctx := commandContext(cmd)

		board := services.NewParcelBoard(c)
		if _, err := board.Revisit(ctx); err != nil {
			return userError("list parcels", err)
		}
		err = board.UpdateStatus(ctx, contracts.UpdateDeliveryStatusRequest{
			ParcelID:          args[0],
			Status:            domain.DeliveryStatus(strings.ToUpper(args[1])),
			Location:          location,
			ServiceProviderID: provider,
		})
		if err != nil {
			return userError("update status", err)
		}

		fmt.Printf("%s %s is now %s\n", okMark, args[0], strings.ToUpper(args[1]))
		if provider != "" {
			printParcels(cmd.OutOrStdout(), services.ParcelsForCourier(board.Parcels(), provider))
		}
		return nil
	},
}

func init() {
	parcelsMineCmd.Flags().String("courier", "", "Courier email")
	parcelsMineCmd.Flags().String("customer", "", "Customer email")

	parcelsCreateCmd.Flags().StringP("owner", "o", "", "Owner email (defaults to the first customer)")
	parcelsCreateCmd.Flags().StringP("box", "b", "", "Delivery box ID (defaults to the first box)")
	parcelsCreateCmd.Flags().StringP("size", "s", string(domain.BoxSmall), "Size (SMALL, MEDIUM, LARGE)")
	parcelsCreateCmd.Flags().StringP("destination", "d", "", "Destination")
	parcelsCreateCmd.Flags().Bool("fragile", false, "Parcel is fragile")

	parcelsAssignCmd.Flags().StringP("courier", "c", "", "Courier email (defaults to the first courier)")

	parcelsStatusCmd.Flags().StringP("location", "l", "", "Current location")
	parcelsStatusCmd.Flags().StringP("provider", "p", "", "Courier email reporting the status")

	parcelsCmd.AddCommand(parcelsListCmd)
	parcelsCmd.AddCommand(parcelsUnassignedCmd)
	parcelsCmd.AddCommand(parcelsMineCmd)
	parcelsCmd.AddCommand(parcelsCreateCmd)
	parcelsCmd.AddCommand(parcelsAssignCmd)
	parcelsCmd.AddCommand(parcelsStatusCmd)
}

// ParcelsCmd returns the parcels command
func ParcelsCmd() *cobra.Command {
	return parcelsCmd
}
