package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sdb-client/internal/services"
)

var trackCmd = &cobra.Command{
	Use:   "track [parcel-id]",
	Short: "Track a parcel and its delivery box",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := connect(cmd)
		if err != nil {
			return err
		}

		tr, err := services.TrackParcel(commandContext(cmd), c, args[0])
		if errors.Is(err, services.ErrParcelNotFound) || errors.Is(err, services.ErrBoxLocationNotFound) {
			return fmt.Errorf("%s track: %v", failMark, err)
		}
		if err != nil {
			return userError("track", err)
		}

		p := tr.Parcel
		fmt.Printf("Parcel: %s\n", p.ParcelID)
		fmt.Printf("  Size: %s\n", p.Size)
		fmt.Printf("  Destination: %s\n", p.Destination)
		fmt.Printf("  Fragile: %t\n", p.IsFragile)
		fmt.Printf("  Status: %s\n", statusColor(string(tr.Status)))
		fmt.Printf("Delivery box: %s\n", tr.Box.BoxID)
		fmt.Printf("  Address: %s\n", tr.Box.Address)
		fmt.Printf("  Location: %s\n", tr.Location)
		return nil
	},
}

// TrackCmd returns the track command
func TrackCmd() *cobra.Command {
	return trackCmd
}
