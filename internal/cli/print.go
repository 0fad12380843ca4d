package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"sdb-client/internal/domain"
)

func printUsers(out io.Writer, users []domain.User) {
	if len(users) == 0 {
		fmt.Fprintln(out, "No users found")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL\tROLE")
	fmt.Fprintln(w, "----\t-----\t----")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\n", u.Name, u.Email, u.Role)
	}
	w.Flush()
}

func printBoxes(out io.Writer, boxes []domain.DeliveryBox) {
	if len(boxes) == 0 {
		fmt.Fprintln(out, "No delivery boxes found")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tADDRESS\tTYPE\tSECURED\tSTATUS\tLOCATION")
	fmt.Fprintln(w, "--\t-------\t----\t-------\t------\t--------")
	for _, b := range boxes {
		loc := "-"
		if b.Location != nil {
			loc = b.Location.String()
		}
		secured := "no"
		if b.IsSecured {
			secured = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", b.BoxID, b.Address, b.Type, secured, b.Status, loc)
	}
	w.Flush()
}

func printParcels(out io.Writer, parcels []domain.Parcel) {
	if len(parcels) == 0 {
		fmt.Fprintln(out, "No parcels found")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tDESTINATION\tOWNER\tBOX\tCOURIER\tSTATUS")
	fmt.Fprintln(w, "--\t----\t-----------\t-----\t---\t-------\t------")
	for _, p := range parcels {
		courier := "-"
		if p.Assigned() {
			courier = *p.CourierID
		}
		dest := p.Destination
		if p.IsFragile {
			dest += " [fragile]"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", p.ParcelID, p.Size, dest, p.UserID, p.DeliveryBoxID, courier, p.Status)
	}
	w.Flush()
}

func printOtpLogs(out io.Writer, logs []domain.OtpLogEntry) {
	if len(logs) == 0 {
		fmt.Fprintln(out, "No OTP logs found")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPHONE\tPROVIDER\tSTATUS\tERROR\tCREATED")
	fmt.Fprintln(w, "--\t-----\t--------\t------\t-----\t-------")
	for _, l := range logs {
		errText := "-"
		if l.Error != nil {
			errText = *l.Error
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			l.OtpID, orDefault(l.PhoneNumber, "-"), l.ServiceProviderID, l.Status, errText,
			l.CreatedAt.Local().Format(time.DateTime))
	}
	w.Flush()
}

func statusColor(status string) string {
	switch domain.DeliveryStatus(status) {
	case domain.StatusDelivered:
		return color.New(color.FgGreen).Sprint(status)
	case domain.StatusInTransit, domain.StatusOutForDelivery:
		return color.New(color.FgYellow).Sprint(status)
	}
	return status
}

// renderKeypad draws the six OTP slots with the cursor slot highlighted.
func renderKeypad(digits [6]int, cursor int) string {
	var sb strings.Builder
	cur := color.New(color.FgCyan, color.Bold)
	for i, d := range digits {
		cell := fmt.Sprintf("[%d]", d)
		if i == cursor {
			cell = cur.Sprint(cell)
		}
		sb.WriteString(cell)
	}
	return sb.String()
}
