package cli

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"appointment-system/internal/client/apiclient"
)

const displayTime = "2006-01-02 15:04"

func renderTable(w io.Writer, items []apiclient.Appointment) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPATIENT\tDATE\tSTATUS\tDESCRIPTION")
	for _, a := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			a.ID, a.PatientName, a.AppointmentDate.Local().Format(displayTime), a.Status, truncate(a.Description, 40))
	}
	_ = tw.Flush()
}

func renderDetail(w io.Writer, a apiclient.Appointment) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "ID:\t%d\n", a.ID)
	fmt.Fprintf(tw, "Patient:\t%s\n", a.PatientName)
	fmt.Fprintf(tw, "Date:\t%s\n", a.AppointmentDate.Local().Format(displayTime))
	fmt.Fprintf(tw, "Status:\t%s\n", a.Status)
	fmt.Fprintf(tw, "Description:\t%s\n", a.Description)
	if !a.CreatedAt.IsZero() {
		fmt.Fprintf(tw, "Created:\t%s\n", a.CreatedAt.Local().Format(time.RFC3339))
		fmt.Fprintf(tw, "Updated:\t%s\n", a.UpdatedAt.Local().Format(time.RFC3339))
	}
	_ = tw.Flush()
}

func renderError(w io.Writer, err error) {
	var apiErr *apiclient.Error
	if !errors.As(err, &apiErr) {
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}

	fmt.Fprintf(w, "error: %s\n", apiErr.Message)
	if len(apiErr.ValidationErrors) == 0 {
		return
	}
	fields := make([]string, 0, len(apiErr.ValidationErrors))
	for f := range apiErr.ValidationErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		for _, msg := range apiErr.ValidationErrors[f] {
			fmt.Fprintf(w, "  %s: %s\n", f, msg)
		}
	}
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
