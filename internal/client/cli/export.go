package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"appointment-system/internal/client/apiclient"
	"appointment-system/internal/client/viewmodel"

	"github.com/spf13/cobra"
)

var csvHeader = []string{"ID", "Patient Name", "Appointment Date", "Status", "Description"}

func newExportCommand(a *app) *cobra.Command {
	var (
		outPath  string
		search   string
		filter   string
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export appointments to CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.program()
			s := p.Dispatch(cmd.Context(), viewmodel.LoadRequested{Params: apiclient.ListParams{
				SearchTerm: search,
				PageNumber: 1,
				PageSize:   pageSize,
			}})
			if s.LoadErr != nil {
				return a.fail(s.LoadErr)
			}
			if filter != "" {
				s = p.Dispatch(cmd.Context(), viewmodel.SearchChanged{Text: filter})
			}
			if len(s.Visible) == 0 {
				fmt.Fprintln(a.out, "No appointments to export.")
				return nil
			}

			if outPath == "" {
				outPath = fmt.Sprintf("Appointments_%s.csv", time.Now().Format("20060102_150405"))
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()

			if err := writeCSV(f, s.Visible); err != nil {
				return fmt.Errorf("write export file: %w", err)
			}
			fmt.Fprintf(a.out, "Successfully exported %d appointments to %s\n", len(s.Visible), outPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default Appointments_<timestamp>.csv)")
	cmd.Flags().StringVar(&search, "search", "", "server-side search over patient name")
	cmd.Flags().StringVar(&filter, "filter", "", "filter the loaded page by patient name")
	cmd.Flags().IntVar(&pageSize, "page-size", 100, "number of appointments to load (max 100)")
	return cmd
}

func writeCSV(w io.Writer, items []apiclient.Appointment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, a := range items {
		if err := cw.Write([]string{
			strconv.FormatInt(a.ID, 10),
			a.PatientName,
			a.AppointmentDate.Local().Format("2006-01-02 15:04:05"),
			a.Status,
			a.Description,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
