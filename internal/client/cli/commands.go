package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"appointment-system/internal/client/apiclient"
	"appointment-system/internal/client/viewmodel"

	"github.com/spf13/cobra"
)

var errCommandFailed = errors.New("command failed")

type formFlags struct {
	patient     string
	date        string
	description string
	status      string
}

func (f *formFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.patient, "patient", "", "patient name")
	cmd.Flags().StringVar(&f.date, "date", "", "appointment date (RFC 3339, 2006-01-02 15:04 or 2006-01-02)")
	cmd.Flags().StringVar(&f.description, "description", "", "free text description")
	cmd.Flags().StringVar(&f.status, "status", "", "status: "+strings.Join(viewmodel.StatusOptions(), ", "))
}

// apply overlays the flags the user actually set onto form.
func (f *formFlags) apply(cmd *cobra.Command, form viewmodel.Form) (viewmodel.Form, error) {
	if cmd.Flags().Changed("patient") {
		form.PatientName = f.patient
	}
	if cmd.Flags().Changed("date") {
		t, err := parseDate(f.date)
		if err != nil {
			return form, err
		}
		form.AppointmentDate = t
	}
	if cmd.Flags().Changed("description") {
		form.Description = f.description
	}
	if cmd.Flags().Changed("status") {
		form.Status = f.status
	}
	return form, nil
}

func newListCommand(a *app) *cobra.Command {
	var (
		search   string
		filter   string
		page     int
		pageSize int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List appointments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.program()
			s := p.Dispatch(cmd.Context(), viewmodel.LoadRequested{Params: apiclient.ListParams{
				SearchTerm: search,
				PageNumber: page,
				PageSize:   pageSize,
			}})
			if s.LoadErr != nil {
				return a.fail(s.LoadErr)
			}
			if filter != "" {
				s = p.Dispatch(cmd.Context(), viewmodel.SearchChanged{Text: filter})
			}
			renderTable(a.out, s.Visible)
			fmt.Fprintf(a.out, "\n%d of %d appointments\n", len(s.Visible), s.TotalCount)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "server-side search over patient name")
	cmd.Flags().StringVar(&filter, "filter", "", "filter the loaded page by patient name")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 20, "page size (max 100)")
	return cmd
}

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			appt, found, err := a.client.GetAppointment(cmd.Context(), id)
			if err != nil {
				return a.fail(err)
			}
			if !found {
				fmt.Fprintf(a.errOut, "appointment %d not found\n", id)
				return errCommandFailed
			}
			renderDetail(a.out, appt)
			return nil
		},
	}
}

func newCreateCommand(a *app) *cobra.Command {
	var ff formFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.program()
			s := p.Dispatch(cmd.Context(), viewmodel.NewRequested{})
			form, err := ff.apply(cmd, s.Form)
			if err != nil {
				return err
			}
			return a.save(cmd, p, form)
		},
	}
	ff.register(cmd)
	_ = cmd.MarkFlagRequired("patient")
	_ = cmd.MarkFlagRequired("date")
	return cmd
}

func newUpdateCommand(a *app) *cobra.Command {
	var ff formFlags
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace the fields of an appointment; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			current, found, err := a.client.GetAppointment(cmd.Context(), id)
			if err != nil {
				return a.fail(err)
			}
			if !found {
				fmt.Fprintf(a.errOut, "appointment %d not found\n", id)
				return errCommandFailed
			}

			p := a.program()
			p.Dispatch(cmd.Context(), viewmodel.AppointmentsLoaded{Page: singlePage(current)})
			p.Dispatch(cmd.Context(), viewmodel.SelectionChanged{ID: id})
			s := p.Dispatch(cmd.Context(), viewmodel.EditRequested{})
			if s.Err != nil {
				return a.fail(s.Err)
			}
			form, err := ff.apply(cmd, s.Form)
			if err != nil {
				return err
			}
			return a.save(cmd, p, form)
		},
	}
	ff.register(cmd)
	return cmd
}

func newDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			p := a.program()
			p.Dispatch(cmd.Context(), viewmodel.AppointmentsLoaded{Page: singlePage(apiclient.Appointment{ID: id})})
			p.Dispatch(cmd.Context(), viewmodel.SelectionChanged{ID: id})
			s := p.Dispatch(cmd.Context(), viewmodel.DeleteRequested{})
			if s.Err != nil {
				return a.fail(s.Err)
			}
			fmt.Fprintln(a.out, s.Notice)
			a.warnRefresh(s)
			return nil
		},
	}
}

func (a *app) save(cmd *cobra.Command, p *viewmodel.Program, form viewmodel.Form) error {
	s := p.Dispatch(cmd.Context(), viewmodel.FormChanged{Form: form})
	if !s.CanSave() {
		fmt.Fprintln(a.errOut, "patient name is required")
		return errCommandFailed
	}
	s = p.Dispatch(cmd.Context(), viewmodel.SaveRequested{})
	if s.Err != nil {
		return a.fail(s.Err)
	}
	fmt.Fprintln(a.out, s.Notice)
	if s.LastSaved != nil {
		renderDetail(a.out, *s.LastSaved)
	}
	a.warnRefresh(s)
	return nil
}

func (a *app) warnRefresh(s viewmodel.State) {
	if s.LoadErr != nil {
		a.logger.Warn("could not refresh appointment list", "error", s.LoadErr.Error())
	}
}

// fail reports err on stderr and returns a sentinel so cobra exits non-zero.
func (a *app) fail(err error) error {
	renderError(a.errOut, err)
	return errCommandFailed
}

func singlePage(appt apiclient.Appointment) *apiclient.Page[apiclient.Appointment] {
	return &apiclient.Page[apiclient.Appointment]{
		Items:      []apiclient.Appointment{appt},
		TotalCount: 1,
		PageNumber: 1,
		PageSize:   1,
		TotalPages: 1,
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", raw)
	}
	return id, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02 15:04", "2006-01-02"}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, strings.TrimSpace(raw), time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}
