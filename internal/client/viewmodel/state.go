package viewmodel

import (
	"strings"
	"time"

	"appointment-system/internal/client/apiclient"
)

const DefaultStatus = "Scheduled"

// StatusOptions lists the statuses an appointment form accepts.
func StatusOptions() []string {
	return []string{"Scheduled", "Completed", "Cancelled"}
}

// Form holds the editable fields of an appointment.
type Form struct {
	PatientName     string
	AppointmentDate time.Time
	Description     string
	Status          string
}

type State struct {
	All        []apiclient.Appointment
	Visible    []apiclient.Appointment
	TotalCount int64
	Params     apiclient.ListParams
	SearchText string
	SelectedID int64

	Form      Form
	Editing   bool
	EditingID int64

	LastSaved *apiclient.Appointment

	Loading bool
	LoadErr *apiclient.Error
	Notice  string
	Err     *apiclient.Error
}

func (s State) Selected() (apiclient.Appointment, bool) {
	if s.SelectedID == 0 {
		return apiclient.Appointment{}, false
	}
	for _, a := range s.All {
		if a.ID == s.SelectedID {
			return a, true
		}
	}
	return apiclient.Appointment{}, false
}

// CanSave requires a non-blank patient name.
func (s State) CanSave() bool {
	return strings.TrimSpace(s.Form.PatientName) != ""
}

func (s State) CanEdit() bool {
	_, ok := s.Selected()
	return ok
}

// filter matches the search text case-insensitively against the patient name.
func filter(all []apiclient.Appointment, text string) []apiclient.Appointment {
	needle := strings.ToLower(strings.TrimSpace(text))
	out := make([]apiclient.Appointment, 0, len(all))
	for _, a := range all {
		if needle == "" || strings.Contains(strings.ToLower(a.PatientName), needle) {
			out = append(out, a)
		}
	}
	return out
}
