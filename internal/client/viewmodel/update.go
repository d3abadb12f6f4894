package viewmodel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appointment-system/internal/client/apiclient"

	"github.com/jinzhu/copier"
)

type API interface {
	ListAppointments(ctx context.Context, params apiclient.ListParams) (*apiclient.Page[apiclient.Appointment], error)
	CreateAppointment(ctx context.Context, in apiclient.AppointmentInput) (*apiclient.Appointment, error)
	UpdateAppointment(ctx context.Context, id int64, in apiclient.AppointmentInput) (*apiclient.Appointment, error)
	DeleteAppointment(ctx context.Context, id int64) (bool, error)
}

// Cmd is a side effect whose outcome re-enters Update as a message.
type Cmd func(ctx context.Context) Msg

type Model struct {
	api API
	now func() time.Time
}

func NewModel(api API, now func() time.Time) *Model {
	if now == nil {
		now = time.Now
	}
	return &Model{api: api, now: now}
}

func (m *Model) Init() (State, Cmd) {
	s := State{Form: m.blankForm()}
	return m.Update(s, LoadRequested{})
}

// Update is pure apart from the returned Cmd.
func (m *Model) Update(s State, msg Msg) (State, Cmd) {
	switch msg := msg.(type) {
	case LoadRequested:
		s.Loading = true
		s.LoadErr = nil
		s.Params = msg.Params
		return s, m.load(msg.Params)

	case AppointmentsLoaded:
		s.Loading = false
		s.All = msg.Page.Items
		s.TotalCount = msg.Page.TotalCount
		s.Visible = filter(s.All, s.SearchText)
		if _, ok := s.Selected(); !ok {
			s.SelectedID = 0
		}
		return s, nil

	case LoadFailed:
		s.Loading = false
		s.LoadErr = msg.Err
		return s, nil

	case SearchChanged:
		s.SearchText = msg.Text
		s.Visible = filter(s.All, s.SearchText)
		return s, nil

	case ClearSearch:
		s.SearchText = ""
		s.Visible = filter(s.All, "")
		return s, nil

	case SelectionChanged:
		s.SelectedID = msg.ID
		return s, nil

	case NewRequested, CancelEdit:
		s.Editing = false
		s.EditingID = 0
		s.Form = m.blankForm()
		return s, nil

	case EditRequested:
		selected, ok := s.Selected()
		if !ok {
			return s, nil
		}
		var f Form
		if err := copier.Copy(&f, &selected); err != nil {
			s.Err = &apiclient.Error{Kind: apiclient.KindUnexpected, Message: "could not prepare form", Err: err}
			return s, nil
		}
		s.Form = f
		s.Editing = true
		s.EditingID = selected.ID
		return s, nil

	case FormChanged:
		s.Form = msg.Form
		return s, nil

	case SaveRequested:
		if !s.CanSave() {
			return s, nil
		}
		s.Err = nil
		s.LastSaved = nil
		return s, m.save(s.Form, s.Editing, s.EditingID)

	case Saved:
		saved := msg.Appointment
		s.LastSaved = &saved
		if msg.Created {
			s.Notice = "Appointment created successfully!"
		} else {
			s.Notice = "Appointment updated successfully!"
		}
		s.Editing = false
		s.EditingID = 0
		s.Form = m.blankForm()
		return m.Update(s, LoadRequested{Params: s.Params})

	case SaveFailed:
		s.Err = msg.Err
		s.Notice = "Error saving appointment: " + msg.Err.Error()
		return s, nil

	case DeleteRequested:
		selected, ok := s.Selected()
		if !ok {
			return s, nil
		}
		s.Err = nil
		return s, m.remove(selected.ID)

	case Deleted:
		if msg.Existed {
			s.Notice = "Appointment deleted successfully!"
		} else {
			s.Notice = fmt.Sprintf("Appointment %d no longer exists.", msg.ID)
		}
		if s.SelectedID == msg.ID {
			s.SelectedID = 0
		}
		return m.Update(s, LoadRequested{Params: s.Params})

	case DeleteFailed:
		s.Err = msg.Err
		s.Notice = "Error deleting appointment: " + msg.Err.Error()
		return s, nil
	}
	return s, nil
}

func (m *Model) blankForm() Form {
	return Form{AppointmentDate: m.now(), Status: DefaultStatus}
}

func (m *Model) load(params apiclient.ListParams) Cmd {
	return func(ctx context.Context) Msg {
		page, err := m.api.ListAppointments(ctx, params)
		if err != nil {
			return LoadFailed{Err: asAPIError(err)}
		}
		return AppointmentsLoaded{Page: page}
	}
}

func (m *Model) save(form Form, editing bool, id int64) Cmd {
	return func(ctx context.Context) Msg {
		var in apiclient.AppointmentInput
		if err := copier.Copy(&in, &form); err != nil {
			return SaveFailed{Err: &apiclient.Error{Kind: apiclient.KindUnexpected, Message: "could not prepare request", Err: err}}
		}

		var (
			saved *apiclient.Appointment
			err   error
		)
		if editing {
			saved, err = m.api.UpdateAppointment(ctx, id, in)
		} else {
			saved, err = m.api.CreateAppointment(ctx, in)
		}
		if err != nil {
			return SaveFailed{Err: asAPIError(err)}
		}
		return Saved{Appointment: *saved, Created: !editing}
	}
}

func (m *Model) remove(id int64) Cmd {
	return func(ctx context.Context) Msg {
		existed, err := m.api.DeleteAppointment(ctx, id)
		if err != nil {
			return DeleteFailed{Err: asAPIError(err)}
		}
		return Deleted{ID: id, Existed: existed}
	}
}

func asAPIError(err error) *apiclient.Error {
	var apiErr *apiclient.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &apiclient.Error{Kind: apiclient.KindUnexpected, Message: err.Error(), Err: err}
}
