package viewmodel

import "appointment-system/internal/client/apiclient"

// Msg is any event fed to Update.
type Msg interface {
	isMsg()
}

type LoadRequested struct {
	Params apiclient.ListParams
}

type AppointmentsLoaded struct {
	Page *apiclient.Page[apiclient.Appointment]
}

type LoadFailed struct {
	Err *apiclient.Error
}

type SearchChanged struct {
	Text string
}

type ClearSearch struct{}

type SelectionChanged struct {
	ID int64
}

type NewRequested struct{}

type EditRequested struct{}

type FormChanged struct {
	Form Form
}

type SaveRequested struct{}

type Saved struct {
	Appointment apiclient.Appointment
	Created     bool
}

type SaveFailed struct {
	Err *apiclient.Error
}

type DeleteRequested struct{}

type Deleted struct {
	ID      int64
	Existed bool
}

type DeleteFailed struct {
	Err *apiclient.Error
}

type CancelEdit struct{}

func (LoadRequested) isMsg()      {}
func (AppointmentsLoaded) isMsg() {}
func (LoadFailed) isMsg()         {}
func (SearchChanged) isMsg()      {}
func (ClearSearch) isMsg()        {}
func (SelectionChanged) isMsg()   {}
func (NewRequested) isMsg()       {}
func (EditRequested) isMsg()      {}
func (FormChanged) isMsg()        {}
func (SaveRequested) isMsg()      {}
func (Saved) isMsg()              {}
func (SaveFailed) isMsg()         {}
func (DeleteRequested) isMsg()    {}
func (Deleted) isMsg()            {}
func (DeleteFailed) isMsg()       {}
func (CancelEdit) isMsg()         {}
