package apiclient

import "time"

type Appointment struct {
	ID              int64     `json:"id"`
	PatientName     string    `json:"patientName"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type AppointmentInput struct {
	PatientName     string    `json:"patientName"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Description     string    `json:"description,omitempty"`
	Status          string    `json:"status,omitempty"`
}

type Page[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	PageNumber int   `json:"pageNumber"`
	PageSize   int   `json:"pageSize"`
	TotalPages int   `json:"totalPages"`
}

type ListParams struct {
	SearchTerm string
	PageNumber int
	PageSize   int
}

type problem struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Detail string              `json:"detail"`
	Errors map[string][]string `json:"errors"`
}
