package response

import (
	"time"

	"appointment-system/internal/domain/appointment"
	"appointment-system/internal/usecase/queries"
)

type AppointmentResponse struct {
	ID              int64     `json:"id"`
	PatientName     string    `json:"patientName"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type AppointmentPageResponse struct {
	Items      []*AppointmentResponse `json:"items"`
	TotalCount int64                  `json:"totalCount"`
	PageNumber int                    `json:"pageNumber"`
	PageSize   int                    `json:"pageSize"`
	TotalPages int                    `json:"totalPages"`
}

func FromAppointment(a *appointment.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID(),
		PatientName:     a.PatientName().String(),
		AppointmentDate: a.AppointmentDate(),
		Description:     a.Description().String(),
		Status:          a.Status().String(),
		CreatedAt:       a.CreatedAt(),
		UpdatedAt:       a.UpdatedAt(),
	}
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              v.ID,
		PatientName:     v.PatientName,
		AppointmentDate: v.AppointmentDate,
		Description:     v.Description,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func FromAppointmentPage(p *queries.Page[*queries.AppointmentView]) *AppointmentPageResponse {
	items := make([]*AppointmentResponse, len(p.Items))
	for i, v := range p.Items {
		items[i] = FromAppointmentView(v)
	}
	return &AppointmentPageResponse{
		Items:      items,
		TotalCount: p.TotalCount,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
		TotalPages: p.TotalPages,
	}
}
