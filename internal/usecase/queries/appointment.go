package queries

import (
	"context"
	"fmt"
	"time"

	"appointment-system/internal/pkg/errs"
)

const FieldPageNumber = "pageNumber"

var ErrAppointmentNotFound = errs.Mark(errs.New("appointment not found"), errs.ErrNotFound)

type AppointmentView struct {
	ID              int64     `json:"id"`
	PatientName     string    `json:"patient_name"`
	AppointmentDate time.Time `json:"appointment_date"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ListFilter struct {
	SearchTerm string
	PageNumber int
	PageSize   int
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id int64) (*AppointmentView, error)
	List(ctx context.Context, searchTerm string, limit, offset int) ([]*AppointmentView, error)
	Count(ctx context.Context, searchTerm string) (int64, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id int64) (*AppointmentView, error)
	List(ctx context.Context, filter ListFilter) (*Page[*AppointmentView], error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id int64) (*AppointmentView, error) {
	if id <= 0 {
		return nil, ErrAppointmentNotFound
	}
	v, err := q.store.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *appointmentQueriesImpl) List(ctx context.Context, filter ListFilter) (*Page[*AppointmentView], error) {
	pageNumber := ValidatePageNumber(filter.PageNumber)
	pageSize := ValidatePageSize(filter.PageSize)
	offset, ok := pageOffset(pageNumber, pageSize)
	if !ok {
		verr := errs.NewValidationError()
		verr.Add(FieldPageNumber, fmt.Sprintf("pageNumber must not exceed %d for pageSize %d", MaxPageNumber(pageSize), pageSize))
		return nil, verr
	}

	total, err := q.store.Count(ctx, filter.SearchTerm)
	if err != nil {
		return nil, err
	}

	items := []*AppointmentView{}
	if int64(offset) < total {
		rows, err := q.store.List(ctx, filter.SearchTerm, pageSize, offset)
		if err != nil {
			return nil, err
		}
		if rows != nil {
			items = rows
		}
	}

	return &Page[*AppointmentView]{
		Items:      items,
		TotalCount: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}, nil
}
