//go:build unit

package appointment_test

import (
	"strings"
	"testing"
	"time"

	"appointment-system/internal/domain/appointment"
	"appointment-system/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AppointmentBuilder)
	errIs  error
}

func TestAppointment(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Zero(t, actual.ID(), "identity is assigned by the store")
		assert.Equal(t, "Jane Doe", actual.PatientName().String())
		assert.Equal(t, "Annual check-up", actual.Description().String())
		assert.Equal(t, appointment.StatusScheduled, actual.Status())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("patient name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.AppointmentBuilder) { b.PatientName = "" },
				errIs:  appointment.ErrEmptyPatientName,
			},
			{
				name:   "whitespace only",
				mutate: func(b *builder.AppointmentBuilder) { b.PatientName = "   " },
				errIs:  appointment.ErrEmptyPatientName,
			},
			{
				name: "exactly at limit",
				mutate: func(b *builder.AppointmentBuilder) {
					b.PatientName = strings.Repeat("a", appointment.MaxPatientNameLength)
				},
			},
			{
				name: "over limit",
				mutate: func(b *builder.AppointmentBuilder) {
					b.PatientName = strings.Repeat("a", appointment.MaxPatientNameLength+1)
				},
				errIs: appointment.ErrPatientNameTooLong,
			},
			{
				name: "multibyte characters count as one",
				mutate: func(b *builder.AppointmentBuilder) {
					b.PatientName = strings.Repeat("é", appointment.MaxPatientNameLength)
				},
			},
		})
	})

	t.Run("date and description validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing date",
				mutate: func(b *builder.AppointmentBuilder) { b.AppointmentDate = time.Time{} },
				errIs:  appointment.ErrMissingDate,
			},
			{
				name:   "empty description is allowed",
				mutate: func(b *builder.AppointmentBuilder) { b.Description = "" },
			},
			{
				name: "description over limit",
				mutate: func(b *builder.AppointmentBuilder) {
					b.Description = strings.Repeat("x", appointment.MaxDescriptionLength+1)
				},
				errIs: appointment.ErrDescriptionTooLong,
			},
		})
	})

	t.Run("status validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "completed",
				mutate: func(b *builder.AppointmentBuilder) { b.Status = "Completed" },
			},
			{
				name:   "cancelled",
				mutate: func(b *builder.AppointmentBuilder) { b.Status = "Cancelled" },
			},
			{
				name:   "unknown status",
				mutate: func(b *builder.AppointmentBuilder) { b.Status = "Pending" },
				errIs:  appointment.ErrInvalidStatus,
			},
			{
				name:   "status is case sensitive",
				mutate: func(b *builder.AppointmentBuilder) { b.Status = "scheduled" },
				errIs:  appointment.ErrInvalidStatus,
			},
		})
	})

	t.Run("empty status defaults to Scheduled", func(t *testing.T) {
		actual, err := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.Status = "" }).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, appointment.StatusScheduled, actual.Status())
	})

	t.Run("fields are trimmed and the date normalized to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+9", 9*60*60)
		date := time.Date(2025, 4, 1, 18, 0, 0, 0, loc)
		actual, err := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.PatientName = "  Jane Doe  "
			b.Description = " note "
			b.AppointmentDate = date
		}).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", actual.PatientName().String())
		assert.Equal(t, "note", actual.Description().String())
		assert.Equal(t, time.UTC, actual.AppointmentDate().Location())
		assert.True(t, actual.AppointmentDate().Equal(date))
	})
}

func TestAppointment_Replace(t *testing.T) {
	later := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("replaces every mutable field", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.Status = "Completed" }).BuildPersisted()
		createdAt := appt.CreatedAt()

		err := appt.Replace(appointment.Fields{
			PatientName:     "John Roe",
			AppointmentDate: later.Add(time.Hour),
		}, later)
		require.NoError(t, err)

		assert.Equal(t, int64(1), appt.ID())
		assert.Equal(t, "John Roe", appt.PatientName().String())
		assert.True(t, appt.Description().IsEmpty())
		assert.Equal(t, appointment.StatusScheduled, appt.Status(), "omitted status resets to Scheduled")
		assert.Equal(t, createdAt, appt.CreatedAt())
		assert.Equal(t, later, appt.UpdatedAt())
	})

	t.Run("invalid replacement leaves the appointment untouched", func(t *testing.T) {
		appt := builder.NewAppointmentBuilder().BuildPersisted()
		err := appt.Replace(appointment.Fields{PatientName: "", AppointmentDate: later}, later)
		require.ErrorIs(t, err, appointment.ErrEmptyPatientName)
		assert.Equal(t, "Jane Doe", appt.PatientName().String())
		assert.NotEqual(t, later, appt.UpdatedAt())
	})
}

func TestAppointment_AssignID(t *testing.T) {
	appt, err := builder.NewAppointmentBuilder().BuildDomain()
	require.NoError(t, err)

	require.NoError(t, appt.AssignID(42))
	assert.Equal(t, int64(42), appt.ID())
	assert.NoError(t, appt.AssignID(42), "re-assigning the same id is a no-op")
	assert.ErrorIs(t, appt.AssignID(43), appointment.ErrIdentityReassigned)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewAppointmentBuilder()
			tc.mutate(b)
			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
