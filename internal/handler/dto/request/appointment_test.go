//go:build unit

package request_test

import (
	"strconv"
	"testing"

	reqdto "appointment-system/internal/handler/dto/request"
	"appointment-system/internal/pkg/errs"
	"appointment-system/internal/usecase/commands"
	"appointment-system/internal/usecase/queries"
	"appointment-system/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAppointmentsQuery_ToFilter(t *testing.T) {
	testCases := []struct {
		name    string
		query   reqdto.ListAppointmentsQuery
		want    queries.ListFilter
		invalid []string
	}{
		{name: "empty query leaves defaults to the query side", query: reqdto.ListAppointmentsQuery{}, want: queries.ListFilter{}},
		{
			name:  "all parameters",
			query: reqdto.ListAppointmentsQuery{SearchTerm: "doe", PageNumber: "3", PageSize: "100"},
			want:  queries.ListFilter{SearchTerm: "doe", PageNumber: 3, PageSize: 100},
		},
		{name: "page number zero", query: reqdto.ListAppointmentsQuery{PageNumber: "0"}, invalid: []string{"pageNumber"}},
		{name: "page number overflowing the offset", query: reqdto.ListAppointmentsQuery{PageNumber: "4611686018427387905"}, invalid: []string{"pageNumber"}},
		{
			name:    "page number past the last page for the size",
			query:   reqdto.ListAppointmentsQuery{PageNumber: strconv.Itoa(queries.MaxPageNumber(100) + 1), PageSize: "100"},
			invalid: []string{"pageNumber"},
		},
		{
			name:  "last page for the size",
			query: reqdto.ListAppointmentsQuery{PageNumber: strconv.Itoa(queries.MaxPageNumber(100)), PageSize: "100"},
			want:  queries.ListFilter{PageNumber: queries.MaxPageNumber(100), PageSize: 100},
		},
		{name: "page size over max", query: reqdto.ListAppointmentsQuery{PageSize: "101"}, invalid: []string{"pageSize"}},
		{name: "page size zero", query: reqdto.ListAppointmentsQuery{PageSize: "0"}, invalid: []string{"pageSize"}},
		{
			name:    "both malformed",
			query:   reqdto.ListAppointmentsQuery{PageNumber: "one", PageSize: "-1"},
			invalid: []string{"pageNumber", "pageSize"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, verr := tc.query.ToFilter()
			if len(tc.invalid) > 0 {
				require.NotNil(t, verr)
				assert.Equal(t, tc.invalid, verr.FieldNames())
				assert.Equal(t, queries.ListFilter{}, got)
				return
			}
			assert.Nil(t, verr)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseID(t *testing.T) {
	id, verr := reqdto.ParseID("17")
	require.Nil(t, verr)
	assert.Equal(t, int64(17), id)

	for _, raw := range []string{"", "0", "-1", "x", "9223372036854775808"} {
		_, verr := reqdto.ParseID(raw)
		require.NotNil(t, verr, raw)
		assert.Equal(t, []string{commands.FieldID}, verr.FieldNames(), raw)
	}

	t.Run("non-positive ids share the rule used by commands", func(t *testing.T) {
		_, parsed := reqdto.ParseID("0")
		rule := errs.NewValidationError()
		commands.ValidateID(0, rule)
		assert.Equal(t, rule.Error(), parsed.Error())
	})
}

func TestAppointmentRequest_ToCommand(t *testing.T) {
	req := builder.NewAppointmentBuilder().BuildCreateRequestDTO()
	req.Description = nil
	req.Status = nil

	cmd := req.ToCommand()
	assert.Equal(t, "Jane Doe", cmd.PatientName)
	assert.Empty(t, cmd.Description)
	assert.Empty(t, cmd.Status)
	require.NotNil(t, cmd.AppointmentDate)

	upd := builder.NewAppointmentBuilder().BuildUpdateRequestDTO().ToCommand(9)
	assert.Equal(t, int64(9), upd.ID)
	assert.Equal(t, "Scheduled", upd.Status)
	assert.Equal(t, "Annual check-up", upd.Description)
}
