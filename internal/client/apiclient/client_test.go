//go:build unit

package apiclient_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"appointment-system/internal/client/apiclient"
	"appointment-system/internal/client/resilience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, handler http.HandlerFunc, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := apiclient.New(srv.URL, "/api/v1", opts...)
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var sample = apiclient.Appointment{
	ID:              7,
	PatientName:     "Jane Doe",
	AppointmentDate: time.Date(2030, 1, 2, 9, 30, 0, 0, time.UTC),
	Status:          "Scheduled",
}

func TestNew(t *testing.T) {
	_, err := apiclient.New("not a url", "/api/v1")
	assert.Error(t, err)

	_, err = apiclient.New("http://localhost:8080/", "api/v1/")
	assert.NoError(t, err)
}

func TestClient_ListAppointments(t *testing.T) {
	ctx := context.Background()

	t.Run("query parameters and decoding", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/appointments", r.URL.Path)
			assert.Equal(t, "doe", r.URL.Query().Get("searchTerm"))
			assert.Equal(t, "2", r.URL.Query().Get("pageNumber"))
			assert.Equal(t, "10", r.URL.Query().Get("pageSize"))
			writeJSON(w, 200, apiclient.Page[apiclient.Appointment]{
				Items: []apiclient.Appointment{sample}, TotalCount: 11, PageNumber: 2, PageSize: 10, TotalPages: 2,
			})
		})

		page, err := c.ListAppointments(ctx, apiclient.ListParams{SearchTerm: "doe", PageNumber: 2, PageSize: 10})
		require.NoError(t, err)
		assert.Equal(t, int64(11), page.TotalCount)
		require.Len(t, page.Items, 1)
		assert.Equal(t, sample, page.Items[0])
	})

	t.Run("zero params leave defaults to the server", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Empty(t, r.URL.RawQuery)
			writeJSON(w, 200, map[string]any{"items": nil, "totalCount": 0})
		})

		page, err := c.ListAppointments(ctx, apiclient.ListParams{})
		require.NoError(t, err)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})

	t.Run("empty body yields an empty page", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "null")
		})

		page, err := c.ListAppointments(ctx, apiclient.ListParams{PageNumber: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
		assert.Equal(t, 20, page.PageSize)
	})

	t.Run("malformed body is an unexpected error", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "{oops")
		})

		_, err := c.ListAppointments(ctx, apiclient.ListParams{})
		assert.True(t, apiclient.IsKind(err, apiclient.KindUnexpected))
	})
}

func TestClient_GetAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/appointments/7", r.URL.Path)
			writeJSON(w, 200, sample)
		})

		got, found, err := c.GetAppointment(ctx, 7)
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, sample, got)
	})

	t.Run("404 is the absent sentinel, not an error", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, 404, map[string]any{"status": 404, "title": "Not found"})
		})

		got, found, err := c.GetAppointment(ctx, 7)
		require.NoError(t, err)
		assert.False(t, found)
		assert.Zero(t, got)
	})

	t.Run("unparseable error body", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "<html>boom</html>")
		})

		_, _, err := c.GetAppointment(ctx, 7)
		require.Error(t, err)
		assert.Equal(t, "server error: 500", err.Error())
	})
}

func TestClient_CreateAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("sends the payload and decodes the result", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Jane Doe", body["patientName"])
			assert.NotContains(t, body, "description")
			assert.NotContains(t, body, "status")
			writeJSON(w, 201, sample)
		})

		got, err := c.CreateAppointment(ctx, apiclient.AppointmentInput{PatientName: "Jane Doe", AppointmentDate: sample.AppointmentDate})
		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
	})

	t.Run("validation problems become a field map", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, 400, map[string]any{
				"status": 400,
				"title":  "One or more validation errors occurred.",
				"errors": map[string][]string{
					"patientName":     {"patientName is required"},
					"appointmentDate": {"appointmentDate is required"},
				},
			})
		})

		got, err := c.CreateAppointment(ctx, apiclient.AppointmentInput{})
		assert.Nil(t, got)
		require.True(t, apiclient.IsKind(err, apiclient.KindValidation))

		var apiErr *apiclient.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.StatusCode)
		assert.Equal(t, []string{"patientName is required"}, apiErr.ValidationErrors["patientName"])
		assert.Equal(t,
			"One or more validation errors occurred.; appointmentDate: appointmentDate is required; patientName: patientName is required",
			apiErr.Error())
	})

	t.Run("success without a body is an invalid response", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})

		got, err := c.CreateAppointment(ctx, apiclient.AppointmentInput{PatientName: "x"})
		assert.Nil(t, got)
		require.Error(t, err)
		assert.True(t, apiclient.IsKind(err, apiclient.KindUnexpected))
		assert.Equal(t, "invalid response from server", err.Error())
	})

	t.Run("problem detail is used as the message", func(t *testing.T) {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, 409, map[string]any{"status": 409, "title": "Conflict", "detail": "slot already taken"})
		})

		_, err := c.CreateAppointment(ctx, apiclient.AppointmentInput{PatientName: "x"})
		require.Error(t, err)
		assert.Equal(t, "slot already taken", err.Error())
	})
}

func TestClient_UpdateAppointment(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		writeJSON(w, 404, map[string]any{"status": 404, "title": "Not found"})
	})

	_, err := c.UpdateAppointment(context.Background(), 9, apiclient.AppointmentInput{PatientName: "x"})
	assert.True(t, apiclient.IsKind(err, apiclient.KindNotFound))
	assert.Contains(t, err.Error(), "9")
}

func TestClient_DeleteAppointment(t *testing.T) {
	var deleted atomic.Bool
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		if deleted.Swap(true) {
			writeJSON(w, 404, map[string]any{"status": 404, "title": "Not found"})
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	ctx := context.Background()

	ok, err := c.DeleteAppointment(ctx, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.DeleteAppointment(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_ResilienceErrors(t *testing.T) {
	ctx := context.Background()
	cfg := resilience.Config{MaxRetries: 1, BaseDelay: time.Millisecond, FailureThreshold: 2, BreakDuration: time.Minute}

	var calls atomic.Int32
	transport := resilience.NewTransport(http.DefaultTransport, cfg)
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, apiclient.WithHTTPClient(&http.Client{Transport: transport}))

	for i := 0; i < 2; i++ {
		_, err := c.ListAppointments(ctx, apiclient.ListParams{})
		require.True(t, apiclient.IsKind(err, apiclient.KindTransient), "call %d: %v", i+1, err)

		var apiErr *apiclient.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	}
	assert.Equal(t, int32(4), calls.Load())

	_, err := c.ListAppointments(ctx, apiclient.ListParams{})
	assert.True(t, apiclient.IsKind(err, apiclient.KindCircuitOpen))
	assert.Equal(t, int32(4), calls.Load())
}

func TestClient_TimeoutsAndCancellation(t *testing.T) {
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	handler := func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-block:
		case <-r.Context().Done():
		}
	}

	t.Run("timeout is transient", func(t *testing.T) {
		c := newClient(t, handler, apiclient.WithTimeout(20*time.Millisecond))
		_, _, err := c.GetAppointment(context.Background(), 1)
		assert.True(t, apiclient.IsKind(err, apiclient.KindTransient), "%v", err)
	})

	t.Run("caller cancellation is reported as such", func(t *testing.T) {
		c := newClient(t, handler)
		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(20*time.Millisecond, cancel)
		_, err := c.DeleteAppointment(ctx, 1)
		assert.True(t, apiclient.IsKind(err, apiclient.KindCancelled), "%v", err)
	})

	t.Run("unreachable server is a transport error", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c, err := apiclient.New(url, "/api/v1")
		require.NoError(t, err)
		_, err = c.ListAppointments(context.Background(), apiclient.ListParams{})
		assert.True(t, apiclient.IsKind(err, apiclient.KindTransport), "%v", err)
	})
}
