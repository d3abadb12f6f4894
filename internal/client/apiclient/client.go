package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const maxBodyBytes = 4 << 20

type Client struct {
	http    *http.Client
	baseURL *url.URL
	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Client)

// WithHTTPClient sets the underlying client; its Transport is normally a
// resilience.Transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithTimeout bounds each logical call, retries included.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New builds a client rooted at baseURL joined with apiPrefix (e.g. /api/v1).
func New(baseURL, apiPrefix string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/" + strings.Trim(apiPrefix, "/"))
	if err != nil {
		return nil, &Error{Kind: KindUnexpected, Message: "invalid base url", Err: err}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &Error{Kind: KindUnexpected, Message: "invalid base url: " + baseURL}
	}

	c := &Client{
		http:    http.DefaultClient,
		baseURL: u,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Client) ListAppointments(ctx context.Context, params ListParams) (*Page[Appointment], error) {
	q := url.Values{}
	if params.SearchTerm != "" {
		q.Set("searchTerm", params.SearchTerm)
	}
	if params.PageNumber > 0 {
		q.Set("pageNumber", strconv.Itoa(params.PageNumber))
	}
	if params.PageSize > 0 {
		q.Set("pageSize", strconv.Itoa(params.PageSize))
	}

	status, body, err := c.send(ctx, http.MethodGet, "appointments", q, nil)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, fromProblem(status, body)
	}

	empty := &Page[Appointment]{Items: []Appointment{}, PageNumber: params.PageNumber, PageSize: params.PageSize}
	if isEmptyBody(body) {
		return empty, nil
	}
	var page Page[Appointment]
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, &Error{Kind: KindUnexpected, StatusCode: status, Message: msgInvalidResponse, Err: err}
	}
	if page.Items == nil {
		page.Items = []Appointment{}
	}
	return &page, nil
}

// GetAppointment reports found=false, without error, when the server answers 404.
func (c *Client) GetAppointment(ctx context.Context, id int64) (Appointment, bool, error) {
	status, body, err := c.send(ctx, http.MethodGet, appointmentPath(id), nil, nil)
	if err != nil {
		return Appointment{}, false, err
	}
	if status == http.StatusNotFound {
		return Appointment{}, false, nil
	}
	if !isSuccess(status) {
		return Appointment{}, false, fromProblem(status, body)
	}

	a, err := decodeAppointment(status, body)
	if err != nil {
		return Appointment{}, false, err
	}
	return *a, true, nil
}

func (c *Client) CreateAppointment(ctx context.Context, in AppointmentInput) (*Appointment, error) {
	status, body, err := c.send(ctx, http.MethodPost, "appointments", nil, in)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) {
		return nil, fromProblem(status, body)
	}
	return decodeAppointment(status, body)
}

func (c *Client) UpdateAppointment(ctx context.Context, id int64, in AppointmentInput) (*Appointment, error) {
	status, body, err := c.send(ctx, http.MethodPut, appointmentPath(id), nil, in)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, &Error{Kind: KindNotFound, StatusCode: status, Message: "appointment " + strconv.FormatInt(id, 10) + " was not found"}
	}
	if !isSuccess(status) {
		return nil, fromProblem(status, body)
	}
	return decodeAppointment(status, body)
}

// DeleteAppointment reports false, without error, when nothing was deleted.
func (c *Client) DeleteAppointment(ctx context.Context, id int64) (bool, error) {
	status, body, err := c.send(ctx, http.MethodDelete, appointmentPath(id), nil, nil)
	if err != nil {
		return false, err
	}
	if status == http.StatusNotFound {
		return false, nil
	}
	if !isSuccess(status) {
		return false, fromProblem(status, body)
	}
	return true, nil
}

// send performs one logical call and returns the status with the fully read
// body. Every failure is an *Error.
func (c *Client) send(ctx context.Context, method, path string, query url.Values, payload any) (int, []byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	u := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, &Error{Kind: KindUnexpected, Message: "could not encode request", Err: err}
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return 0, nil, &Error{Kind: KindUnexpected, Message: "could not build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("api request", "method", method, "url", u.Redacted())
	resp, err := c.http.Do(req)
	if err != nil {
		apiErr := fromTransportError(err)
		c.logger.Debug("api request failed", "method", method, "url", u.Redacted(), "kind", apiErr.Kind, "error", err)
		return 0, nil, apiErr
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if ctx.Err() != nil {
			return 0, nil, fromTransportError(ctx.Err())
		}
		return 0, nil, &Error{Kind: KindTransport, StatusCode: resp.StatusCode, Message: "could not read response", Err: err}
	}
	c.logger.Debug("api response", "method", method, "url", u.Redacted(), "status", resp.StatusCode)
	return resp.StatusCode, data, nil
}

func decodeAppointment(status int, body []byte) (*Appointment, error) {
	if isEmptyBody(body) {
		return nil, &Error{Kind: KindUnexpected, StatusCode: status, Message: msgInvalidResponse}
	}
	var a Appointment
	if err := json.Unmarshal(body, &a); err != nil {
		return nil, &Error{Kind: KindUnexpected, StatusCode: status, Message: msgInvalidResponse, Err: err}
	}
	return &a, nil
}

func appointmentPath(id int64) string {
	return "appointments/" + strconv.FormatInt(id, 10)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func isEmptyBody(body []byte) bool {
	trimmed := bytes.TrimSpace(body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
