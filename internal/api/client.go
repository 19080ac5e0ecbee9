package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/billboardhub/bbadmin/internal/config"
)

// Client is the single configured request sender every service goes through.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// Retries bounds how often an idempotent request is retried after a
	// transport failure.
	Retries int
	cookie  string
}

// Option configures a Client
type Option func(*Client)

// WithTimeout sets the transport timeout
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.HTTPClient.Timeout = d
	}
}

// WithRetries sets the retry budget for idempotent requests
func WithRetries(n int) Option {
	return func(c *Client) {
		c.Retries = n
	}
}

// WithCookie forwards the session cookie on every request
func WithCookie(cookie string) Option {
	return func(c *Client) {
		c.cookie = cookie
	}
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// NewClient creates a new API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FromConfig creates a client from the loaded configuration
func FromConfig(cfg *config.Config) *Client {
	return NewClient(cfg.Server.URL,
		WithTimeout(cfg.Timeout()),
		WithRetries(cfg.Server.Retries),
		WithCookie(cfg.Auth.Cookie),
	)
}

// Cookie returns the forwarded session cookie
func (c *Client) Cookie() string {
	return c.cookie
}

// SetCookie replaces the forwarded session cookie
func (c *Client) SetCookie(cookie string) {
	c.cookie = cookie
}

// Request describes one backend call. Body is JSON encoded unless it is a
// *FormData, which is sent as multipart.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

// Response is a fully read backend response
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	Cookies    []*http.Cookie
}

// IsSuccess checks if the response indicates success (2xx status code)
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Do sends req and returns the response. Non-2xx statuses come back as
// *BackendRejection when the body is structured, *TransportError otherwise.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	if req.Method == "" {
		req.Method = http.MethodGet
	}

	var resp *Response
	op := func() error {
		r, err := c.send(ctx, req)
		if err != nil {
			var te *TransportError
			if errors.As(err, &te) && te.StatusCode == 0 && ctx.Err() == nil {
				return err
			}
			return backoff.Permanent(err)
		}
		resp = r
		return nil
	}

	if !isIdempotent(req.Method) || req.isMultipart() || c.Retries <= 0 {
		err := op()
		var perm *backoff.PermanentError
		if errors.As(err, &perm) {
			return nil, perm.Err
		}
		return resp, err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), uint64(c.Retries)),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		log.Debug().
			Str("method", req.Method).
			Str("path", req.Path).
			Dur("wait", wait).
			Err(err).
			Msg("retrying request")
	}
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) send(ctx context.Context, req Request) (*Response, error) {
	target := c.BaseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: target, Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: target, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if c.cookie != "" {
		httpReq.Header.Set("Cookie", c.cookie)
	}

	log.Debug().
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", target).
		Msg("making HTTP request")

	start := time.Now()
	httpResp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		log.Debug().
			Str("request_id", requestID).
			Str("url", target).
			Err(err).
			Msg("HTTP request failed")
		return nil, &TransportError{Method: req.Method, URL: target, Err: err}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: target, StatusCode: httpResp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	log.Debug().
		Str("request_id", requestID).
		Int("status_code", httpResp.StatusCode).
		Int("body_length", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("received HTTP response")

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
		Cookies:    httpResp.Cookies(),
	}
	if resp.IsSuccess() {
		return resp, nil
	}

	statusErr := fmt.Errorf("Request failed with status code %d", httpResp.StatusCode)
	if _, structured := parseErrorPayload(data); structured {
		return nil, &BackendRejection{
			StatusCode: httpResp.StatusCode,
			Message:    ExtractMessage(data, statusErr),
			Payload:    data,
		}
	}
	return nil, &TransportError{Method: req.Method, URL: target, StatusCode: httpResp.StatusCode, Err: statusErr}
}

// SessionCookie renders cookies as a Cookie header value
func SessionCookie(cookies []*http.Cookie) string {
	parts := make([]string, 0, len(cookies))
	for _, ck := range cookies {
		if ck.Name == "" || ck.MaxAge < 0 {
			continue
		}
		parts = append(parts, ck.Name+"="+ck.Value)
	}
	return strings.Join(parts, "; ")
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func (r Request) isMultipart() bool {
	_, ok := r.Body.(*FormData)
	return ok
}

func encodeBody(body interface{}) (io.Reader, string, error) {
	switch b := body.(type) {
	case nil:
		return nil, "", nil
	case *FormData:
		return b.encode()
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, "", fmt.Errorf("failed to marshal request: %w", err)
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// File is one attachment of a multipart body
type File struct {
	Field    string
	Filename string
	Content  []byte
}

type formField struct {
	key   string
	value string
}

// FormData is an ordered multipart body
type FormData struct {
	fields []formField
	files  []File
}

// NewFormData creates an empty multipart body
func NewFormData() *FormData {
	return &FormData{}
}

// Set appends key=value, skipping empty values
func (f *FormData) Set(key, value string) {
	if value == "" {
		return
	}
	f.fields = append(f.fields, formField{key: key, value: value})
}

// AddFile appends an attachment
func (f *FormData) AddFile(file File) {
	f.files = append(f.files, file)
}

// HasFiles reports whether any attachment was added
func (f *FormData) HasFiles() bool {
	return len(f.files) > 0
}

// Values returns the non-file fields
func (f *FormData) Values() url.Values {
	v := url.Values{}
	for _, fld := range f.fields {
		v.Add(fld.key, fld.value)
	}
	return v
}

func (f *FormData) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, fld := range f.fields {
		if err := w.WriteField(fld.key, fld.value); err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", fld.key, err)
		}
	}
	for _, file := range f.files {
		part, err := w.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return nil, "", fmt.Errorf("failed to attach %s: %w", file.Filename, err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return nil, "", fmt.Errorf("failed to attach %s: %w", file.Filename, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
