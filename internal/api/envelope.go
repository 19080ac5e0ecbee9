package api

import (
	"bytes"
	"encoding/json"
)

// PageMeta is the pagination block some list endpoints attach.
type PageMeta struct {
	Page     int `json:"page" yaml:"page"`
	PageSize int `json:"pageSize" yaml:"pageSize"`
	Total    int `json:"total" yaml:"total"`
	Pages    int `json:"pages" yaml:"pages"`
}

// ListResult is the normalized page every list operation returns.
type ListResult[T any] struct {
	Data  []T       `json:"data" yaml:"data"`
	Total int       `json:"total" yaml:"total"`
	Meta  *PageMeta `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// Pages returns the page count for pageSize, at least 1.
func (r ListResult[T]) Pages(pageSize int) int {
	if pageSize <= 0 || r.Total <= 0 {
		return 1
	}
	return (r.Total + pageSize - 1) / pageSize
}

// EnvelopeKind tags the shape a list body was resolved to.
type EnvelopeKind int

const (
	// EnvelopeWithMeta bodies carry a numeric meta.total.
	EnvelopeWithMeta EnvelopeKind = iota + 1
	// BareArray bodies carry data only; the page is all there is.
	BareArray
)

func (k EnvelopeKind) String() string {
	switch k {
	case EnvelopeWithMeta:
		return "envelope-with-meta"
	case BareArray:
		return "bare-array"
	default:
		return "unknown"
	}
}

// Envelope is a list body resolved into one of the EnvelopeKind shapes.
type Envelope struct {
	Kind    EnvelopeKind
	Data    json.RawMessage
	Meta    *PageMeta
	Message string
}

type rawEnvelope struct {
	Status  json.RawMessage `json:"status"`
	Message json.RawMessage `json:"message"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

// ParseEnvelope resolves body into an Envelope. A body without a data field
// is a *ShapeError.
func ParseEnvelope(body []byte) (*Envelope, error) {
	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, &ShapeError{Field: "data", Body: body}
	}
	if !isPresent(raw.Data) {
		return nil, &ShapeError{Field: "data", Body: body}
	}

	env := &Envelope{Kind: BareArray, Data: raw.Data}
	if isPresent(raw.Message) {
		_ = json.Unmarshal(raw.Message, &env.Message)
	}

	if meta, ok := parseMeta(raw.Meta); ok {
		env.Kind = EnvelopeWithMeta
		env.Meta = meta
	}
	return env, nil
}

// parseMeta reports whether raw is an object whose total is a JSON number.
func parseMeta(raw json.RawMessage) (*PageMeta, bool) {
	if !isPresent(raw) {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	rawTotal := bytes.TrimSpace(fields["total"])
	if len(rawTotal) == 0 || rawTotal[0] == '"' {
		return nil, false
	}
	var total json.Number
	if err := json.Unmarshal(rawTotal, &total); err != nil {
		return nil, false
	}
	n, err := total.Float64()
	if err != nil {
		return nil, false
	}

	meta := &PageMeta{Total: int(n)}
	decodeInt(fields["page"], &meta.Page)
	decodeInt(fields["pageSize"], &meta.PageSize)
	decodeInt(fields["pages"], &meta.Pages)
	return meta, true
}

func decodeInt(raw json.RawMessage, dst *int) {
	var n json.Number
	if json.Unmarshal(raw, &n) != nil {
		return
	}
	if f, err := n.Float64(); err == nil {
		*dst = int(f)
	}
}

// Normalize unwraps a list body into a ListResult. Total is meta.total when
// present, otherwise the number of rows in data.
func Normalize[T any](body []byte) (ListResult[T], error) {
	var res ListResult[T]

	env, err := ParseEnvelope(body)
	if err != nil {
		return res, err
	}

	if bytes.Equal(bytes.TrimSpace(env.Data), []byte("[]")) {
		res.Data = []T{}
	} else if err := json.Unmarshal(env.Data, &res.Data); err != nil {
		return res, &ShapeError{Field: "data", Body: body}
	}

	switch env.Kind {
	case EnvelopeWithMeta:
		res.Total = env.Meta.Total
		res.Meta = env.Meta
	default:
		res.Total = len(res.Data)
	}
	return res, nil
}

// Detail is a single-entity body: the data object plus any sibling fields.
type Detail[T any] struct {
	Data   T
	Extras map[string]json.RawMessage
}

// Extra decodes the sibling field key into dst. It reports false when the
// field is absent or does not decode.
func (d Detail[T]) Extra(key string, dst interface{}) bool {
	raw, ok := d.Extras[key]
	if !ok || !isPresent(raw) {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// NormalizeDetail unwraps {data: T, ...extras}.
func NormalizeDetail[T any](body []byte) (Detail[T], error) {
	var d Detail[T]

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return d, &ShapeError{Field: "data", Body: body}
	}
	raw, ok := fields["data"]
	if !ok || !isPresent(raw) {
		return d, &ShapeError{Field: "data", Body: body}
	}
	if err := json.Unmarshal(raw, &d.Data); err != nil {
		return d, &ShapeError{Field: "data", Body: body}
	}

	delete(fields, "data")
	d.Extras = fields
	return d, nil
}
