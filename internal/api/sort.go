package api

// SortSpec is the sorting contract of one resource.
type SortSpec struct {
	// Allowed lists the field names accepted as sort keys.
	Allowed []string
	// Default is used when the requested field is not allowed.
	Default    string
	DefaultDir SortDir
	// ClientSide resources sort locally; sort parameters never reach the wire.
	ClientSide bool
}

// Allows reports whether field is in the allow-list.
func (s SortSpec) Allows(field string) bool {
	for _, f := range s.Allowed {
		if f == field {
			return true
		}
	}
	return false
}

// Resolve maps a requested field and direction onto the allow-list. A
// rejected field falls back to the default field and direction together.
func (s SortSpec) Resolve(field string, dir SortDir) (string, SortDir) {
	defDir := s.DefaultDir
	if !defDir.Valid() {
		defDir = SortDesc
	}

	if !s.Allows(field) {
		return s.Default, defDir
	}
	if !dir.Valid() {
		dir = defDir
	}
	return field, dir
}

// Apply resolves q's sort fields in place.
func (s SortSpec) Apply(q *ListQuery) {
	q.SortBy, q.SortDir = s.Resolve(q.SortBy, q.SortDir)
}
