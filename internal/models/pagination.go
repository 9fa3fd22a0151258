package models

// DefaultLimit is the window size applied when a listing request carries
// no usable limit.
const DefaultLimit = 10

// Pagination carries the limit/offset query parameters of a listing
// request. Negative values are rejected at the HTTP boundary by the
// validator; Window only fills in defaults.
type Pagination struct {
	Limit  int `query:"limit" json:"limit" validate:"omitempty,gt=0"`
	Offset int `query:"offset" json:"offset" validate:"omitempty,gte=0"`
}

// Window resolves the effective limit and offset: limit defaults to
// DefaultLimit when absent or non-positive, offset to 0. No upper bound
// is imposed on limit.
func (p Pagination) Window() (limit, offset int) {
	limit = p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	offset = p.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
