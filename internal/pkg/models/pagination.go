package models

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Pagination holds limit/offset paging parameters
type Pagination struct {
	Limit  int `json:"limit" query:"limit"`
	Offset int `json:"offset" query:"offset"`
}

// Normalize clamps paging parameters into the supported range
func (p Pagination) Normalize() Pagination {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
