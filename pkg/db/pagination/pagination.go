package pagination

import "strings"

// Pagination is the page/limit request contract shared by list endpoints.
type Pagination struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=15" validate:"gte=1,lte=250"` // Min 1, Max 250
}

const (
	defaultLimit = 15
	maxLimit     = 250
)

// Normalize clamps page and limit into their valid ranges.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > maxLimit {
		p.Limit = maxLimit
	}
	return p
}

// Offset returns the row offset for the normalized page.
func (p Pagination) Offset() int {
	n := p.Normalize()
	return (n.Page - 1) * n.Limit
}

// TotalPages returns the page count for a total row count.
func (p Pagination) TotalPages(total int64) int {
	n := p.Normalize()
	pages := int(total) / n.Limit
	if int(total)%n.Limit != 0 {
		pages++
	}
	return pages
}

// Sort is a sortColumn/sortDirection pair validated against a whitelist.
type Sort struct {
	Column    string `form:"sortColumn"`
	Direction string `form:"sortDirection"`
}

// OrderBy returns a SQL ORDER BY expression, falling back to the default
// column when the requested column is not in the whitelist. Unknown
// directions fall back to desc.
func (s Sort) OrderBy(allowed map[string]bool, def string) string {
	column := strings.TrimSpace(s.Column)
	if column == "" || !allowed[column] {
		column = def
	}
	direction := strings.ToLower(strings.TrimSpace(s.Direction))
	if direction != "asc" {
		direction = "desc"
	}
	return column + " " + direction
}
