package models

// ListQuery captures the query state of one list page. Page is 1-based;
// PageSize is fixed per list instance and never operator-editable.
type ListQuery struct {
	Page      int
	PageSize  int
	Search    string
	Filters   map[string]string
	SortBy    string
	SortOrder string
}

// WithFilter returns a copy of the query with one filter entry replaced.
// An empty value removes the entry.
func (q ListQuery) WithFilter(key, value string) ListQuery {
	filters := make(map[string]string, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	if value == "" {
		delete(filters, key)
	} else {
		filters[key] = value
	}
	q.Filters = filters
	return q
}

// TotalPages computes the page count for a known total, never below 1.
func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	pages := (totalCount + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Pagination contains pagination metadata attached to list snapshots.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
