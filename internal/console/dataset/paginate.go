package dataset

import "github.com/novalend/console/internal/console/domain"

// PageInfo is the pagination metadata for one page of results.
type PageInfo struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// Page is one size-bounded slice of the (possibly filtered) collection.
type Page struct {
	Users      []domain.User `json:"users"`
	Pagination PageInfo      `json:"pagination"`
}

// Paginate slices users into the 1-indexed page of the given size. Pages
// past the end yield an empty slice without error; no clamping is done, so
// callers wanting non-empty results must stay in range. pageSize larger
// than the collection returns everything as page 1.
func Paginate(users []domain.User, page, pageSize int) Page {
	total := len(users)

	rawStart := (page - 1) * pageSize
	rawEnd := rawStart + pageSize

	start, end := rawStart, rawEnd
	if start < 0 || start > total {
		start, end = total, total
	} else if end > total {
		end = total
	}

	totalPages := 0
	if total > 0 && pageSize > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return Page{
		Users: users[start:end],
		Pagination: PageInfo{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    rawEnd < total,
			HasPrev:    page > 1,
		},
	}
}
