package dto

import "fmt"

// PageLink is one navigation entry in the pagination envelope; URL is nil
// for disabled prev/next links.
type PageLink struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// PaginatedMoviesResponse wraps one page of movies with the metadata the UI
// pager consumes.
type PaginatedMoviesResponse struct {
	Data        []MovieResponse `json:"data"`
	CurrentPage int             `json:"current_page"`
	LastPage    int             `json:"last_page"`
	PerPage     int             `json:"per_page"`
	Total       int64           `json:"total"`
	Links       []PageLink      `json:"links"`
}

func NewPaginatedMoviesResponse(data []MovieResponse, basePath string, page, pageSize int, total int64) PaginatedMoviesResponse {
	lastPage := int(total) / pageSize
	if int(total)%pageSize != 0 {
		lastPage++
	}
	if lastPage < 1 {
		lastPage = 1
	}

	return PaginatedMoviesResponse{
		Data:        data,
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     pageSize,
		Total:       total,
		Links:       buildLinks(basePath, page, lastPage),
	}
}

// buildLinks produces prev, one numbered link per page, and next. Prev/next
// are disabled (nil url) at the edges; the current page is marked active.
func buildLinks(basePath string, page, lastPage int) []PageLink {
	links := make([]PageLink, 0, lastPage+2)

	prev := PageLink{Label: "&laquo; Previous"}
	if page > 1 {
		prev.URL = pageURL(basePath, page-1)
	}
	links = append(links, prev)

	for p := 1; p <= lastPage; p++ {
		links = append(links, PageLink{
			URL:    pageURL(basePath, p),
			Label:  fmt.Sprintf("%d", p),
			Active: p == page,
		})
	}

	next := PageLink{Label: "Next &raquo;"}
	if page < lastPage {
		next.URL = pageURL(basePath, page+1)
	}
	links = append(links, next)

	return links
}

func pageURL(basePath string, page int) *string {
	sep := "?"
	for _, r := range basePath {
		if r == '?' {
			sep = "&"
			break
		}
	}
	u := fmt.Sprintf("%s%spage=%d", basePath, sep, page)
	return &u
}
