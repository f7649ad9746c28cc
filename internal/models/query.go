package models

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// ListQuery captures the full parameter set of a list fetch. Two queries with
// equal keys are interchangeable; anything that changes the result set must
// be reflected in Key().
type ListQuery struct {
	Page    int
	Limit   int
	Search  string
	Filters map[string]string
}

// Normalize clamps page and limit into valid bounds.
func (q ListQuery) Normalize(defaultLimit, maxLimit int) ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if maxLimit > 0 && q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	return q
}

// Key returns a canonical cache key for the parameter set. Filter keys are
// sorted so insertion order never produces distinct keys.
func (q ListQuery) Key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "page=%d&limit=%d", q.Page, q.Limit)
	if q.Search != "" {
		fmt.Fprintf(&b, "&q=%s", url.QueryEscape(q.Search))
	}
	if len(q.Filters) > 0 {
		keys := make([]string, 0, len(q.Filters))
		for k, v := range q.Filters {
			if v == "" {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "&%s=%s", url.QueryEscape(k), url.QueryEscape(q.Filters[k]))
		}
	}
	return b.String()
}

// Values renders the query as upstream URL parameters.
func (q ListQuery) Values() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("limit", strconv.Itoa(q.Limit))
	if q.Search != "" {
		values.Set("q", q.Search)
	}
	for k, v := range q.Filters {
		if v != "" {
			values.Set(k, v)
		}
	}
	return values
}

// PageInfo is the pagination metadata returned with list responses. HasNext
// is a heuristic: the upstream API exposes no total count, so a full page is
// read as "probably more". At exact page-size boundaries this can enable a
// next page that turns out empty; that is a documented limitation.
type PageInfo struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasPrev bool `json:"has_prev"`
	HasNext bool `json:"has_next"`
}

// NewPageInfo derives pagination metadata from the fetched page.
func NewPageInfo(q ListQuery, fetched int) *PageInfo {
	return &PageInfo{
		Page:    q.Page,
		Limit:   q.Limit,
		HasPrev: q.Page > 1,
		HasNext: fetched == q.Limit,
	}
}
