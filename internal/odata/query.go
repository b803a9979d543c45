package odata

import (
	"net/url"
	"strconv"
)

// Query — параметры OData запроса. Пустые значения не передаются.
type Query struct {
	Filter  string
	OrderBy string
	Expand  string
	Top     int
	Skip    int
}

// Values кодирует параметры как URL-параметры без изменений синтаксиса OData.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Filter != "" {
		v.Set("$filter", q.Filter)
	}
	if q.OrderBy != "" {
		v.Set("$orderby", q.OrderBy)
	}
	if q.Top > 0 {
		v.Set("$top", strconv.Itoa(q.Top))
	}
	if q.Skip > 0 {
		v.Set("$skip", strconv.Itoa(q.Skip))
	}
	if q.Expand != "" {
		v.Set("$expand", q.Expand)
	}
	return v
}
