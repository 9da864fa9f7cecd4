package booking

import (
	"net/http"
	"net/url"
	"reflect"
	"testing"

	"lbm/internal/domains/booking/model"
	gDto "lbm/shared/dto"
)

func listRequest(queryParams map[string]string) *http.Request {
	values := url.Values{}
	for key, value := range queryParams {
		values.Set(key, value)
	}

	return &http.Request{URL: &url.URL{RawQuery: values.Encode()}}
}

func TestBuildListFilter(t *testing.T) {
	searchFilters := func(search string) gDto.FilterGroup {
		return gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldName,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldEmail,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldPhone,
					Operator: gDto.FilterOperatorLike,
					Value:    search,
					Table:    model.TableName,
				},
			},
		}
	}

	tests := []struct {
		name        string
		queryParams map[string]string
		expected    []any
	}{
		{
			name:        "without parameters",
			queryParams: map[string]string{},
			expected:    []any{},
		},
		{
			name: "with status=all, service=all and empty search",
			queryParams: map[string]string{
				"status":  "all",
				"service": "all",
				"search":  "",
			},
			expected: []any{},
		},
		{
			name: "with concrete status",
			queryParams: map[string]string{
				"status": "confirmed",
			},
			expected: []any{
				gDto.Filter{
					Field:    model.FieldStatus,
					Operator: gDto.FilterOperatorEq,
					Value:    "confirmed",
					Table:    model.TableName,
				},
			},
		},
		{
			name: "with concrete service",
			queryParams: map[string]string{
				"service": "Dental Checkup",
			},
			expected: []any{
				gDto.Filter{
					Field:    model.FieldService,
					Operator: gDto.FilterOperatorEq,
					Value:    "Dental Checkup",
					Table:    model.TableName,
				},
			},
		},
		{
			name: "with search over name, email and phone",
			queryParams: map[string]string{
				"search": "jane",
			},
			expected: []any{searchFilters("jane")},
		},
		{
			name: "with status, service and search combined",
			queryParams: map[string]string{
				"status":  "pending",
				"service": "Consultation",
				"search":  "jane",
			},
			expected: []any{
				gDto.Filter{
					Field:    model.FieldStatus,
					Operator: gDto.FilterOperatorEq,
					Value:    "pending",
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldService,
					Operator: gDto.FilterOperatorEq,
					Value:    "Consultation",
					Table:    model.TableName,
				},
				searchFilters("jane"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filterGroup := buildListFilter(listRequest(tt.queryParams))

			if filterGroup.Operator != gDto.FilterGroupOperatorAnd {
				t.Errorf("expected operator %s, got %s", gDto.FilterGroupOperatorAnd, filterGroup.Operator)
			}

			if !reflect.DeepEqual(filterGroup.Filters, tt.expected) {
				t.Errorf("expected filters %#v, got %#v", tt.expected, filterGroup.Filters)
			}
		})
	}
}

func TestBuildListFilterAllMatchesNoFilter(t *testing.T) {
	unfiltered := buildListFilter(listRequest(map[string]string{}))
	allValues := buildListFilter(listRequest(map[string]string{
		"status":  "all",
		"service": "all",
		"search":  "",
	}))

	unfilteredWhere, _ := unfiltered.GetWhereClause()
	allValuesWhere, _ := allValues.GetWhereClause()

	if unfilteredWhere != allValuesWhere {
		t.Errorf("expected identical where clauses, got %q and %q", unfilteredWhere, allValuesWhere)
	}

	if allValuesWhere != "" {
		t.Errorf("expected empty where clause, got %q", allValuesWhere)
	}
}
