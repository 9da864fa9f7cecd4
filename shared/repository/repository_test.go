package repository

import (
	"testing"

	"lbm/infras/otel/mocks"
	"lbm/shared/model"
)

type sortEntity struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Status  string `db:"status"`
	Display string `db:"display" column:"display_name"`
	model.Metadata
}

func TestSortColumn(t *testing.T) {
	repo := NewRepository[sortEntity]("booking", "bookings", "id", nil, mocks.NewOtel())

	tests := []struct {
		name     string
		sortBy   string
		expected string
		ok       bool
	}{
		{
			name:     "primary column",
			sortBy:   "id",
			expected: "bookings.id",
			ok:       true,
		},
		{
			name:     "metadata column",
			sortBy:   "created_at",
			expected: "bookings.created_at",
			ok:       true,
		},
		{
			name:     "aliased column resolves to its source column",
			sortBy:   "display",
			expected: "bookings.display_name",
			ok:       true,
		},
		{
			name:   "unknown column",
			sortBy: "phone",
		},
		{
			name:   "statement payload",
			sortBy: "created_at; DROP TABLE bookings",
		},
		{
			name:   "expression payload",
			sortBy: "(SELECT 1)",
		},
		{
			name:   "empty",
			sortBy: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column, ok := repo.sortColumn(tt.sortBy)

			if ok != tt.ok {
				t.Errorf("expected ok to be %v, got %v", tt.ok, ok)
			}

			if column != tt.expected {
				t.Errorf("expected column %q, got %q", tt.expected, column)
			}
		})
	}
}
