package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"lbm/shared/model"
)

const (
	TableName  = "page_contents"
	EntityName = "content"

	FieldID      = "id"
	FieldPageKey = "page_key"
	FieldFields  = "fields"

	PageHome     = "home"
	PageAbout    = "about"
	PageContact  = "contact"
	PageServices = "services"
)

// Pages lists the pages the admin editor renders. The API itself accepts any
// caller-defined page key; storage validates nothing about keys or fields.
var Pages = []string{PageHome, PageAbout, PageContact, PageServices}

// FieldMap holds the editable text fields of a page, stored as a jsonb column.
type FieldMap map[string]string

func (f FieldMap) Value() (driver.Value, error) {
	if f == nil {
		f = FieldMap{}
	}

	value, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal field map: %w", err)
	}

	return value, nil
}

func (f *FieldMap) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = FieldMap{}

		return nil
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return fmt.Errorf("unsupported field map source type %T", src)
	}
}

type PageContent struct {
	ID      string   `db:"id"`
	PageKey string   `db:"page_key"`
	Fields  FieldMap `db:"fields"`
	model.Metadata
}
