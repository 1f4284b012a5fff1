package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON-serialized column types. The source data lives in a document store;
// list- and map-shaped fields are kept as JSON text columns so they survive
// the relational mapping without extra tables.

// ProductImage is one image attached to a product.
type ProductImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ImageList stores product images as a JSON column.
type ImageList []ProductImage

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *ImageList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// StringList stores a list of strings (tags, highlights) as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// StringMap stores a string-keyed map of strings as a JSON column.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *StringMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		if len(v) == 0 {
			return nil
		}
		return json.Unmarshal(v, dst)
	case string:
		if v == "" {
			return nil
		}
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
