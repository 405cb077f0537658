package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// jsonColumnType picks jsonb on postgres and plain text elsewhere
func jsonColumnType(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "jsonb"
	}
	return "text"
}

// scanJSON decodes a JSON column value into dst
func scanJSON(value interface{}, dst interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported JSON column value %T", value)
	}
	if len(bytes) == 0 {
		return nil
	}
	return json.Unmarshal(bytes, dst)
}

// StringList is a list of strings stored as a JSON array
type StringList []string

// Value implements the driver.Valuer interface
func (a StringList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	return string(b), err
}

// Scan implements the sql.Scanner interface
func (a *StringList) Scan(value interface{}) error {
	*a = StringList{}
	if value == nil {
		return nil
	}
	return scanJSON(value, a)
}

// GormDBDataType implements schema.GormDBDataTypeInterface
func (StringList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return jsonColumnType(db)
}

// UUIDList is an ordered list of identifiers stored as a JSON array
type UUIDList []uuid.UUID

// Value implements the driver.Valuer interface
func (l UUIDList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

// Scan implements the sql.Scanner interface
func (l *UUIDList) Scan(value interface{}) error {
	*l = UUIDList{}
	if value == nil {
		return nil
	}
	return scanJSON(value, l)
}

// GormDBDataType implements schema.GormDBDataTypeInterface
func (UUIDList) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	return jsonColumnType(db)
}

// Contains reports whether id is in the list
func (l UUIDList) Contains(id uuid.UUID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Without returns a copy of the list with every occurrence of id removed
func (l UUIDList) Without(id uuid.UUID) UUIDList {
	out := make(UUIDList, 0, len(l))
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
