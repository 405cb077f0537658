package types

import (
	"bytes"
	"encoding/json"
)

// RecipeRef is a recipe reference sent by clients either as a bare id or as
// an embedded recipe object carrying "id" or "_id".
type RecipeRef string

// UnmarshalJSON implements json.Unmarshaler
func (r *RecipeRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '{' {
		var obj struct {
			ID       string `json:"id"`
			LegacyID string `json:"_id"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		if obj.ID != "" {
			*r = RecipeRef(obj.ID)
		} else {
			*r = RecipeRef(obj.LegacyID)
		}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*r = RecipeRef(s)
	return nil
}
