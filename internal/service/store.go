package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxWriteAttempts = 3

var errStaleWrite = errors.New("document changed since it was read")

// retryStale runs fn until it stops failing with a stale write, giving up
// after maxWriteAttempts.
func retryStale(fn func() error) error {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		err := fn()
		if !errors.Is(err, errStaleWrite) {
			return err
		}
	}
	return newError(KindConflict, "The resource was modified concurrently, please retry", errStaleWrite)
}

// updateVersioned writes cols to the row identified by id only while its
// version still equals version, and bumps the version. It returns
// errStaleWrite when another writer got there first.
func updateVersioned(tx *gorm.DB, model interface{}, id uuid.UUID, version int, cols map[string]interface{}) error {
	cols["version"] = version + 1
	res := tx.Model(model).Where("id = ? AND version = ?", id, version).Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errStaleWrite
	}
	return nil
}

func isPostgres(db *gorm.DB) bool {
	return db.Dialector.Name() == "postgres"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere in a value
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// ilikeExpr is a case-insensitive contains predicate on a text column.
// On sqlite it uses the fold() function registered by the database package.
func ilikeExpr(db *gorm.DB, column string) string {
	if isPostgres(db) {
		return "LOWER(" + column + ") LIKE LOWER(?) ESCAPE '\\'"
	}
	return "fold(" + column + ") LIKE fold(?) ESCAPE '\\'"
}

// listILikeExpr matches when any element of a JSON string array column
// contains the pattern, ignoring case.
func listILikeExpr(db *gorm.DB, column string) string {
	if isPostgres(db) {
		return "EXISTS (SELECT 1 FROM jsonb_array_elements_text(" + column + ") AS elem(v) WHERE " + ilikeExpr(db, "elem.v") + ")"
	}
	return "EXISTS (SELECT 1 FROM json_each(" + column + ") AS elem WHERE " + ilikeExpr(db, "elem.value") + ")"
}

// listHasExpr matches when a JSON string array column holds the exact value.
// The postgres form is a containment test so the GIN index applies.
func listHasExpr(db *gorm.DB, column string) string {
	if isPostgres(db) {
		return column + " @> jsonb_build_array(CAST(? AS text))"
	}
	return "EXISTS (SELECT 1 FROM json_each(" + column + ") AS elem WHERE elem.value = ?)"
}
