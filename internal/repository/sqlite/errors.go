package sqlite

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"
)

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// violatesEmailIndex reports whether a unique violation came from the email index.
// SQLite names expression indexes as "index '<name>'" in the message.
func violatesEmailIndex(err error) bool {
	return strings.Contains(err.Error(), "idx_employees_email_lower")
}
