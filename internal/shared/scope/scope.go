package scope

import (
	"strings"

	"gorm.io/gorm"
)

// Active restricts a query to rows that are not soft-deleted. table may be an alias.
func Active(table string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if table == "" {
			return db.Where("is_deleted = ?", false)
		}
		return db.Where(table+".is_deleted = ?", false)
	}
}

// Paginate applies offset and limit.
func Paginate(p Page) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(p.Skip).Limit(p.Limit)
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern builds a lower-cased LIKE pattern for a substring search.
// Use it with "LOWER(col) LIKE ? ESCAPE '\'".
func ContainsPattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(q))) + "%"
}
