package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The quantity_groups table has a column literally named values, which is a
// reserved word in PostgreSQL. An unquoted reference in an insert column
// list or UPDATE set-target is a syntax error, so every statement that
// names the column must quote it.
func TestQuantityGroupStatementsQuoteValuesColumn(t *testing.T) {
	for name, stmt := range map[string]string{
		"insert": quantityGroupInsert,
		"update": quantityGroupUpdate,
	} {
		assert.Contains(t, stmt, `"values"`, "%s statement must quote the values column", name)

		// The only unquoted occurrence allowed is the VALUES keyword itself.
		stripped := strings.ReplaceAll(stmt, `"values"`, "")
		stripped = strings.ReplaceAll(stripped, "VALUES (", "")
		assert.NotContains(t, strings.ToLower(stripped), "values", "%s statement names the column unquoted", name)
	}
}
