package productcontroller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortClauseWhitelistsColumns(t *testing.T) {
	assert.Equal(t, "price asc", sortClause("price", "asc"))
	assert.Equal(t, "name desc", sortClause("name", "desc"))
	assert.Equal(t, "created_at desc", sortClause("created_at", "desc"))

	// Unknown columns fall back to created_at so nothing user-supplied
	// reaches the ORDER BY clause verbatim.
	assert.Equal(t, "created_at desc", sortClause("", "desc"))
	assert.Equal(t, "created_at asc", sortClause("id; drop table products --", "asc"))
	assert.Equal(t, "created_at desc", sortClause("price, (select 1)", "desc"))

	// Bad directions degrade to desc.
	assert.Equal(t, "name desc", sortClause("name", "descending"))
	assert.Equal(t, "created_at desc", sortClause("bogus", "bogus"))
}
