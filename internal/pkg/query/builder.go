// Package query builds parameterized Spanner SELECT statements.
package query

import (
	"strings"

	"cloud.google.com/go/spanner"
)

// Direction is an ORDER BY direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

type orderTerm struct {
	column string
	dir    Direction
}

// Builder is an immutable SELECT description. Every method returns a
// modified copy, so a filtered base can feed both a page query and its
// COUNT(*) twin.
type Builder struct {
	table  string
	cols   []string
	where  []Condition
	order  []orderTerm
	limit  int64
	offset int64
}

// From starts a query on table.
func From(table string) Builder {
	return Builder{table: table}
}

// Select appends result columns. With none, Build selects *.
func (b Builder) Select(columns ...string) Builder {
	b.cols = append(b.cols[:len(b.cols):len(b.cols)], columns...)
	return b
}

// Where adds a predicate. Predicates are combined with AND.
func (b Builder) Where(c Condition) Builder {
	b.where = append(b.where[:len(b.where):len(b.where)], c)
	return b
}

// When adds c only if ok is true.
func (b Builder) When(ok bool, c Condition) Builder {
	if !ok {
		return b
	}
	return b.Where(c)
}

// OrderBy appends a sort key. Later keys break ties of earlier ones.
func (b Builder) OrderBy(column string, dir Direction) Builder {
	b.order = append(b.order[:len(b.order):len(b.order)], orderTerm{column: column, dir: dir})
	return b
}

// Limit caps the number of rows. Zero means no limit.
func (b Builder) Limit(n int64) Builder {
	b.limit = n
	return b
}

// Page selects the rows of a 1-based page. Pages below 1 mean the first.
func (b Builder) Page(page, size int64) Builder {
	if page < 1 {
		page = 1
	}
	b.limit = size
	b.offset = (page - 1) * size
	return b
}

// Count keeps FROM and WHERE and selects COUNT(*) instead of the columns.
func (b Builder) Count() Builder {
	return Builder{table: b.table, cols: []string{"COUNT(*)"}, where: b.where}
}

// Build renders the statement.
func (b Builder) Build() spanner.Statement {
	var sql strings.Builder
	params := make(map[string]interface{})

	sql.WriteString("SELECT ")
	if len(b.cols) == 0 {
		sql.WriteString("*")
	} else {
		sql.WriteString(strings.Join(b.cols, ", "))
	}
	sql.WriteString(" FROM ")
	sql.WriteString(b.table)

	for i, c := range b.where {
		if i == 0 {
			sql.WriteString(" WHERE ")
		} else {
			sql.WriteString(" AND ")
		}
		fragment, p := c.SQL(i)
		sql.WriteString(fragment)
		for k, v := range p {
			params[k] = v
		}
	}

	for i, o := range b.order {
		if i == 0 {
			sql.WriteString(" ORDER BY ")
		} else {
			sql.WriteString(", ")
		}
		sql.WriteString(o.column)
		if o.dir == Desc {
			sql.WriteString(" DESC")
		} else {
			sql.WriteString(" ASC")
		}
	}

	if b.limit > 0 {
		sql.WriteString(" LIMIT @limit")
		params["limit"] = b.limit
	}
	if b.offset > 0 {
		sql.WriteString(" OFFSET @offset")
		params["offset"] = b.offset
	}

	return spanner.Statement{SQL: sql.String(), Params: params}
}
