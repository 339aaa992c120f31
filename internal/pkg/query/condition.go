package query

import (
	"strconv"
	"strings"
)

// Condition is one WHERE predicate with a single bound value. The "?" in expr
// is replaced by a numbered parameter when the statement is built.
type Condition struct {
	expr  string
	value interface{}
}

// Eq matches rows where field equals value: "field = @pN".
func Eq(field string, value interface{}) Condition {
	return Condition{expr: field + " = ?", value: value}
}

// ContainsFold matches rows whose field contains value, ignoring case. The
// value is matched literally, so % and _ carry no special meaning.
func ContainsFold(field, value string) Condition {
	return Condition{expr: "STRPOS(LOWER(" + field + "), ?) > 0", value: strings.ToLower(value)}
}

// SQL renders the predicate with parameter @p<index>.
func (c Condition) SQL(index int) (string, map[string]interface{}) {
	name := "p" + strconv.Itoa(index)
	return strings.Replace(c.expr, "?", "@"+name, 1), map[string]interface{}{name: c.value}
}
