package postgres

import (
	"fmt"
	"strings"
)

// setClause builds the SET fragment for partial updates: only fields the
// caller supplied are merged over the stored row.
type setClause struct {
	cols []string
	vals []interface{}
}

func newSetClause() *setClause {
	return &setClause{}
}

func (c *setClause) add(col string, val *string) {
	if val == nil {
		return
	}
	c.vals = append(c.vals, *val)
	c.cols = append(c.cols, fmt.Sprintf("%s = $%d", col, len(c.vals)))
}

func (c *setClause) addInt(col string, val *int) {
	if val == nil {
		return
	}
	c.vals = append(c.vals, *val)
	c.cols = append(c.cols, fmt.Sprintf("%s = $%d", col, len(c.vals)))
}

func (c *setClause) empty() bool {
	return len(c.cols) == 0
}

func (c *setClause) clause() string {
	return strings.Join(c.cols, ", ")
}

// next returns the placeholder index following the collected values,
// normally used for the WHERE id argument.
func (c *setClause) next() int {
	return len(c.vals) + 1
}

func (c *setClause) args(extra ...interface{}) []interface{} {
	return append(append([]interface{}{}, c.vals...), extra...)
}
