package postgres

import (
	"reflect"
	"testing"
)

func TestSetClauseSkipsNilFields(t *testing.T) {
	name := "renamed"
	priority := 3

	c := newSetClause()
	c.add("name", &name)
	c.add("description", nil)
	c.addInt("priority", &priority)

	if c.empty() {
		t.Fatal("clause should not be empty")
	}
	if got, want := c.clause(), "name = $1, priority = $2"; got != want {
		t.Errorf("clause() = %q, want %q", got, want)
	}
	if got := c.next(); got != 3 {
		t.Errorf("next() = %d, want 3", got)
	}
	if got, want := c.args("row-id"), []interface{}{"renamed", 3, "row-id"}; !reflect.DeepEqual(got, want) {
		t.Errorf("args() = %#v, want %#v", got, want)
	}
}

func TestSetClauseEmpty(t *testing.T) {
	c := newSetClause()
	c.add("name", nil)

	if !c.empty() {
		t.Error("expected empty clause when every field is nil")
	}
	if got := c.next(); got != 1 {
		t.Errorf("next() = %d, want 1", got)
	}
}
