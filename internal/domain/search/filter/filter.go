// Package filter holds facet selections translated to index conditions.
package filter

import "fmt"

// MaxConditions is the maximum number of conditions in a selection.
const MaxConditions = 128

// Selection is a conjunction of exact-match conditions: a document must
// satisfy every one of them, including several on the same field.
type Selection struct {
	conditions []Condition
}

// NewSelection validates and creates a Selection.
func NewSelection(conditions []Condition) (Selection, error) {
	if len(conditions) > MaxConditions {
		return Selection{}, fmt.Errorf("too many filter values (max %d)", MaxConditions)
	}
	return Selection{conditions: conditions}, nil
}

// Conditions returns the conditions in selection order.
func (s Selection) Conditions() []Condition { return s.conditions }

// IsEmpty reports whether nothing is selected.
func (s Selection) IsEmpty() bool { return len(s.conditions) == 0 }

// Condition matches documents whose field holds exactly one value.
type Condition struct {
	key   string
	match string
}

// NewMatch creates an exact match condition.
func NewMatch(key, match string) (Condition, error) {
	if key == "" {
		return Condition{}, fmt.Errorf("filter key is required")
	}
	if match == "" {
		return Condition{}, fmt.Errorf("match value is required for key %q", key)
	}
	return Condition{key: key, match: match}, nil
}

// Key returns the index field.
func (c Condition) Key() string { return c.key }

// Match returns the exact match value.
func (c Condition) Match() string { return c.match }
