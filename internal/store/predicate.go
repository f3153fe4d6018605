package store

import (
	"fmt"
	"slices"
)

// Predicate selects records by a named field: either equality or
// membership in a []string field.
type Predicate struct {
	Key     string
	Value   any
	inArray bool
}

// Eq matches records whose field key equals value. Values are compared by
// their string form so adapters can pass raw query parameters.
func Eq(key string, value any) Predicate {
	return Predicate{Key: key, Value: value}
}

// Contains matches records whose []string field key holds member.
func Contains(key, member string) Predicate {
	return Predicate{Key: key, Value: member, inArray: true}
}

func (p Predicate) Match(r Fielder) bool {
	v, ok := r.Field(p.Key)
	if !ok {
		return false
	}
	if p.inArray {
		list, ok := v.([]string)
		if !ok {
			return false
		}
		member, _ := p.Value.(string)
		return slices.Contains(list, member)
	}
	if _, isList := v.([]string); isList {
		return false
	}
	return fmt.Sprint(v) == fmt.Sprint(p.Value)
}

func (p Predicate) String() string {
	if p.inArray {
		return fmt.Sprintf("%s contains %v", p.Key, p.Value)
	}
	return fmt.Sprintf("%s = %v", p.Key, p.Value)
}

func matchAll[T Fielder](rec T, preds []Predicate) bool {
	for _, p := range preds {
		if !p.Match(rec) {
			return false
		}
	}
	return true
}
