package flagvalue

import (
	"strings"

	"braces.dev/errtrace"
)

// List is a flag.Getter that collects every occurrence of a flag,
// in order, parsing each with T's own Set method.
type List[T any, PT Getter[T]] []T

// ListOf turns a slice into a repeatable flag.
//
//	var manifests []flagvalue.Path
//	flag.Var(flagvalue.ListOf(&manifests), "f", ...)
func ListOf[T any, PT Getter[T]](vs *[]T) *List[T, PT] {
	return (*List[T, PT])(vs)
}

// Get returns the values recorded so far.
func (lv *List[T, PT]) Get() any { return []T(*lv) }

// String joins the values with "; ".
func (lv *List[T, PT]) String() string {
	items := make([]string, len(*lv))
	for i := range *lv {
		items[i] = PT(&(*lv)[i]).String()
	}
	return strings.Join(items, "; ")
}

// Set parses one occurrence of the flag and appends it.
// The list is left unchanged if parsing fails.
func (lv *List[T, PT]) Set(s string) error {
	var v T
	if err := PT(&v).Set(s); err != nil {
		return errtrace.Wrap(err)
	}
	*lv = append(*lv, v)
	return nil
}
