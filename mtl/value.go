/*
  value.go
  Description: the runtime value model metadata providers produce
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:14:11 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package mtl

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ValueKind distinguishes the three shapes a MetaValue can take.
type ValueKind int

const (
	ValueKindNull ValueKind = iota
	ValueKindList
	ValueKindDateTime
)

// MetaValue is the tagged union every provider returns for a field: either
// no value at all, a (possibly singleton) ordered list of strings, or a
// single point in time. pgngame.go's dataInterface inspired the shape, but
// MetaValue is a plain struct rather than an interface since MTL only ever
// needs these three cases and never user-extensible ones.
type MetaValue struct {
	Kind ValueKind
	List []string
	Time time.Time
}

// Null is the absence of a value.
func Null() MetaValue {
	return MetaValue{Kind: ValueKindNull}
}

// List wraps a slice of strings as a multi-valued MetaValue. An empty slice
// is treated the same as Null by IsEmpty.
func List(values ...string) MetaValue {
	return MetaValue{Kind: ValueKindList, List: values}
}

// DateTime wraps a single instant.
func DateTime(t time.Time) MetaValue {
	return MetaValue{Kind: ValueKindDateTime, Time: t}
}

// IsEmpty reports whether v carries no renderable content: Null, or a List
// with zero elements.
func (v MetaValue) IsEmpty() bool {
	switch v.Kind {
	case ValueKindNull:
		return true
	case ValueKindList:
		return len(v.List) == 0
	default:
		return false
	}
}

// Strings renders v as the list of strings a field substitutes, one per
// Cartesian branch. A DateTime renders as its RFC3339 form unless a path
// leaf (a DateTime attribute or strftime) has already converted it.
func (v MetaValue) Strings() []string {
	switch v.Kind {
	case ValueKindNull:
		return nil
	case ValueKindList:
		return v.List
	case ValueKindDateTime:
		return []string{v.Time.Format(time.RFC3339)}
	}
	return nil
}

// asSingle collapses a MetaValue to one string for contexts that need a
// scalar, such as a %name reference in literal text. Multi-valued lists join
// on ", ",
// mirroring pgngame.go's getField behavior of flattening slices for display.
func (v MetaValue) asSingle() string {
	switch v.Kind {
	case ValueKindNull:
		return ""
	case ValueKindList:
		return strings.Join(v.List, ", ")
	case ValueKindDateTime:
		return v.Time.Format(time.RFC3339)
	}
	return ""
}

// compareValues implements the numeric-if-both-parseable, else lexicographic
// coercion rule (Open Question b). It returns -1, 0 or 1.
func compareValues(a, b string) int {
	af, aerr := strconv.ParseFloat(a, 64)
	bf, berr := strconv.ParseFloat(b, 64)
	if aerr == nil && berr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(a, b)
}

// datetimeAttr extracts a named attribute from a DateTime value, following
// the fixed table of spec.md §4.3: date (ISO 8601), year (4 digits), yy (2),
// month (locale full name), mon (locale abbreviated), mm, dd, dow (locale
// full weekday), doy (3-digit Julian), and zero-padded hour/min/sec. Returns
// ok=false for any other kind or an unrecognized attribute name; "strftime"
// is handled separately by the renderer since it consumes a default branch.
func datetimeAttr(v MetaValue, attr string) (string, bool) {
	if v.Kind != ValueKindDateTime {
		return "", false
	}
	t := v.Time
	switch attr {
	case "date":
		return t.Format("2006-01-02"), true
	case "year":
		return strconv.Itoa(t.Year()), true
	case "yy":
		return fmt.Sprintf("%02d", t.Year()%100), true
	case "month":
		return t.Month().String(), true
	case "mon":
		return t.Format("Jan"), true
	case "mm":
		return fmt.Sprintf("%02d", int(t.Month())), true
	case "dd":
		return fmt.Sprintf("%02d", t.Day()), true
	case "dow":
		return t.Weekday().String(), true
	case "doy":
		return fmt.Sprintf("%03d", t.YearDay()), true
	case "hour":
		return fmt.Sprintf("%02d", t.Hour()), true
	case "min":
		return fmt.Sprintf("%02d", t.Minute()), true
	case "sec":
		return fmt.Sprintf("%02d", t.Second()), true
	}
	return "", false
}

// filepathAttr extracts a chainable path attribute from a List value, for
// the "filepath" field's name/stem/suffix/parent leaves (spec.md §4.3).
// Applied per element so that "parent.name" keeps chaining cleanly.
func filepathAttr(v MetaValue, attr string) (MetaValue, bool) {
	switch attr {
	case "name", "stem", "suffix", "parent":
	default:
		return Null(), false
	}

	items := v.Strings()
	out := make([]string, len(items))
	for i, p := range items {
		switch attr {
		case "name":
			out[i] = filepath.Base(p)
		case "stem":
			base := filepath.Base(p)
			out[i] = strings.TrimSuffix(base, filepath.Ext(base))
		case "suffix":
			out[i] = strings.TrimPrefix(filepath.Ext(p), ".")
		case "parent":
			out[i] = filepath.Dir(p)
		}
	}
	return List(out...), true
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
