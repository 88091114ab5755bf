/*
  filters.go
  Description: the field filter pipeline catalogue
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:20:15 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package mtl

import (
	"sort"
	"strconv"
	"strings"
)

// applyFilter runs one pipeline stage over v, mirroring pgngame.go's getField
// dispatch-by-name but over a small fixed catalogue instead of PGN tag
// names. This is exactly spec.md §4.4's catalogue: scalar-wise filters
// (lower, upper, strip, titlecase, capitalize, braces, parens, brackets,
// chop(n), chomp(n)) pass Null straight through; list-wise filters that
// merely reorder or remove elements (split, autosplit, sort, rsort,
// reverse, uniq, remove) treat Null as an empty list and stay Null unless
// they introduce elements (append, prepend, join always produce one or
// more elements even from Null).
func applyFilter(v MetaValue, f FilterSpec) (MetaValue, error) {
	switch f.Name {
	case "lower":
		return scalarFilter(v, strings.ToLower), nil

	case "upper":
		return scalarFilter(v, strings.ToUpper), nil

	case "strip":
		return scalarFilter(v, strings.TrimSpace), nil

	case "titlecase":
		return scalarFilter(v, strings.Title), nil

	case "capitalize":
		return scalarFilter(v, capitalizeWord), nil

	case "braces":
		return scalarFilter(v, func(s string) string { return "{" + s + "}" }), nil

	case "parens":
		return scalarFilter(v, func(s string) string { return "(" + s + ")" }), nil

	case "brackets":
		return scalarFilter(v, func(s string) string { return "[" + s + "]" }), nil

	case "chop":
		n, err := filterIntArg(f, "chop")
		if err != nil {
			return v, err
		}
		return scalarFilter(v, func(s string) string { return chopEnd(s, n) }), nil

	case "chomp":
		n, err := filterIntArg(f, "chomp")
		if err != nil {
			return v, err
		}
		return scalarFilter(v, func(s string) string { return chopStart(s, n) }), nil

	case "split":
		sep := ","
		if f.HasArg {
			sep = f.Arg
		}
		return listFilter(v, func(items []string) []string {
			out := make([]string, 0, len(items))
			for _, it := range items {
				out = append(out, splitNonEmpty(it, sep)...)
			}
			return out
		}), nil

	case "autosplit":
		return listFilter(v, func(items []string) []string {
			out := make([]string, 0, len(items))
			for _, it := range items {
				out = append(out, autosplit(it)...)
			}
			return out
		}), nil

	case "sort":
		return listFilter(v, func(items []string) []string {
			out := append([]string(nil), items...)
			sort.Strings(out)
			return out
		}), nil

	case "rsort":
		return listFilter(v, func(items []string) []string {
			out := append([]string(nil), items...)
			sort.Sort(sort.Reverse(sort.StringSlice(out)))
			return out
		}), nil

	case "reverse":
		return listFilter(v, func(items []string) []string {
			out := append([]string(nil), items...)
			for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
				out[i], out[j] = out[j], out[i]
			}
			return out
		}), nil

	case "uniq":
		return listFilter(v, uniqueStrings), nil

	case "remove":
		if !f.HasArg {
			return v, parseErrorf(0, "remove requires an argument")
		}
		return listFilter(v, func(items []string) []string {
			out := make([]string, 0, len(items))
			for _, s := range items {
				if s != f.Arg {
					out = append(out, s)
				}
			}
			return out
		}), nil

	case "join":
		sep := ", "
		if f.HasArg {
			sep = f.Arg
		}
		return List(strings.Join(v.Strings(), sep)), nil

	case "append":
		if !f.HasArg {
			return v, parseErrorf(0, "append requires an argument")
		}
		return List(append(append([]string(nil), v.Strings()...), f.Arg)...), nil

	case "prepend":
		if !f.HasArg {
			return v, parseErrorf(0, "prepend requires an argument")
		}
		return List(append([]string{f.Arg}, v.Strings()...)...), nil

	default:
		return v, parseErrorf(0, "unknown filter %q", f.Name)
	}
}

// scalarFilter applies fn to every element of v's rendered string list.
// Null passes through unchanged, per spec.md §4.4.
func scalarFilter(v MetaValue, fn func(string) string) MetaValue {
	if v.Kind == ValueKindNull {
		return v
	}
	items := v.Strings()
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = fn(s)
	}
	return List(out...)
}

// listFilter applies fn to v's whole rendered string list at once, for
// filters that reorder, dedupe, split or remove elements without ever
// introducing new ones. Null passes through unchanged.
func listFilter(v MetaValue, fn func([]string) []string) MetaValue {
	if v.Kind == ValueKindNull {
		return v
	}
	return List(fn(v.Strings())...)
}

// capitalizeWord upper-cases the first rune of s and lower-cases the rest.
func capitalizeWord(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// filterIntArg requires f to carry an integer argument, per Open Question
// (a)'s resolution that a missing chop/chomp argument is a parse error.
func filterIntArg(f FilterSpec, name string) (int, error) {
	if !f.HasArg || f.Arg == "" {
		return 0, parseErrorf(0, "%s requires an explicit argument", name)
	}
	n, err := strconv.Atoi(f.Arg)
	if err != nil {
		return 0, parseErrorf(0, "%s argument %q is not an integer", name, f.Arg)
	}
	return n, nil
}

// chopEnd removes n runes from the end of s.
func chopEnd(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return s
	}
	if n >= len(r) {
		return ""
	}
	return string(r[:len(r)-n])
}

// chopStart removes n runes from the start of s.
func chopStart(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return s
	}
	if n >= len(r) {
		return ""
	}
	return string(r[n:])
}

func splitNonEmpty(s, sep string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, sep)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// autosplit breaks a scalar value on the reserved punctuation class
// comma, semicolon or space (Open Question c), collapsing runs of
// separators and discarding empty fields.
func autosplit(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
}

func uniqueStrings(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, s := range items {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
