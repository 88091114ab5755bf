/*
  render.go
  Description: turns a parsed Template into one or more output strings
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:25:30 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

package mtl

import "strings"

// Variables is the environment threaded through a single render: the
// metadata registry and file being rendered, plus whatever {var:NAME,VALUE}
// fields have bound so far. metatemplate.go keeps a similar running
// substitution environment while it expands ${name} references; Variables
// generalizes that to MTL's richer field grammar.
type Variables struct {
	Vars map[string]MetaValue
	reg  *Registry
	ctx  FileContext
}

// NewVariables returns an empty environment bound to reg and ctx.
func NewVariables(reg *Registry, ctx FileContext) *Variables {
	return &Variables{Vars: make(map[string]MetaValue), reg: reg, ctx: ctx}
}

// Render expands tpl against reg and ctx, returning every branch produced by
// Cartesian expansion of its multi-valued fields. The result is never empty:
// a template with no fields renders as a single literal branch, and a field
// whose value is Null with no default renders the placeholder "_" rather
// than disappearing.
func Render(tpl *Template, reg *Registry, ctx FileContext) ([]string, error) {
	env := NewVariables(reg, ctx)
	return tpl.render(env)
}

// render expands tpl against an existing environment, so that nested
// templates (find/replace values, conditional right-hand sides, bool and
// default branches) see and can extend the same variable bindings as their
// enclosing render.
func (t *Template) render(env *Variables) ([]string, error) {
	branches := []string{""}

	for _, seg := range t.Segments {
		if seg.Literal != nil {
			text, err := renderLiteral(seg.Literal, env)
			if err != nil {
				return nil, err
			}
			for i := range branches {
				branches[i] += text
			}
			continue
		}

		f := seg.Field
		if f.Name == "var" {
			if err := bindVarField(f, env); err != nil {
				return nil, err
			}
			continue
		}

		v, err := evalField(f, env)
		if err != nil {
			return nil, err
		}
		items := v.Strings()

		if f.InPlace {
			delim := ""
			if f.Delim != nil {
				delim = *f.Delim
			}
			joined := strings.Join(items, delim)
			for i := range branches {
				branches[i] += joined
			}
			continue
		}

		if len(items) == 0 {
			items = []string{""}
		}
		next := make([]string, 0, len(branches)*len(items))
		for _, b := range branches {
			for _, it := range items {
				next = append(next, b+it)
			}
		}
		branches = next
	}

	return branches, nil
}

// renderLiteral renders the verbatim text and %variable references that
// make up one Literal segment. A reference to a name that no {var:...} field
// has bound is emitted verbatim, so strftime directives such as "%Y" survive.
func renderLiteral(l *Literal, env *Variables) (string, error) {
	var b strings.Builder
	for _, a := range l.atoms {
		switch a.kind {
		case atomText:
			b.WriteString(a.text)
		case atomVar:
			if v, ok := env.Vars[a.text]; ok {
				b.WriteString(v.asSingle())
			} else {
				b.WriteString("%" + a.text)
			}
		}
	}
	return b.String(), nil
}

// bindVarField evaluates a {var:NAME,VALUE} field, binding NAME to VALUE's
// rendered result in env. It contributes no text to the enclosing template.
func bindVarField(f *Field, env *Variables) error {
	if f.VarValue == nil {
		env.Vars[f.VarName] = Null()
		return nil
	}
	rendered, err := f.VarValue.render(env)
	if err != nil {
		return err
	}
	env.Vars[f.VarName] = List(rendered...)
	return nil
}

// evalField resolves a field's base value, walks its path, filters it,
// applies find/replace, and settles its conditional/bool/default branching.
// format and strip are core-owned meta-providers (spec.md §4.7) rather than
// registry entries: they consume the field's own default branch as their
// template argument instead of treating it as an empty-value fallback, so
// finishFieldValue is told not to apply that fallback a second time.
func evalField(f *Field, env *Variables) (MetaValue, error) {
	var v MetaValue
	defaultConsumed := false

	switch {
	case strings.HasPrefix(f.Name, "%"):
		name := f.Name[1:]
		if bound, ok := env.Vars[name]; ok {
			v = bound
		} else {
			v = Null()
		}

	case f.Name == "format":
		formatted, err := evalFormatField(f, env)
		if err != nil {
			return Null(), err
		}
		v, defaultConsumed = formatted, true

	case f.Name == "strip":
		stripped, err := evalStripField(f, env)
		if err != nil {
			return Null(), err
		}
		v, defaultConsumed = stripped, true

	default:
		ctx := env.ctx
		ctx.Vars = env.Vars
		value, err, ok := env.reg.Lookup(f.Name, f.Subfield, ctx)
		if !ok {
			return Null(), unknownFieldError(f.Name, f.Offset)
		}
		if err != nil {
			return Null(), providerError(f.Name, f.Offset, err)
		}
		v = value
	}

	isFilepath := f.Name == "filepath"
	for _, seg := range f.Path {
		if seg == "strftime" {
			v = evalStrftimeLeaf(v, f, env)
			defaultConsumed = true
			continue
		}
		v = navigateAttr(v, seg, isFilepath)
	}

	for _, fs := range f.Filters {
		var err error
		v, err = applyFilter(v, fs)
		if err != nil {
			return v, err
		}
	}

	var err error
	v, err = applyReplacements(v, f.Replacements, env)
	if err != nil {
		return v, err
	}

	return finishFieldValue(v, f, env, defaultConsumed)
}

// navigateAttr descends one path step into v: the fixed DateTime attribute
// table, or, for the filepath field, the chainable name/stem/suffix/parent
// leaves. An unrecognized step or a mismatched value kind collapses to
// Null, matching the rest of the package's fail-soft behavior on type
// mismatches.
func navigateAttr(v MetaValue, step string, isFilepath bool) MetaValue {
	if s, ok := datetimeAttr(v, step); ok {
		return List(s)
	}
	if isFilepath {
		if nv, ok := filepathAttr(v, step); ok {
			return nv
		}
	}
	return Null()
}

// evalStrftimeLeaf implements the ".strftime" path leaf (spec.md §4.3): it
// consumes f.DefaultBranch as its format template rather than as a
// fallback, and yields Null for a non-DateTime value or a missing default.
func evalStrftimeLeaf(v MetaValue, f *Field, env *Variables) MetaValue {
	if v.Kind != ValueKindDateTime || !f.HasDefault {
		return Null()
	}
	formatList, err := f.DefaultBranch.render(env)
	if err != nil || len(formatList) == 0 {
		return Null()
	}
	return List(strftime(v.Time, formatList[0]))
}

// evalFormatField implements the {format:TYPE:FORMAT,TEMPLATE} meta-provider
// field (spec.md §4.7): the ":TYPE:FORMAT" clause ends up in f.Subfield by
// the ordinary name:subfield grammar, and TEMPLATE is f.DefaultBranch.
func evalFormatField(f *Field, env *Variables) (MetaValue, error) {
	if !f.HasDefault {
		return Null(), nil
	}
	items, err := f.DefaultBranch.render(env)
	if err != nil {
		return Null(), err
	}
	out := make([]string, len(items))
	for i, s := range items {
		formatted, err := applyFormatSpec(s, f.Subfield)
		if err != nil {
			out[i] = s
			continue
		}
		out[i] = formatted
	}
	return List(out...), nil
}

// evalStripField implements the {strip,TEMPLATE} meta-provider field
// (spec.md §4.7): renders TEMPLATE and trims surrounding whitespace from
// each element.
func evalStripField(f *Field, env *Variables) (MetaValue, error) {
	if !f.HasDefault {
		return Null(), nil
	}
	items, err := f.DefaultBranch.render(env)
	if err != nil {
		return Null(), err
	}
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.TrimSpace(s)
	}
	return List(out...), nil
}

// finishFieldValue applies a field's conditional and bool/default branches
// on top of its already-filtered value v, and supplies the "_" placeholder
// for an otherwise-empty, default-less field. defaultConsumed is true when
// DefaultBranch was already used upstream (strftime's format argument, or
// format/strip's template), so it is no longer available as a fallback.
func finishFieldValue(v MetaValue, f *Field, env *Variables, defaultConsumed bool) (MetaValue, error) {
	hasDefault := f.HasDefault && !defaultConsumed

	if f.Cond != nil || f.HasBool {
		truth, err := evalCond(v, f.Cond, env)
		if err != nil {
			return v, err
		}

		if f.HasBool {
			if truth {
				return renderBranch(f.BoolBranch, env)
			}
			if hasDefault {
				return renderBranch(f.DefaultBranch, env)
			}
			return List("_"), nil
		}

		if truth {
			return v, nil
		}
		if hasDefault {
			return renderBranch(f.DefaultBranch, env)
		}
		return List("_"), nil
	}

	if v.IsEmpty() {
		if hasDefault {
			return renderBranch(f.DefaultBranch, env)
		}
		return List("_"), nil
	}

	return v, nil
}

// renderBranch renders a bool or default branch template as a MetaValue
// list, preserving every Cartesian alternative it itself expands to.
func renderBranch(t *Template, env *Variables) (MetaValue, error) {
	if t == nil {
		return Null(), nil
	}
	items, err := t.render(env)
	if err != nil {
		return Null(), err
	}
	return List(items...), nil
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
