/*
  ast.go
  Description: the abstract syntax tree produced by Parse
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:12:03 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

// Package mtl implements the Metadata Template Language: a small,
// white-space sensitive template language that renders one or more output
// strings from per-file metadata through substitution, list expansion,
// filtering, conditional logic, find/replace, defaults and user-defined
// variables.
package mtl

// Op identifies a conditional comparison operator.
type Op int

const (
	OpContains Op = iota
	OpMatches
	OpStartsWith
	OpEndsWith
	OpLE
	OpGE
	OpLT
	OpGT
	OpEQ
	OpNE
)

// FilterSpec is one stage of a field's filter pipeline, e.g. split(;) or sort.
type FilterSpec struct {
	Name   string
	Arg    string
	HasArg bool
}

// Replacement is one (find, replace) pair of a field's find/replace block.
// Find is a plain literal; Replace is itself a template, rendered once per
// render against the current variable environment.
type Replacement struct {
	Find    string
	Replace *Template
}

// Cond is the conditional clause attached to a field, e.g. " contains beach".
type Cond struct {
	Negated bool
	Op      Op
	RHS     *Template
}

// Field is a parsed {...} expression.
type Field struct {
	// Offset is the rune position of the opening brace, used for error spans.
	Offset int

	// Delim and InPlace describe an optional "+" in-place expansion prefix.
	// Delim is nil when no prefix was given at all; it may point to the
	// empty string when the prefix was present but carried no text
	// (e.g. the bare "+" in "{+exiftool:Keywords}").
	Delim   *string
	InPlace bool

	// Name is the field's top-level name, or "%varname" for a {%varname}
	// reference into the render's variable environment.
	Name string

	// Subfield is the optional ":subfield" suffix on Name, e.g. "artist" in
	// {audio:artist}. It is passed straight through to the provider's
	// Lookup; the core never interprets it itself (spec.md §4.2). Empty
	// when the field carries no colon clause.
	Subfield string

	// VarName and VarValue are set only when Name == "var": a
	// {var:NAME,VALUE} field binds VarValue's rendered result to NAME in
	// the enclosing render's variable environment and contributes no
	// text of its own.
	VarName  string
	VarValue *Template

	// Path is the sequence of dotted attribute names following the field's
	// base name/subfield, e.g. ["year"] for {created.year}. Recognized
	// leaves are the fixed DateTime attribute table, "strftime" (which
	// consumes DefaultBranch as its format template instead of a
	// fallback), and, for the filepath field, the chainable name/stem/
	// suffix/parent leaves.
	Path []string

	Filters      []FilterSpec
	Replacements []Replacement

	Cond *Cond

	BoolBranch *Template
	HasBool    bool

	DefaultBranch *Template
	HasDefault    bool
}

type literalAtomKind int

const (
	atomText literalAtomKind = iota
	atomVar
)

// literalAtom is either a run of verbatim text or a %name variable reference
// appearing inside pretext/posttext.
type literalAtom struct {
	kind literalAtomKind
	text string
}

// Literal is a run of text between (or around) fields, possibly interspersed
// with %name variable references and %% escapes.
type Literal struct {
	Offset int
	atoms  []literalAtom
}

// Segment is one top-level element of a Template.
type Segment struct {
	Literal *Literal
	Field   *Field
}

// Template is a parsed MTL source string, ready to be rendered repeatedly.
type Template struct {
	Source   string
	Segments []Segment
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
