/*
  providers.go
  Description: the reference metadata providers shipped with the mtl module
  -----------------------------------------------------------------------------

  Started on  <Fri Jul 31 09:34:02 2026 Carlos Linares Lopez>
  -----------------------------------------------------------------------------

  Made by Carlos Linares Lopez
  Login   <clinares@atlas>
*/

// Package providers implements the concrete mtl.Provider lookups a renderer
// needs in practice: filesystem attributes, the current time, reserved
// punctuation literals, and a simple map-backed static provider for tests
// and fixtures. Nothing here resembles a PGN tag table, but the dispatch
// shape (a fixed field-name catalogue answered by a stat-like syscall) is
// grounded on fstools.go's IsDir/ProcessDirectory helpers from the original
// project this module descends from.
package providers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/clinaresl/mtl/mtl"
)

// StaticProvider answers a fixed set of field names from an in-memory map.
// It exists for tests and for fixture-driven renders (see cmd/mtlrender's
// -fixture flag) where metadata doesn't come from the filesystem at all.
type StaticProvider struct {
	values map[string]mtl.MetaValue
}

// NewStaticProvider returns a StaticProvider that answers name with value
// for every entry of values.
func NewStaticProvider(values map[string]mtl.MetaValue) *StaticProvider {
	cp := make(map[string]mtl.MetaValue, len(values))
	for k, v := range values {
		cp[k] = v
	}
	return &StaticProvider{values: cp}
}

func (p *StaticProvider) Names() []string {
	names := make([]string, 0, len(p.values))
	for name := range p.values {
		names = append(names, name)
	}
	return names
}

func (p *StaticProvider) Lookup(name, _ string, _ mtl.FileContext) (mtl.MetaValue, error) {
	v, ok := p.values[name]
	if !ok {
		return mtl.Null(), fmt.Errorf("providers: no static value registered for %q", name)
	}
	return v, nil
}

// FileInfoProvider answers filesystem attributes of the file under render,
// obtained with a single os.Stat per lookup. Field names follow spec.md's
// reserved namespace: filepath, filename, ext, dir, created, modified,
// accessed, size, uid, gid, user, group.
type FileInfoProvider struct{}

func (FileInfoProvider) Names() []string {
	return []string{
		"filepath", "filename", "ext", "dir",
		"created", "modified", "accessed", "size",
		"uid", "gid", "user", "group",
	}
}

func (FileInfoProvider) Lookup(name, _ string, ctx mtl.FileContext) (mtl.MetaValue, error) {
	switch name {
	case "filepath":
		return mtl.List(ctx.Path), nil
	case "filename":
		return mtl.List(filepath.Base(ctx.Path)), nil
	case "ext":
		ext := filepath.Ext(ctx.Path)
		return mtl.List(strings.TrimPrefix(ext, ".")), nil
	case "dir":
		return mtl.List(filepath.Dir(ctx.Path)), nil
	}

	info, err := os.Stat(ctx.Path)
	if err != nil {
		return mtl.Null(), fmt.Errorf("providers: cannot stat %q: %w", ctx.Path, err)
	}

	switch name {
	case "modified":
		return mtl.DateTime(info.ModTime()), nil
	case "size":
		return mtl.List(fmt.Sprintf("%d", info.Size())), nil
	case "created", "accessed", "uid", "gid", "user", "group":
		return lookupPlatformAttr(ctx.Path, info, name)
	}

	return mtl.Null(), fmt.Errorf("providers: unsupported field %q", name)
}

// ClockProvider answers the two time-of-render fields: "now" (the instant
// Lookup is called) and "today" (the same instant with its clock fields
// zeroed), so a template can render a stable date stamp across an entire
// batch render.
type ClockProvider struct {
	Now func() time.Time
}

// NewClockProvider returns a ClockProvider using time.Now as its clock.
func NewClockProvider() ClockProvider {
	return ClockProvider{Now: time.Now}
}

func (c ClockProvider) Names() []string { return []string{"now", "today"} }

func (c ClockProvider) Lookup(name, _ string, _ mtl.FileContext) (mtl.MetaValue, error) {
	now := c.Now()
	switch name {
	case "now":
		return mtl.DateTime(now), nil
	case "today":
		y, m, d := now.Date()
		return mtl.DateTime(time.Date(y, m, d, 0, 0, 0, 0, now.Location())), nil
	}
	return mtl.Null(), fmt.Errorf("providers: unsupported field %q", name)
}

// Punctuation answers the reserved punctuation fields spec.md calls out as
// core-owned (comma, semicolon, pipe, and so on): implementing them as an
// ordinary Provider keeps the registry's dispatch uniform instead of giving
// render.go a second, parallel lookup path for a handful of fields.
var Punctuation = punctuationProvider{
	"comma":     ",",
	"semicolon": ";",
	"colon":     ":",
	"pipe":      "|",
	"dash":      "-",
	"underscore": "_",
	"space":     " ",
	"newline":   "\n",
	"tab":       "\t",
	"questionmark": "?",
	"percent":      "%",
	"openbrace":    "{",
	"closebrace":   "}",
	"openparens":   "(",
	"closeparens":  ")",
	"openbracket":  "[",
	"closebracket": "]",
	"lf":           "\n",
	"cr":           "\r",
	"crlf":         "\r\n",
}

type punctuationProvider map[string]string

func (p punctuationProvider) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	return names
}

func (p punctuationProvider) Lookup(name, _ string, _ mtl.FileContext) (mtl.MetaValue, error) {
	v, ok := p[name]
	if !ok {
		return mtl.Null(), fmt.Errorf("providers: unknown punctuation field %q", name)
	}
	return mtl.List(v), nil
}

// RegisterDefaults binds FileInfoProvider, a fresh ClockProvider and
// Punctuation into reg under mtl.Soft, the policy appropriate for every
// field that degrades gracefully to Null rather than aborting a batch
// render over one unreadable file.
func RegisterDefaults(reg *mtl.Registry) {
	reg.Register(FileInfoProvider{}, mtl.Soft)
	reg.Register(NewClockProvider(), mtl.Soft)
	reg.Register(Punctuation, mtl.Soft)
}

/* Local Variables: */
/* mode:go */
/* fill-column:80 */
/* End: */
