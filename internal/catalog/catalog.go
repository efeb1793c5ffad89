// Package catalog renders the source text of every generated artifact kind.
// Every rendering function is pure: (entity name, configuration) in, fully
// substituted Dart text out, no I/O and no failure modes. Relative import
// paths inside the bodies follow the same layout the generator writes to;
// the two agree by convention and nothing verifies the references.
package catalog

import (
	"strings"
	"text/template"

	"github.com/mdrakibulhaquesardar/flx-cli/pkg/config"
	"github.com/mdrakibulhaquesardar/flx-cli/pkg/names"
)

// tmplCtx carries the casing variants substituted into template bodies.
type tmplCtx struct {
	Snake        string // file and directory segments
	Pascal       string // class identifiers
	Camel        string // variable and field identifiers
	PluralPascal string // collection accessors, e.g. getUserProfiles
	PluralCamel  string // collection fields, e.g. userProfiles
	PluralSnake  string // endpoint paths, e.g. /user_profiles
	Author       string
}

func newCtx(name string, cfg config.Config) tmplCtx {
	return tmplCtx{
		Snake:        names.ToSnake(name),
		Pascal:       names.ToPascal(name),
		Camel:        names.ToCamel(name),
		PluralPascal: names.ToPluralPascal(name),
		PluralCamel:  names.ToPluralCamel(name),
		PluralSnake:  names.ToPluralSnake(name),
		Author:       cfg.Author,
	}
}

func mustParse(name, body string) *template.Template {
	return template.Must(template.New(name).Parse(body))
}

// render executes a compile-time-constant template. Execution over a plain
// value struct cannot fail; a panic here is a programming error in the
// catalog itself.
func render(t *template.Template, d tmplCtx) string {
	var b strings.Builder
	if err := t.Execute(&b, d); err != nil {
		panic("catalog: render " + t.Name() + ": " + err.Error())
	}
	return b.String()
}
