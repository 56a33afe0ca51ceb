package converter

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oaspostman/parser"
)

// collectionName picks the collection name: the explicit name, then, with
// DeriveName, info.title or a title-cased file name. An empty result lets
// postman.NewCollection apply its default.
func (c *Converter) collectionName(doc *parser.Document) string {
	if c.CollectionName != "" {
		return c.CollectionName
	}
	if !c.DeriveName {
		return ""
	}
	if title := strings.TrimSpace(doc.Title); title != "" {
		return title
	}
	return nameFromSource(doc.SourcePath)
}

// nameFromSource turns "plant-analysis_api.v2.json" into "Plant Analysis Api V2".
// Placeholder sources such as "<stdin>" yield "".
func nameFromSource(source string) string {
	if source == "" || strings.HasPrefix(source, "<") {
		return ""
	}
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Host != "" {
		source = u.Path
	}
	base := path.Base(strings.ReplaceAll(source, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))

	words := strings.FieldsFunc(base, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	})
	if len(words) == 0 {
		return ""
	}
	titleCaser := cases.Title(language.English, cases.NoLower)
	return titleCaser.String(strings.Join(words, " "))
}
