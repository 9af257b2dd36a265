// Package locale holds the user-facing strings of patchwheel and looks them up in the
// configured language. Catalogs are TOML message files embedded at build time.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed catalogs/*.toml
var catalogs embed.FS

// Catalog is the set of loaded message files.
type Catalog struct {
	bundle *i18n.Bundle
}

// NewCatalog loads the embedded message files. English is the fallback language.
func NewCatalog() (*Catalog, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	paths, err := fs.Glob(catalogs, "catalogs/*.toml")
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		data, err := catalogs.ReadFile(p)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(data, p); err != nil {
			return nil, fmt.Errorf("locale: %s: %w", p, err)
		}
	}

	return &Catalog{bundle: bundle}, nil
}

// MustCatalog is NewCatalog for the embedded files, which are known to parse.
func MustCatalog() *Catalog {
	c, err := NewCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// Languages returns the base language codes with a catalog, sorted.
func (c *Catalog) Languages() []string {
	var codes []string
	for _, tag := range c.bundle.LanguageTags() {
		base, _ := tag.Base()
		codes = append(codes, base.String())
	}
	sort.Strings(codes)
	return codes
}

// Localizer returns a Localizer for the preferred languages, most preferred first.
// Unknown languages fall back to English.
func (c *Catalog) Localizer(langs ...string) *Localizer {
	return &Localizer{l: i18n.NewLocalizer(c.bundle, langs...)}
}

// Localizer looks up messages for one language preference.
type Localizer struct {
	l *i18n.Localizer
}

// T returns the message id filled with data. A message missing from every catalog
// comes back as its id.
func (l *Localizer) T(id string, data map[string]any) string {
	return l.localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
}

// N returns the plural form of id for count. The count is available to the
// template as .Count.
func (l *Localizer) N(id string, count int, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	data["Count"] = count
	return l.localize(&i18n.LocalizeConfig{
		MessageID:    id,
		PluralCount:  count,
		TemplateData: data,
	})
}

func (l *Localizer) localize(cfg *i18n.LocalizeConfig) string {
	if l == nil || l.l == nil {
		return cfg.MessageID
	}
	msg, err := l.l.Localize(cfg)
	if strings.TrimSpace(msg) == "" && err != nil {
		return cfg.MessageID
	}
	return msg
}
