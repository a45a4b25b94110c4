package canopy

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is the language a new document starts in.
const DefaultLanguage = "en"

// localeFS holds the built-in messages (dialog buttons and the like).
//
//go:embed locales/*.yaml
var localeFS embed.FS

// Localization holds translated messages and the active language.
type Localization struct {
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
}

// NewLocalization creates a bundle whose fallback language is fallback,
// preloaded with the built-in messages. An unparseable fallback is treated
// as English.
func NewLocalization(fallback string) *Localization {
	tag, err := language.Parse(fallback)
	if err != nil {
		tag = language.English
		fallback = DefaultLanguage
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)

	l := &Localization{bundle: bundle}
	// Built-in files are compiled in; a failure here is a packaging bug.
	if err := l.LoadFS(localeFS, "locales"); err != nil {
		panic("canopy: " + err.Error())
	}
	l.SetLanguage(fallback)
	return l
}

// LoadMessageFile parses a go-i18n message file. The language is taken from
// the file name (e.g. "active.pt.yaml").
func (l *Localization) LoadMessageFile(data []byte, name string) error {
	if _, err := l.bundle.ParseMessageFileBytes(data, name); err != nil {
		return fmt.Errorf("load message file %s: %w", name, err)
	}
	l.localizer = i18n.NewLocalizer(l.bundle, l.current)
	return nil
}

// LoadFS loads every .yaml, .yml and .json message file in dir.
func (l *Localization) LoadFS(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return fmt.Errorf("read locales %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch path.Ext(e.Name()) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		p := path.Join(dir, e.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		if err := l.LoadMessageFile(data, e.Name()); err != nil {
			return err
		}
	}
	return nil
}

// SetLanguage switches the active language. Codes the bundle has no messages
// for still become active; lookups then fall back to the bundle's default.
func (l *Localization) SetLanguage(code string) {
	l.current = code
	l.localizer = i18n.NewLocalizer(l.bundle, code)
}

// Language returns the active language code.
func (l *Localization) Language() string {
	return l.current
}

// Languages returns the languages that have messages loaded.
func (l *Localization) Languages() []string {
	tags := l.bundle.LanguageTags()
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = t.String()
	}
	return out
}

// Translate returns the message with the given id in the active language.
// If the message is not found, the id itself is returned.
func (l *Localization) Translate(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		return id
	}
	return msg
}
