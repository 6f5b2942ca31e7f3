// Package i18n holds the translation bundle used for help labels and error messages.
package i18n

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/napalu/dispatch/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

//go:embed locales/*.json
var defaultLocales embed.FS

var (
	ErrInvalidLanguage                    = errors.New("invalid language in filename")
	ErrDefaultLanguageTranslationsMissing = errors.New("default language translations missing")
	ErrInvalidTranslations                = errors.New("invalid translations")
	ErrEmptyTranslations                  = errors.New("empty translations")
	ErrFailedToSetString                  = errors.New("failed to set string")
	ErrLanguageNotFound                   = errors.New("language not found")
	ErrExtraKey                           = errors.New("extra key")
	ErrMissingKey                         = errors.New("missing key")
)

// Bundle maps translation keys to messages per language. All methods are safe for concurrent use.
type Bundle struct {
	mu           sync.RWMutex
	defaultLang  language.Tag
	translations map[language.Tag]map[string]string
	catalog      *catalog.Builder
	printers     map[language.Tag]*message.Printer
}

var defaultBundle *Bundle

func init() {
	var err error
	defaultBundle, err = NewBundleWithFS(defaultLocales, "locales")
	if err != nil {
		panic("failed to load embedded locales: " + err.Error())
	}
}

// Default returns the process-wide bundle loaded from the embedded locales
func Default() *Bundle {
	return defaultBundle
}

// NewBundle returns a fresh bundle loaded from the embedded locales
func NewBundle() (*Bundle, error) {
	return NewBundleWithFS(defaultLocales, "locales")
}

// NewBundleWithFS loads every <lang>.json file found in dir. The English file must be present.
func NewBundleWithFS(fsys fs.FS, dir string) (*Bundle, error) {
	b := &Bundle{
		defaultLang:  language.English,
		translations: make(map[language.Tag]map[string]string),
		catalog:      catalog.NewBuilder(),
		printers:     make(map[language.Tag]*message.Printer),
	}

	if err := b.load(fsys, dir); err != nil {
		return nil, err
	}

	if _, exists := b.translations[b.defaultLang]; !exists {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)
	}

	return b, nil
}

// T returns the translation for key in the default language
func (b *Bundle) T(key string, args ...interface{}) string {
	return b.TL(b.DefaultLanguage(), key, args...)
}

// TL returns the translation for key in lang, falling back to the default language
func (b *Bundle) TL(lang language.Tag, key string, args ...interface{}) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if p, exists := b.printers[lang]; exists {
		return p.Sprintf(key, args...)
	}
	if p := b.printers[b.defaultLang]; p != nil {
		return p.Sprintf(key, args...)
	}

	return key
}

// Message returns the untranslated-format message for key in the default language, or key itself
func (b *Bundle) Message(key string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if msg, ok := b.translations[b.defaultLang][key]; ok {
		return msg
	}
	if msg, ok := b.translations[language.English][key]; ok {
		return msg
	}

	return key
}

// AddLanguage adds lang or merges translations into an existing language.
// A new non-default language must provide exactly the keys of the default language.
func (b *Bundle) AddLanguage(lang language.Tag, translations map[string]string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	original := b.translations[lang]
	merged := make(map[string]string, len(original)+len(translations))
	for k, v := range original {
		merged[k] = v
	}
	for k, v := range translations {
		merged[k] = v
	}

	if lang != b.defaultLang && original == nil {
		if errs := b.validate(merged); len(errs) > 0 {
			return fmt.Errorf("%w: %s: %w", ErrInvalidTranslations, lang, errors.Join(errs...))
		}
	}

	for key, value := range translations {
		if err := b.catalog.SetString(lang, key, value); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrFailedToSetString, key, err)
		}
	}

	b.translations[lang] = merged
	b.printers[lang] = message.NewPrinter(lang, message.Catalog(b.catalog))

	return nil
}

// HasLanguage checks if a language is supported
func (b *Bundle) HasLanguage(lang language.Tag) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.translations[lang]

	return exists
}

// Languages returns the supported languages sorted by tag
func (b *Bundle) Languages() []language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	langs := make([]language.Tag, 0, len(b.translations))
	for lang := range b.translations {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		return langs[i].String() < langs[j].String()
	})

	return langs
}

// Match returns the supported language closest to the requested one, e.g. "de-CH" yields German
func (b *Bundle) Match(requested string) (language.Tag, error) {
	tag, err := language.Parse(requested)
	if err != nil {
		return language.Und, fmt.Errorf("%w: %s", ErrLanguageNotFound, requested)
	}

	supported := b.Languages()
	_, index, confidence := language.NewMatcher(supported).Match(tag)
	if confidence == language.No {
		return language.Und, fmt.Errorf("%w: %s", ErrLanguageNotFound, requested)
	}

	return supported[index], nil
}

// HasKey checks if a key exists in a language
func (b *Bundle) HasKey(lang language.Tag, key string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, exists := b.translations[lang][key]

	return exists
}

// DefaultLanguage returns the language used by T
func (b *Bundle) DefaultLanguage() language.Tag {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.defaultLang
}

// SetDefaultLanguage sets the language used by T. Unknown languages are rejected.
func (b *Bundle) SetDefaultLanguage(lang language.Tag) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.translations[lang]; !exists {
		return fmt.Errorf("%w: %s", ErrLanguageNotFound, lang)
	}
	b.defaultLang = lang

	return nil
}

func (b *Bundle) load(fsys fs.FS, dir string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}

	// the default language goes first so the others can be validated against it
	deferred := make([]types.KeyValue[language.Tag, string], 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		lang, err := language.Parse(strings.TrimSuffix(entry.Name(), ".json"))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLanguage, entry.Name())
		}

		file := path.Join(dir, entry.Name())
		if lang != b.defaultLang {
			deferred = append(deferred, types.KeyValue[language.Tag, string]{Key: lang, Value: file})
			continue
		}
		if err := b.loadFile(fsys, lang, file); err != nil {
			return err
		}
	}

	for _, kv := range deferred {
		if err := b.loadFile(fsys, kv.Key, kv.Value); err != nil {
			return err
		}
	}

	return nil
}

func (b *Bundle) loadFile(fsys fs.FS, lang language.Tag, file string) error {
	data, err := fs.ReadFile(fsys, file)
	if err != nil {
		return err
	}

	var translations map[string]string
	if err := json.Unmarshal(data, &translations); err != nil {
		return err
	}

	return b.AddLanguage(lang, translations)
}

// validate is called with b.mu held
func (b *Bundle) validate(translations map[string]string) []error {
	var errs []error
	if len(translations) == 0 {
		return []error{ErrEmptyTranslations}
	}

	defaults, exists := b.translations[b.defaultLang]
	if !exists {
		return []error{fmt.Errorf("%w: %s", ErrDefaultLanguageTranslationsMissing, b.defaultLang)}
	}

	for key := range defaults {
		if _, exists := translations[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingKey, key))
		}
	}
	for key := range translations {
		if _, exists := defaults[key]; !exists {
			errs = append(errs, fmt.Errorf("%w: %q", ErrExtraKey, key))
		}
	}

	return errs
}
