// Package i18nfunc localizes every user-visible message. Messages live in
// embedded JSON bundles; an optional external translations directory next
// to the binary overrides them.
package i18nfunc

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/*.json
var embeddedTranslations embed.FS

var bundle *i18n.Bundle
var localizer *i18n.Localizer

// InitI18n initializes the i18n system with the given default language.
func InitI18n(defaultLang string) error {
	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	if err := loadEmbeddedTranslations(); err != nil {
		return fmt.Errorf("failed to load embedded translations: %v", err)
	}
	// External translations are optional and override embedded ones.
	loadExternalTranslations()

	SetLanguage(defaultLang)
	return nil
}

// loadExternalTranslations loads translations from a ./translations
// directory, when present.
func loadExternalTranslations() {
	translationsDir := "translations"
	files, err := os.ReadDir(translationsDir)
	if err != nil {
		return
	}
	for _, file := range files {
		if !file.IsDir() && filepath.Ext(file.Name()) == ".json" {
			bundle.LoadMessageFile(filepath.Join(translationsDir, file.Name()))
		}
	}
}

// loadEmbeddedTranslations loads the bundles compiled into the binary.
func loadEmbeddedTranslations() error {
	entries, err := embeddedTranslations.ReadDir("translations")
	if err != nil {
		return err
	}
	for _, entry := range entries {
		data, err := embeddedTranslations.ReadFile("translations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("failed to read embedded translation file %s: %v", entry.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
			return fmt.Errorf("failed to parse embedded translation file %s: %v", entry.Name(), err)
		}
	}
	return nil
}

// SetLanguage changes the current language.
func SetLanguage(lang string) {
	if bundle == nil {
		return
	}
	localizer = i18n.NewLocalizer(bundle, lang)
}

// T translates a message ID to the current language. Before InitI18n runs
// (or for an unknown ID) it falls back to the ID itself.
func T(messageID string, templateData map[string]interface{}) string {
	if localizer == nil {
		return messageID
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	})
	if err != nil {
		return messageID
	}
	return msg
}
