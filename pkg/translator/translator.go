package translator

import (
	"os"
	"path/filepath"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

type Config struct {
	TranslationFolder  string
	SupportedLanguages []string
}

const (
	LanguageEn = "en"
	LanguageKo = "ko"
	LanguageFr = "fr"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() || filepath.Ext(f.Name()) != ".toml" {
			continue
		}
		if !isSupported(f.Name(), cfg.SupportedLanguages) {
			zap.L().Debug("skipping unsupported translation file", zap.String("file", f.Name()))
			continue
		}

		if _, err := Translator.LoadMessageFile(filepath.Join(cfg.TranslationFolder, f.Name())); err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

// isSupported matches "ko.toml" against the configured languages. An empty list accepts every file.
func isSupported(fileName string, supported []string) bool {
	if len(supported) == 0 {
		return true
	}
	tag, err := language.Parse(fileName[:len(fileName)-len(filepath.Ext(fileName))])
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	for _, lang := range supported {
		if base.String() == lang {
			return true
		}
	}
	return false
}
