package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/tkaykim/totalmanagement-sub003/pkg/translator"
)

const langKey = "lang"

// Order matters: the matcher falls back to the first entry.
var (
	supportedLanguages = []string{translator.LanguageEn, translator.LanguageKo, translator.LanguageFr}
	languageMatcher    = language.NewMatcher([]language.Tag{language.English, language.Korean, language.French})
)

// LanguageMiddleware resolves Accept-Language against the shipped translations and stores the
// chosen base language ("en", "ko" or "fr") for translated errors.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := negotiateLanguage(c.GetHeader("Accept-Language"))
		c.Set(langKey, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}

func negotiateLanguage(header string) string {
	if header == "" {
		return translator.LanguageEn
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return translator.LanguageEn
	}
	_, index, confidence := languageMatcher.Match(tags...)
	if confidence == language.No {
		return translator.LanguageEn
	}
	return supportedLanguages[index]
}
