package apierrors

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"github.com/tkaykim/totalmanagement-sub003/pkg/translator"
)

// JsonErr is the body of every failed API response. Clients show Message as is.
type JsonErr struct {
	Message string `json:"error"`
	Code    int    `json:"code"`
}

func (e JsonErr) Error() string {
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

// CreateError generates a JsonErr with a translated message.
func CreateError(code int, msgKey string, lang string) JsonErr {
	return JsonErr{Message: GetTransErrorMsg(msgKey, lang), Code: code}
}

// CreateErrorWithData is CreateError for messages that interpolate values, e.g. {{.Option}}.
func CreateErrorWithData(code int, msgKey string, lang string, data map[string]any) JsonErr {
	return JsonErr{Message: translate(msgKey, lang, data), Code: code}
}

// GetTransErrorMsg returns the message for msgKey in the best match of lang, English otherwise.
// The key itself is returned when no bundle has it.
func GetTransErrorMsg(msgKey string, lang string) string {
	return translate(msgKey, lang, nil)
}

func translate(msgKey string, lang string, data map[string]any) string {
	if translator.Translator == nil {
		return msgKey
	}
	localizer := i18n.NewLocalizer(translator.Translator, lang, translator.LanguageEn)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    msgKey,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
