package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/middleware"
	"github.com/tkaykim/totalmanagement-sub003/internal/adapter/http/validation"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/domain"
	"github.com/tkaykim/totalmanagement-sub003/internal/core/expansion"
	"github.com/tkaykim/totalmanagement-sub003/pkg/apierrors"
)

type errorMapping struct {
	err    error
	status int
	msgKey string
}

var domainErrors = []errorMapping{
	{domain.ErrTemplateNotFound, http.StatusNotFound, apierrors.MsgTemplateNotFound},
	{domain.ErrProjectNotFound, http.StatusNotFound, apierrors.MsgProjectNotFound},
	{domain.ErrPermissionDenied, http.StatusForbidden, apierrors.MsgPermissionDenied},
	{domain.ErrUnauthorized, http.StatusUnauthorized, apierrors.MsgUnauthorized},
	{domain.ErrActorBusinessUnitRequired, http.StatusBadRequest, apierrors.MsgActorBusinessUnitRequired},
	{domain.ErrInvalidBusinessUnit, http.StatusBadRequest, apierrors.MsgInvalidBusinessUnit},
	{domain.ErrTemplateNameRequired, http.StatusBadRequest, apierrors.MsgTemplateNameRequired},
	{domain.ErrTemplateTypeRequired, http.StatusBadRequest, apierrors.MsgTemplateTypeRequired},
	{domain.ErrTemplateTasksRequired, http.StatusBadRequest, apierrors.MsgTemplateTasksRequired},
	{domain.ErrTaskTitleRequired, http.StatusBadRequest, apierrors.MsgTaskTitleRequired},
	{domain.ErrInvalidPriority, http.StatusBadRequest, apierrors.MsgInvalidPriority},
	{domain.ErrInvalidOptionsSchema, http.StatusBadRequest, apierrors.MsgInvalidOptionsSchema},
	{domain.ErrNoTemplateChanges, http.StatusBadRequest, apierrors.MsgNoTemplateChanges},
	{domain.ErrUnknownOption, http.StatusBadRequest, apierrors.MsgUnknownOption},
	{domain.ErrOptionTypeMismatch, http.StatusBadRequest, apierrors.MsgOptionTypeMismatch},
	{domain.ErrNoTasksToCreate, http.StatusBadRequest, apierrors.MsgNoTasksToCreate},
	{domain.ErrInvalidDueDate, http.StatusBadRequest, apierrors.MsgInvalidDueDate},
	{expansion.ErrAnchorDateRequired, http.StatusBadRequest, apierrors.MsgAnchorDateRequired},
	{validation.ErrInvalidTemplatePayload, http.StatusBadRequest, apierrors.MsgInvalidTemplatePayload},
}

// optionMessages holds the variants of option messages that name the offending option.
var optionMessages = map[string]string{
	apierrors.MsgUnknownOption:      apierrors.MsgUnknownOptionNamed,
	apierrors.MsgOptionTypeMismatch: apierrors.MsgOptionTypeMismatchNamed,
}

// respondError writes the translated payload for a known domain error, or a 500 carrying
// fallbackKey after logging err.
func respondError(c *gin.Context, err error, fallbackKey string, logMsg string, fields ...zap.Field) {
	lang := middleware.GetLang(c)
	for _, mapping := range domainErrors {
		if !errors.Is(err, mapping.err) {
			continue
		}
		var optionErr *domain.OptionError
		if namedKey, ok := optionMessages[mapping.msgKey]; ok && errors.As(err, &optionErr) {
			c.JSON(mapping.status, apierrors.CreateErrorWithData(
				mapping.status, namedKey, lang, map[string]any{"Option": optionErr.Key},
			))
			return
		}
		c.JSON(mapping.status, apierrors.CreateError(mapping.status, mapping.msgKey, lang))
		return
	}

	fields = append(fields, zap.String("request_id", middleware.GetRequestID(c)), zap.Error(err))
	zap.L().Error(logMsg, fields...)
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, fallbackKey, lang),
	)
}

func respondBadRequest(c *gin.Context, msgKey string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, msgKey, middleware.GetLang(c)),
	)
}

func requireActor(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, middleware.GetLang(c)),
		)
	}
	return actor, ok
}
