package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestionusuarios/userhub/internal/handler/middleware"
	"gestionusuarios/userhub/internal/i18n"
	"gestionusuarios/userhub/internal/service"
	"gestionusuarios/userhub/internal/validation"
	"gestionusuarios/userhub/pkg/response"
)

var resourceMessages = map[string]string{
	service.ResourceAdministrator: "ResourceAdministrator",
	service.ResourceClient:        "ResourceClient",
	service.ResourceSalesEmployee: "ResourceSalesEmployee",
	service.ResourceStoreManager:  "ResourceStoreManager",
	service.ResourceOrder:         "ResourceOrder",
	service.ResourceUserType:      "ResourceUserType",
}

var ruleMessages = map[string]string{
	"notblank": "RuleNotBlank",
	"required": "RuleRequired",
	"email":    "RuleEmail",
	"min_len":  "RuleMinLen",
	"max_len":  "RuleMaxLen",
	"min":      "RuleMin",
	"max":      "RuleMax",
	"gt":       "RuleGt",
	"money":    "RuleMoney",
}

// errorWriter renders service errors as localized error replies.
type errorWriter struct {
	translator *i18n.Translator
	logger     *zap.Logger
}

func (w errorWriter) localizer(c *gin.Context) *i18n.Localizer {
	return w.translator.Localizer(c.GetHeader("Accept-Language"))
}

func (w errorWriter) fail(c *gin.Context, err error) {
	loc := w.localizer(c)

	var (
		verrs    *validation.Errors
		notFound *service.NotFoundError
		conflict *service.ConflictError
	)
	switch {
	case errors.As(err, &verrs):
		fields := make([]response.FieldError, 0, len(verrs.Fields))
		for _, f := range verrs.Fields {
			id, ok := ruleMessages[f.Rule]
			if !ok {
				id = "RuleInvalid"
			}
			fields = append(fields, response.FieldError{
				Field:   f.Field,
				Message: loc.T(id, map[string]any{"Field": f.Field, "Param": f.Param}),
			})
		}
		response.ValidationError(c, loc.T("ValidationFailed", nil), fields)
	case errors.Is(err, validation.ErrInvalid):
		response.BadRequest(c, loc.T("InvalidBody", nil))
	case errors.As(err, &notFound):
		response.NotFound(c, loc.T("NotFound", map[string]any{
			"Resource": loc.T(resourceMessages[notFound.Resource], nil),
			"ID":       notFound.ID,
		}))
	case errors.As(err, &conflict):
		w.logger.Info("unique constraint violated", zap.String("resource", conflict.Resource), zap.Error(conflict.Err))
		response.Conflict(c, loc.T("Conflict", map[string]any{
			"Resource": loc.T(resourceMessages[conflict.Resource], nil),
		}))
	default:
		w.logger.Error("request failed",
			zap.String("request_id", middleware.RequestIDFrom(c)),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		response.InternalError(c, loc.T("InternalError", nil))
	}
}

func (w errorWriter) invalidBody(c *gin.Context, err error) {
	_ = c.Error(err)
	response.BadRequest(c, w.localizer(c).T("InvalidBody", nil))
}

func (w errorWriter) noRoute(c *gin.Context) {
	response.NotFound(c, w.localizer(c).T("RouteNotFound", nil))
}

// pathID parses the :id path parameter and writes a 400 when it is not an
// unsigned integer.
func (w errorWriter) pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		response.BadRequest(c, w.localizer(c).T("InvalidID", map[string]any{"Value": raw}))
		return 0, false
	}
	return uint(id), true
}
