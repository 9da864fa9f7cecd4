package content

import (
	"net/http"

	"lbm/infras/otel"
	"lbm/internal/domains/content/model/dto"
	"lbm/internal/domains/content/service"
	"lbm/shared/constant"
	"lbm/shared/validator"
	"lbm/transport/http/middleware"
	"lbm/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Content
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Content, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/content", func(routerGroup chi.Router) {
		routerGroup.Get("/{page}", handler.GetContent)

		routerGroup.Group(func(protected chi.Router) {
			protected.Use(handler.auth.Auth)

			protected.Put("/{page}", handler.UpdateContent)
		})
	})
}

// GetContent retrieves the editable text fields of a site page.
// @Summary Get page content
// @Description Retrieve the editable field map of a site page.
// @Tags Content
// @Accept json
// @Produce json
// @Param page path string true "Page key (home, about, contact, services)"
// @Success 200 {object} response.Data[dto.ContentResponse] "Page content"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/content/{page} [get]
func (handler *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContent")
	defer scope.End()

	page := chi.URLParam(r, constant.RequestParamPageKey)

	content, err := handler.service.Get(ctx, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get page content")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Page content retrieved successfully")

	response.WithJSON(w, http.StatusOK, content)
}

// UpdateContent replaces the whole field map of a site page.
// @Summary Update page content
// @Description Replace the editable field map of a site page and return the stored content.
// @Tags Content
// @Accept json
// @Produce json
// @Param page path string true "Page key (home, about, contact, services)"
// @Param request body dto.UpdateContentRequest true "Update Content Request"
// @Success 200 {object} response.Data[dto.ContentResponse] "Updated page content"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/content/{page} [put]
// @Security BearerAuth
func (handler *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateContent")
	defer scope.End()

	page := chi.URLParam(r, constant.RequestParamPageKey)

	req := dto.UpdateContentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	content, err := handler.service.Update(ctx, req, page)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update page content")

		response.WithError(w, err)

		return
	}

	admin, _ := ctx.Value(constant.ContextKeyAdminUsername).(string)
	scope.AddEvent("Page content updated by " + admin)

	response.WithJSON(w, http.StatusOK, content)
}
