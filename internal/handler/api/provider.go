package api

import (
	"net/http"

	reqdto "turnera/internal/handler/dto/request"
	resdto "turnera/internal/handler/dto/response"
	"turnera/internal/handler/httperr"
	"turnera/internal/handler/middleware"
	"turnera/internal/pkg/config"
	"turnera/internal/pkg/cookie"
	"turnera/internal/pkg/jwt"
	"turnera/internal/usecase/commands"
	"turnera/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProviderHandler struct {
	cmds       commands.ProviderCommands
	auth       commands.AuthCommands
	q          queries.ProviderQueries
	catalog    queries.CatalogQueries
	jwtService *jwt.Service
	cfg        config.Config
}

func NewProviderHandler(
	cmds commands.ProviderCommands,
	auth commands.AuthCommands,
	q queries.ProviderQueries,
	catalog queries.CatalogQueries,
	jwtService *jwt.Service,
	cfg config.Config,
) *ProviderHandler {
	return &ProviderHandler{
		cmds:       cmds,
		auth:       auth,
		q:          q,
		catalog:    catalog,
		jwtService: jwtService,
		cfg:        cfg,
	}
}

// @Summary Become an entrepreneur
// @Description Create the provider profile of the authenticated account and issue a public code
// @Tags providers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ActivateProviderRequest true "Business profile"
// @Success 201 {object} resdto.ProviderResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /providers/me [post]
func (h *ProviderHandler) Activate(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
		return
	}

	var req reqdto.ActivateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if _, err := h.cmds.Activate(c.Request.Context(), ownerID, req.ToDomain()); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if !h.reissueSession(c, ownerID) {
		return
	}

	view, err := h.q.GetMine(c.Request.Context(), ownerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProviderView(view))
}

// @Summary Get my provider
// @Tags providers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProviderResponse
// @Failure 404 {object} httperr.Response
// @Router /providers/me [get]
func (h *ProviderHandler) GetMine(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
		return
	}

	view, err := h.q.GetMine(c.Request.Context(), ownerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProviderView(view))
}

// @Summary Update my provider profile
// @Description Partial update; absent fields keep their current value
// @Tags providers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateProviderRequest true "Profile fields"
// @Success 200 {object} resdto.ProviderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /providers/me [patch]
func (h *ProviderHandler) UpdateMine(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
		return
	}

	var req reqdto.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	existing, err := h.q.GetMine(c.Request.Context(), ownerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if err := h.cmds.UpdateProfile(c.Request.Context(), ownerID, req.ToDomain(existing)); err != nil {
		abortWithUseCaseError(c, err)
		return
	}

	view, err := h.q.GetMine(c.Request.Context(), ownerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProviderView(view))
}

// @Summary Regenerate public code
// @Tags providers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProviderCodeResponse
// @Failure 404 {object} httperr.Response
// @Router /providers/me/code [post]
func (h *ProviderHandler) RegenerateCode(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
		return
	}

	result, err := h.cmds.RegenerateCode(c.Request.Context(), ownerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ProviderCodeResponse{ProviderID: result.ProviderID, Code: result.Code})
}

// @Summary Delete my provider
// @Description Delete the provider with its services, slots, reservations and working hours
// @Tags providers
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /providers/me [delete]
func (h *ProviderHandler) DeleteMine(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errUnauthenticated, "Internal server error", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), ownerID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	if !h.reissueSession(c, ownerID) {
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Look up provider by code
// @Tags providers
// @Produce json
// @Param code path string true "Public code (case-insensitive)"
// @Success 200 {object} resdto.PublicProviderResponse
// @Failure 404 {object} httperr.Response
// @Router /providers/by-code/{code} [get]
func (h *ProviderHandler) GetByCode(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProviderViewPublic(view))
}

// @Summary List services by provider code
// @Tags providers
// @Produce json
// @Param code path string true "Public code (case-insensitive)"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /providers/by-code/{code}/services [get]
func (h *ProviderHandler) ListServicesByCode(c *gin.Context) {
	views, err := h.catalog.ListServicesByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary List services of a provider
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {array} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /providers/{id}/services [get]
func (h *ProviderHandler) ListServices(c *gin.Context) {
	providerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid provider ID format", nil)
		return
	}

	views, err := h.catalog.ListServicesByProvider(c.Request.Context(), providerID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// reissueSession swaps the session cookies after a role change.
func (h *ProviderHandler) reissueSession(c *gin.Context, userID uuid.UUID) bool {
	pair, err := h.auth.IssueTokens(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return false
	}
	cookie.SetTokenCookies(c, h.cfg.Cookie, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
	c.Header(middleware.AccessTokenHeader, pair.AccessToken)
	return true
}
