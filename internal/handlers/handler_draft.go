package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/gin-gonic/gin"
)

type draftHandler struct {
	draftService portssvc.DraftSvcFacade
}

func newDraftHandler(ds portssvc.DraftSvcFacade) *draftHandler {
	return &draftHandler{draftService: ds}
}

func registerDraftRoutes(rg *gin.RouterGroup, h *draftHandler) {
	drafts := rg.Group("/drafts")
	{
		drafts.GET("", h.listDrafts)
		drafts.POST("", h.createDraft)
		drafts.GET("/:draftID", h.getDraft)
		drafts.PUT("/:draftID", h.updateDraft)
		drafts.DELETE("/:draftID", h.deleteDraft)
	}
}

// listDrafts godoc
// @Summary List drafts
// @Description Lists the caller's saved drafts for the selected company, most recently updated first.
// @Tags drafts
// @Produce json
// @Success 200 {object} dto.ListDraftsResponse
// @Security BearerAuth
// @Router /drafts [get]
func (h *draftHandler) listDrafts(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	drafts, err := h.draftService.ListDrafts(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to list drafts")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDraftsResponse(drafts))
}

// createDraft godoc
// @Summary Save a new draft
// @Tags drafts
// @Accept json
// @Produce json
// @Param draft body dto.SaveDraftRequest true "Form snapshot"
// @Success 201 {object} dto.DraftResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /drafts [post]
func (h *draftHandler) createDraft(c *gin.Context) {
	h.saveDraft(c, "", http.StatusCreated)
}

// updateDraft godoc
// @Summary Overwrite a draft
// @Tags drafts
// @Accept json
// @Produce json
// @Param draftID path string true "Draft ID"
// @Param draft body dto.SaveDraftRequest true "Form snapshot"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /drafts/{draftID} [put]
func (h *draftHandler) updateDraft(c *gin.Context) {
	h.saveDraft(c, c.Param("draftID"), http.StatusOK)
}

func (h *draftHandler) saveDraft(c *gin.Context, draftID string, status int) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	draft, err := h.draftService.SaveDraft(c.Request.Context(), session, draftID, req)
	if err != nil {
		respondError(c, err, "Failed to save draft")
		return
	}
	c.JSON(status, dto.ToDraftResponse(draft))
}

// getDraft godoc
// @Summary Get a draft
// @Tags drafts
// @Produce json
// @Param draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /drafts/{draftID} [get]
func (h *draftHandler) getDraft(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	draft, err := h.draftService.GetDraft(c.Request.Context(), session, c.Param("draftID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(draft))
}

// deleteDraft godoc
// @Summary Delete a draft
// @Tags drafts
// @Param draftID path string true "Draft ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /drafts/{draftID} [delete]
func (h *draftHandler) deleteDraft(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	if err := h.draftService.DeleteDraft(c.Request.Context(), session, c.Param("draftID")); err != nil {
		respondError(c, err, "Failed to delete draft")
		return
	}
	c.Status(http.StatusNoContent)
}
