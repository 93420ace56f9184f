package handlers

import (
	"net/http"

	"github.com/SscSPs/mma_web/internal/core/domain"
	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/gin-gonic/gin"
)

// journalHandler serves the journal entry form endpoints.
type journalHandler struct {
	journalService portssvc.JournalEntrySvcFacade
}

func newJournalHandler(js portssvc.JournalEntrySvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

func registerJournalRoutes(rg *gin.RouterGroup, h *journalHandler) {
	entries := rg.Group("/journal-entries")
	{
		entries.POST("/validate", h.validate)
		entries.POST("/sanitize", h.sanitize)
		entries.POST("", h.submit)
		entries.POST("/shortcuts/:kind", h.submitShortcut)
	}
	rg.GET("/entry-kinds", h.listEntryKinds)
}

// validate godoc
// @Summary Preview a journal entry
// @Description Returns the running balance over all lines and the first check that would block submission. Has no side effects.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entry body dto.ValidateJournalRequest true "Form state"
// @Success 200 {object} dto.PreviewResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/validate [post]
func (h *journalHandler) validate(c *gin.Context) {
	var req dto.ValidateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPreviewResponse(h.journalService.Preview(c.Request.Context(), req)))
}

// sanitize godoc
// @Summary Normalise amount fields
// @Description Applies blur-time normalisation to the targeted amount fields, or to every amount when no targets are given.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param lines body dto.SanitizeLinesRequest true "Lines and targets"
// @Success 200 {object} dto.LinesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown line ID"
// @Security BearerAuth
// @Router /journal-entries/sanitize [post]
func (h *journalHandler) sanitize(c *gin.Context) {
	var req dto.SanitizeLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	lines, err := h.journalService.SanitizeLines(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to sanitize lines")
		return
	}
	c.JSON(http.StatusOK, dto.ToLinesResponse(lines))
}

// submit godoc
// @Summary Submit a journal entry
// @Description Validates, assembles and records the entry with the accounting backend. The named draft is deleted on success only.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param entry body dto.SubmitJournalRequest true "Journal entry"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Validation failure, with code and difference"
// @Failure 403 {object} ErrorResponse "Read-only member"
// @Failure 502 {object} ErrorResponse "Backend rejected the submission"
// @Security BearerAuth
// @Router /journal-entries [post]
func (h *journalHandler) submit(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.SubmitJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	tx, err := h.journalService.Submit(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "Failed to submit journal entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// submitShortcut godoc
// @Summary Submit an expense or revenue
// @Description Expands the two-field form into a balanced two-line entry and submits it.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param kind path string true "Entry kind" Enums(expense, revenue)
// @Param entry body dto.ShortcutRequest true "Shortcut form"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security BearerAuth
// @Router /journal-entries/shortcuts/{kind} [post]
func (h *journalHandler) submitShortcut(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.ShortcutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	tx, err := h.journalService.SubmitShortcut(c.Request.Context(), session, domain.EntryKind(c.Param("kind")), req)
	if err != nil {
		respondError(c, err, "Failed to submit entry")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// listEntryKinds godoc
// @Summary List entry kinds
// @Description Lists the configured entry kinds and the account types each side allows.
// @Tags journal-entries
// @Produce json
// @Success 200 {array} dto.EntryKindResponse
// @Security BearerAuth
// @Router /entry-kinds [get]
func (h *journalHandler) listEntryKinds(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToEntryKindResponses(h.journalService.EntryKinds(c.Request.Context())))
}
