package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/mma_web/internal/core/ports/services"
	"github.com/SscSPs/mma_web/internal/dto"
	"github.com/gin-gonic/gin"
)

type companyHandler struct {
	companyService portssvc.CompanySvcFacade
}

func newCompanyHandler(cs portssvc.CompanySvcFacade) *companyHandler {
	return &companyHandler{companyService: cs}
}

func registerCompanyRoutes(rg *gin.RouterGroup, h *companyHandler) {
	companies := rg.Group("/companies")
	{
		companies.GET("", h.listCompanies)
		companies.POST("", h.createCompany)
		companies.POST("/:companyID/select", h.selectCompany)
	}
}

// listCompanies godoc
// @Summary List companies
// @Description Lists the companies the session user belongs to.
// @Tags companies
// @Produce json
// @Success 200 {object} dto.ListCompaniesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies [get]
func (h *companyHandler) listCompanies(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	companies, err := h.companyService.ListCompanies(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Failed to list companies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCompaniesResponse(companies))
}

// createCompany godoc
// @Summary Create a company
// @Tags companies
// @Accept json
// @Produce json
// @Param company body dto.CreateCompanyRequest true "Company details"
// @Success 201 {object} dto.CompanyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /companies [post]
func (h *companyHandler) createCompany(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	company, err := h.companyService.CreateCompany(c.Request.Context(), session, req)
	if err != nil {
		respondError(c, err, "Failed to create company")
		return
	}
	c.JSON(http.StatusCreated, dto.ToCompanyResponse(company))
}

// selectCompany godoc
// @Summary Select the active company
// @Description Makes the company the session's active company for all company-scoped calls.
// @Tags companies
// @Produce json
// @Param companyID path string true "Company ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Not one of the user's companies"
// @Security BearerAuth
// @Router /companies/{companyID}/select [post]
func (h *companyHandler) selectCompany(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	updated, err := h.companyService.SelectCompany(c.Request.Context(), session, c.Param("companyID"))
	if err != nil {
		respondError(c, err, "Failed to select company")
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(updated))
}
