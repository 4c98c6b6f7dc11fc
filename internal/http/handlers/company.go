package handlers

import (
	"net/http"

	"jobzee/internal/app"
	"jobzee/internal/http/response"
)

// CompanyHandler serves the public company directory.
type CompanyHandler struct {
	profiles *app.ProfileService
}

func NewCompanyHandler(profiles *app.ProfileService) *CompanyHandler {
	return &CompanyHandler{profiles: profiles}
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	page, err := h.profiles.ListCompanies(r.Context(), limit, offset)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	companyID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	company, err := h.profiles.GetCompanyByID(r.Context(), companyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, company)
}
