package handlers

import (
	"net/http"

	"jobzee/internal/app"
	"jobzee/internal/http/middleware"
	"jobzee/internal/http/response"
)

type ReviewHandler struct {
	reviews *app.ReviewService
}

func NewReviewHandler(reviews *app.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())
	companyID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req app.CreateReviewInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	req.CompanyID = companyID
	created, err := h.reviews.Create(r.Context(), accountID, role, req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

// ListByCompany serves the public reviews page for a company.
func (h *ReviewHandler) ListByCompany(w http.ResponseWriter, r *http.Request) {
	companyID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	limit, offset := pageParams(r)
	page, err := h.reviews.ListByCompany(r.Context(), companyID, limit, offset)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	reviewID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req app.UpdateReviewInput
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.reviews.Update(r.Context(), accountID, reviewID, req)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	accountID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	reviewID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.reviews.Delete(r.Context(), accountID, reviewID); err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "review deleted")
}
