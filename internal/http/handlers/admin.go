package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"jobzee/internal/app"
	"jobzee/internal/domain/account"
	"jobzee/internal/http/middleware"
	"jobzee/internal/http/response"
)

type AdminHandler struct {
	admin *app.AdminService
}

func NewAdminHandler(admin *app.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) PendingJobs(w http.ResponseWriter, r *http.Request) {
	limit, offset := pageParams(r)
	page, err := h.admin.PendingJobs(r.Context(), limit, offset)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

func (h *AdminHandler) ApproveJob(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	approved, err := h.admin.ApproveJob(r.Context(), adminID, jobID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, approved)
}

type rejectJobRequest struct {
	Reason string `json:"reason"`
}

func (h *AdminHandler) RejectJob(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	jobID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req rejectJobRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	rejected, err := h.admin.RejectJob(r.Context(), adminID, jobID, req.Reason)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, rejected)
}

func (h *AdminHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.admin.DeleteJob(r.Context(), jobID); err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "job deleted")
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var filter account.ListFilter
	if raw := strings.TrimSpace(query.Get("role")); raw != "" {
		role := account.Role(raw)
		filter.Role = &role
	}
	if raw := strings.TrimSpace(query.Get("is_active")); raw != "" {
		if active, err := strconv.ParseBool(raw); err == nil {
			filter.IsActive = &active
		}
	}
	if raw := strings.TrimSpace(query.Get("email_verified")); raw != "" {
		if verified, err := strconv.ParseBool(raw); err == nil {
			filter.EmailVerified = &verified
		}
	}
	limit, offset := pageParams(r)
	page, err := h.admin.ListUsers(r.Context(), filter, limit, offset)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, page)
}

type changeRoleRequest struct {
	Role string `json:"role"`
}

func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	userID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req changeRoleRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.admin.ChangeRole(r.Context(), adminID, userID, account.Role(req.Role))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	userID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.admin.DeactivateUser(r.Context(), adminID, userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) ReactivateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := idFromPath(r, 2)
	if err != nil {
		response.Error(w, err)
		return
	}
	updated, err := h.admin.ReactivateUser(r.Context(), userID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AccountIDFromContext(r.Context())
	if !ok {
		response.Error(w, errUnauthorized())
		return
	}
	userID, err := idFromPath(r, 1)
	if err != nil {
		response.Error(w, err)
		return
	}
	if err := h.admin.DeleteUser(r.Context(), adminID, userID); err != nil {
		response.Error(w, err)
		return
	}
	response.Message(w, http.StatusOK, "user deleted")
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, stats)
}
