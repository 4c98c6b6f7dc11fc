package http

import (
	"net/http"
	"strings"
	"time"

	"jobzee/internal/domain/account"
	"jobzee/internal/http/handlers"
	httpmw "jobzee/internal/http/middleware"
)

type RouterDependencies struct {
	AuthHandler        *handlers.AuthHandler
	JobHandler         *handlers.JobHandler
	ApplicationHandler *handlers.ApplicationHandler
	ReviewHandler      *handlers.ReviewHandler
	AdminHandler       *handlers.AdminHandler
	ProfileHandler     *handlers.ProfileHandler
	CompanyHandler     *handlers.CompanyHandler
	HealthHandler      *handlers.HealthHandler
	AuthMiddleware     *httpmw.AuthMiddleware
	Limiter            httpmw.Limiter
	CORS               func(http.Handler) http.Handler
	RequestTimeout     time.Duration
}

type Router struct {
	deps RouterDependencies
}

const maxBodyBytes = 1 << 20

const (
	authRateLimit  = 10
	authRateWindow = time.Minute
)

func NewRouter(deps RouterDependencies) http.Handler {
	return &Router{deps: deps}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := httpmw.Chain(r.baseHandler(), httpmw.RequestID, httpmw.Logging, httpmw.BodyLimit(maxBodyBytes), httpmw.Recover, httpmw.Timeout(r.deps.RequestTimeout))
	if r.deps.CORS != nil {
		handler = r.deps.CORS(handler)
	}
	handler.ServeHTTP(w, req)
}

func (r *Router) baseHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path := req.URL.Path

		switch {
		case req.Method == http.MethodGet && (path == "/health" || path == "/api/health"):
			r.deps.HealthHandler.Get(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/auth/register":
			r.limited(http.HandlerFunc(r.deps.AuthHandler.Register)).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/auth/login":
			r.limited(http.HandlerFunc(r.deps.AuthHandler.Login)).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/auth/forgot-password":
			r.limited(http.HandlerFunc(r.deps.AuthHandler.ForgotPassword)).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/auth/reset-password":
			r.limited(http.HandlerFunc(r.deps.AuthHandler.ResetPassword)).ServeHTTP(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/auth/verify-email":
			r.deps.AuthHandler.VerifyEmail(w, req)
			return
		case req.Method == http.MethodPost && path == "/api/auth/logout":
			r.deps.AuthHandler.Logout(w, req)
			return
		case req.Method == http.MethodGet && path == "/api/jobs":
			r.deps.JobHandler.List(w, req)
			return
		case req.Method == http.MethodGet && path == "/api/companies":
			r.deps.CompanyHandler.List(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/reviews/company/"):
			r.deps.ReviewHandler.ListByCompany(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/companies/") && path != "/api/companies/profile":
			r.deps.CompanyHandler.Get(w, req)
			return
		case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/jobs/") && path != "/api/jobs/my-jobs":
			r.deps.JobHandler.Get(w, req)
			return
		}

		if strings.HasPrefix(path, "/api/") {
			protected := r.deps.AuthMiddleware.Authenticate(http.HandlerFunc(r.handleProtected))
			protected.ServeHTTP(w, req)
			return
		}

		http.NotFound(w, req)
	})
}

func (r *Router) handleProtected(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/api/auth/me":
		r.deps.AuthHandler.Me(w, req)
		return
	case req.Method == http.MethodPost && path == "/api/auth/resend-verification":
		r.deps.AuthHandler.ResendVerification(w, req)
		return

	case req.Method == http.MethodPost && path == "/api/jobs":
		httpmw.RequireRole(account.RoleCompany, account.RoleAlumni)(http.HandlerFunc(r.deps.JobHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/jobs/my-jobs":
		httpmw.RequireRole(account.RoleCompany, account.RoleAlumni)(http.HandlerFunc(r.deps.JobHandler.ListMine)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/jobs/") && strings.HasSuffix(path, "/archive"):
		r.deps.JobHandler.Archive(w, req)
		return
	case (req.Method == http.MethodPut || req.Method == http.MethodPatch) && strings.HasPrefix(path, "/api/jobs/"):
		r.deps.JobHandler.Update(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/jobs/"):
		r.deps.JobHandler.Delete(w, req)
		return

	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/applications/apply/"):
		r.limited(httpmw.RequireRole(account.RoleStudent, account.RoleAlumni)(http.HandlerFunc(r.deps.ApplicationHandler.Apply))).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/applications/my-applications":
		httpmw.RequireRole(account.RoleStudent, account.RoleAlumni)(http.HandlerFunc(r.deps.ApplicationHandler.ListMine)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && strings.HasPrefix(path, "/api/applications/job/"):
		r.deps.ApplicationHandler.ListForJob(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/applications/") && strings.HasSuffix(path, "/status"):
		r.deps.ApplicationHandler.UpdateStatus(w, req)
		return

	case req.Method == http.MethodPost && strings.HasPrefix(path, "/api/reviews/company/"):
		httpmw.RequireRole(account.RoleStudent, account.RoleAlumni)(http.HandlerFunc(r.deps.ReviewHandler.Create)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/reviews/"):
		r.deps.ReviewHandler.Update(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/reviews/"):
		r.deps.ReviewHandler.Delete(w, req)
		return

	case req.Method == http.MethodGet && path == "/api/students/profile":
		httpmw.RequireRole(account.RoleStudent, account.RoleAlumni)(http.HandlerFunc(r.deps.ProfileHandler.GetJobSeeker)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && path == "/api/students/profile":
		httpmw.RequireRole(account.RoleStudent, account.RoleAlumni)(http.HandlerFunc(r.deps.ProfileHandler.UpdateJobSeeker)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/companies/profile":
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.ProfileHandler.GetCompany)).ServeHTTP(w, req)
		return
	case req.Method == http.MethodPut && path == "/api/companies/profile":
		httpmw.RequireRole(account.RoleCompany)(http.HandlerFunc(r.deps.ProfileHandler.UpdateCompany)).ServeHTTP(w, req)
		return
	}

	if strings.HasPrefix(path, "/api/admin/") {
		httpmw.RequireRole(account.RoleAdmin)(http.HandlerFunc(r.handleAdmin)).ServeHTTP(w, req)
		return
	}

	http.NotFound(w, req)
}

func (r *Router) handleAdmin(w http.ResponseWriter, req *http.Request) {
	path := req.URL.Path

	switch {
	case req.Method == http.MethodGet && path == "/api/admin/dashboard":
		r.deps.AdminHandler.Stats(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/admin/jobs/pending":
		r.deps.AdminHandler.PendingJobs(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/admin/jobs/") && strings.HasSuffix(path, "/approve"):
		r.deps.AdminHandler.ApproveJob(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/admin/jobs/") && strings.HasSuffix(path, "/reject"):
		r.deps.AdminHandler.RejectJob(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/admin/jobs/"):
		r.deps.AdminHandler.DeleteJob(w, req)
		return
	case req.Method == http.MethodGet && path == "/api/admin/users":
		r.deps.AdminHandler.ListUsers(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/admin/users/") && strings.HasSuffix(path, "/role"):
		r.deps.AdminHandler.ChangeRole(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/admin/users/") && strings.HasSuffix(path, "/deactivate"):
		r.deps.AdminHandler.DeactivateUser(w, req)
		return
	case req.Method == http.MethodPut && strings.HasPrefix(path, "/api/admin/users/") && strings.HasSuffix(path, "/reactivate"):
		r.deps.AdminHandler.ReactivateUser(w, req)
		return
	case req.Method == http.MethodDelete && strings.HasPrefix(path, "/api/admin/users/"):
		r.deps.AdminHandler.DeleteUser(w, req)
		return
	}

	http.NotFound(w, req)
}

func (r *Router) limited(h http.Handler) http.Handler {
	return httpmw.RateLimit(r.deps.Limiter, httpmw.ClientIP, authRateLimit, authRateWindow)(h)
}
