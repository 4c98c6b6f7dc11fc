package app

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
	"jobzee/internal/domain/application"
	"jobzee/internal/domain/job"
	"jobzee/internal/domain/profile"
	"jobzee/internal/domain/review"
	"jobzee/internal/notify"
)

type fakeAccountRepo struct {
	mu        sync.Mutex
	byID      map[common.UUID]*account.Account
	seekers   *fakeJobSeekerRepo
	companies *fakeCompanyRepo
}

func newFakeAccountRepo(seekers *fakeJobSeekerRepo, companies *fakeCompanyRepo) *fakeAccountRepo {
	return &fakeAccountRepo{
		byID:      make(map[common.UUID]*account.Account),
		seekers:   seekers,
		companies: companies,
	}
}

func (r *fakeAccountRepo) CreateWithProfile(ctx context.Context, acct account.Account) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == acct.Email {
			return nil, common.NewError(common.CodeDuplicate, "an account with this email already exists", nil)
		}
	}
	acct.ID = common.NewUUID()
	now := time.Now().UTC()
	acct.CreatedAt = now
	acct.UpdatedAt = now
	stored := acct
	r.byID[acct.ID] = &stored
	if acct.Role.IsJobSeeker() && r.seekers != nil {
		r.seekers.put(profile.JobSeeker{ID: common.NewUUID(), AccountID: acct.ID, Skills: []string{}})
	}
	if acct.Role == account.RoleCompany && r.companies != nil {
		r.companies.put(profile.Company{ID: common.NewUUID(), AccountID: acct.ID, CompanyName: acct.FirstName + " " + acct.LastName + " Company"})
	}
	result := stored
	return &result, nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, id common.UUID) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	acct := r.byID[id]
	if acct == nil {
		return nil, common.NewError(common.CodeNotFound, "account not found", nil)
	}
	result := *acct
	return &result, nil
}

func (r *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acct := range r.byID {
		if acct.Email == email {
			result := *acct
			return &result, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "account not found", nil)
}

func (r *fakeAccountRepo) GetByVerificationToken(ctx context.Context, token string) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acct := range r.byID {
		if acct.EmailVerificationToken != nil && *acct.EmailVerificationToken == token {
			result := *acct
			return &result, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "account not found", nil)
}

func (r *fakeAccountRepo) GetByResetToken(ctx context.Context, token string, now time.Time) (*account.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, acct := range r.byID {
		if acct.PasswordResetToken != nil && *acct.PasswordResetToken == token &&
			acct.PasswordResetExpires != nil && acct.PasswordResetExpires.After(now) {
			result := *acct
			return &result, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "account not found", nil)
}

func (r *fakeAccountRepo) UpdateLastLogin(ctx context.Context, id common.UUID, at time.Time) error {
	return r.update(id, func(acct *account.Account) { acct.LastLogin = &at })
}

func (r *fakeAccountRepo) SetEmailVerified(ctx context.Context, id common.UUID) error {
	return r.update(id, func(acct *account.Account) {
		acct.EmailVerified = true
		acct.EmailVerificationToken = nil
	})
}

func (r *fakeAccountRepo) SetVerificationToken(ctx context.Context, id common.UUID, token string) error {
	return r.update(id, func(acct *account.Account) { acct.EmailVerificationToken = &token })
}

func (r *fakeAccountRepo) SetResetToken(ctx context.Context, id common.UUID, token string, expires time.Time) error {
	return r.update(id, func(acct *account.Account) {
		acct.PasswordResetToken = &token
		acct.PasswordResetExpires = &expires
	})
}

func (r *fakeAccountRepo) SetPassword(ctx context.Context, id common.UUID, passwordHash string) error {
	return r.update(id, func(acct *account.Account) {
		acct.PasswordHash = passwordHash
		acct.PasswordResetToken = nil
		acct.PasswordResetExpires = nil
	})
}

func (r *fakeAccountRepo) SetRole(ctx context.Context, id common.UUID, role account.Role) error {
	return r.update(id, func(acct *account.Account) { acct.Role = role })
}

func (r *fakeAccountRepo) SetActive(ctx context.Context, id common.UUID, active bool) error {
	return r.update(id, func(acct *account.Account) { acct.IsActive = active })
}

func (r *fakeAccountRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.NewError(common.CodeNotFound, "account not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeAccountRepo) List(ctx context.Context, filter account.ListFilter, limit, offset int) ([]account.Account, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []account.Account
	for _, acct := range r.byID {
		if filter.Role != nil && acct.Role != *filter.Role {
			continue
		}
		if filter.IsActive != nil && acct.IsActive != *filter.IsActive {
			continue
		}
		if filter.EmailVerified != nil && acct.EmailVerified != *filter.EmailVerified {
			continue
		}
		matched = append(matched, *acct)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Email < matched[j].Email })
	total := len(matched)
	if offset >= len(matched) {
		return []account.Account{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *fakeAccountRepo) CountStats(ctx context.Context, since time.Time) (*account.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &account.Stats{ByRole: make(map[account.Role]int)}
	for _, acct := range r.byID {
		stats.ByRole[acct.Role]++
		if acct.EmailVerified {
			stats.Verified++
		} else {
			stats.Unverified++
		}
		if acct.CreatedAt.After(since) {
			stats.RecentAccounts++
		}
	}
	return stats, nil
}

func (r *fakeAccountRepo) update(id common.UUID, fn func(*account.Account)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	acct := r.byID[id]
	if acct == nil {
		return common.NewError(common.CodeNotFound, "account not found", nil)
	}
	fn(acct)
	acct.UpdatedAt = time.Now().UTC()
	return nil
}

type fakeJobSeekerRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*profile.JobSeeker
}

func newFakeJobSeekerRepo() *fakeJobSeekerRepo {
	return &fakeJobSeekerRepo{byID: make(map[common.UUID]*profile.JobSeeker)}
}

func (r *fakeJobSeekerRepo) put(seeker profile.JobSeeker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := seeker
	r.byID[seeker.ID] = &stored
}

func (r *fakeJobSeekerRepo) GetByID(ctx context.Context, id common.UUID) (*profile.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seeker := r.byID[id]
	if seeker == nil {
		return nil, common.NewError(common.CodeNotFound, "job seeker profile not found", nil)
	}
	result := *seeker
	return &result, nil
}

func (r *fakeJobSeekerRepo) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, seeker := range r.byID {
		if seeker.AccountID == accountID {
			result := *seeker
			return &result, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "job seeker profile not found", nil)
}

func (r *fakeJobSeekerRepo) Update(ctx context.Context, seeker profile.JobSeeker) (*profile.JobSeeker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[seeker.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "job seeker profile not found", nil)
	}
	seeker.UpdatedAt = time.Now().UTC()
	stored := seeker
	r.byID[seeker.ID] = &stored
	result := stored
	return &result, nil
}

type fakeCompanyRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*profile.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: make(map[common.UUID]*profile.Company)}
}

func (r *fakeCompanyRepo) put(company profile.Company) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := company
	r.byID[company.ID] = &stored
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id common.UUID) (*profile.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	company := r.byID[id]
	if company == nil {
		return nil, common.NewError(common.CodeNotFound, "company profile not found", nil)
	}
	result := *company
	return &result, nil
}

func (r *fakeCompanyRepo) GetByAccountID(ctx context.Context, accountID common.UUID) (*profile.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, company := range r.byID {
		if company.AccountID == accountID {
			result := *company
			return &result, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "company profile not found", nil)
}

func (r *fakeCompanyRepo) Update(ctx context.Context, company profile.Company) (*profile.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[company.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "company profile not found", nil)
	}
	for id, existing := range r.byID {
		if id != company.ID && existing.CompanyName == company.CompanyName {
			return nil, common.NewError(common.CodeDuplicate, "a company with this name already exists", nil)
		}
	}
	company.UpdatedAt = time.Now().UTC()
	stored := company
	r.byID[company.ID] = &stored
	result := stored
	return &result, nil
}

func (r *fakeCompanyRepo) List(ctx context.Context, limit, offset int) ([]profile.Company, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var companies []profile.Company
	for _, company := range r.byID {
		companies = append(companies, *company)
	}
	sort.Slice(companies, func(i, j int) bool { return companies[i].CompanyName < companies[j].CompanyName })
	total := len(companies)
	if offset >= len(companies) {
		return []profile.Company{}, total, nil
	}
	companies = companies[offset:]
	if limit > 0 && limit < len(companies) {
		companies = companies[:limit]
	}
	return companies, total, nil
}

type fakeJobRepo struct {
	mu        sync.Mutex
	byID      map[common.UUID]*job.Job
	companies *fakeCompanyRepo
}

func newFakeJobRepo(companies *fakeCompanyRepo) *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[common.UUID]*job.Job), companies: companies}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j.ID = common.NewUUID()
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	stored := j
	r.byID[j.ID] = &stored
	result := stored
	return &result, nil
}

func (r *fakeJobRepo) CreateWithCompany(ctx context.Context, j job.Job, company profile.Company) (*job.Job, error) {
	r.companies.mu.Lock()
	for _, existing := range r.companies.byID {
		if existing.CompanyName == company.CompanyName {
			r.companies.mu.Unlock()
			return nil, common.NewError(common.CodeDuplicate, "a company with this name already exists", nil)
		}
	}
	r.companies.mu.Unlock()
	company.ID = common.NewUUID()
	r.companies.put(company)
	j.CompanyID = company.ID
	return r.Create(ctx, j)
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id common.UUID) (*job.WithCompany, error) {
	r.mu.Lock()
	j := r.byID[id]
	if j == nil {
		r.mu.Unlock()
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	stored := *j
	r.mu.Unlock()
	return r.withCompany(stored), nil
}

func (r *fakeJobRepo) withCompany(j job.Job) *job.WithCompany {
	result := job.WithCompany{Job: j}
	if company, err := r.companies.GetByID(context.Background(), j.CompanyID); err == nil {
		result.Company = job.CompanySummary{
			ID:          company.ID,
			CompanyName: company.CompanyName,
			Industry:    company.Industry,
			Location:    company.Location,
		}
	}
	return &result
}

func (r *fakeJobRepo) Update(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing := r.byID[j.ID]
	if existing == nil {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.UpdatedAt = time.Now().UTC()
	stored := j
	r.byID[j.ID] = &stored
	result := stored
	return &result, nil
}

func (r *fakeJobRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeJobRepo) List(ctx context.Context, filter job.Filter, limit, offset int) ([]job.WithCompany, int, error) {
	r.mu.Lock()
	var matched []job.Job
	for _, j := range r.byID {
		if !j.IsActive || j.IsArchived {
			continue
		}
		if filter.OnlyApproved && j.ApprovalStatus != job.ApprovalApproved {
			continue
		}
		if filter.Category != "" && j.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(filter.Search)) {
			continue
		}
		matched = append(matched, *j)
	}
	r.mu.Unlock()
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })
	total := len(matched)
	if offset >= len(matched) {
		return []job.WithCompany{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	items := make([]job.WithCompany, 0, len(matched))
	for _, j := range matched {
		items = append(items, *r.withCompany(j))
	}
	return items, total, nil
}

func (r *fakeJobRepo) ListByCompany(ctx context.Context, companyID common.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var jobs []job.Job
	for _, j := range r.byID {
		if j.CompanyID == companyID {
			jobs = append(jobs, *j)
		}
	}
	sort.Slice(jobs, func(i, j int) bool { return jobs[i].CreatedAt.After(jobs[j].CreatedAt) })
	return jobs, nil
}

func (r *fakeJobRepo) ListPending(ctx context.Context, limit, offset int) ([]job.WithCompany, int, error) {
	r.mu.Lock()
	var matched []job.Job
	for _, j := range r.byID {
		if j.ApprovalStatus == job.ApprovalPending {
			matched = append(matched, *j)
		}
	}
	r.mu.Unlock()
	total := len(matched)
	items := make([]job.WithCompany, 0, len(matched))
	for _, j := range matched {
		items = append(items, *r.withCompany(j))
	}
	return items, total, nil
}

func (r *fakeJobRepo) SetApproval(ctx context.Context, id common.UUID, status job.ApprovalStatus, reason *string, adminID common.UUID, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j := r.byID[id]
	if j == nil {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	j.ApprovalStatus = status
	j.RejectionReason = reason
	j.ApprovedBy = &adminID
	j.ApprovedAt = &at
	j.UpdatedAt = at
	return nil
}

func (r *fakeJobRepo) CountByApprovalStatus(ctx context.Context) (map[job.ApprovalStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[job.ApprovalStatus]int)
	for _, j := range r.byID {
		counts[j.ApprovalStatus]++
	}
	return counts, nil
}

func (r *fakeJobRepo) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, j := range r.byID {
		if j.CreatedAt.After(since) {
			count++
		}
	}
	return count, nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*application.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[common.UUID]*application.Application)}
}

func (r *fakeApplicationRepo) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.JobID == app.JobID && existing.JobSeekerID == app.JobSeekerID {
			return nil, common.NewError(common.CodeDuplicate, "you have already applied to this job", nil)
		}
	}
	app.ID = common.NewUUID()
	now := time.Now().UTC()
	app.AppliedAt = now
	app.UpdatedAt = now
	stored := app
	r.byID[app.ID] = &stored
	result := stored
	return &result, nil
}

func (r *fakeApplicationRepo) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.byID[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	result := *app
	return &result, nil
}

func (r *fakeApplicationRepo) FindByJobAndSeeker(ctx context.Context, jobID, jobSeekerID common.UUID) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, app := range r.byID {
		if app.JobID == jobID && app.JobSeekerID == jobSeekerID {
			result := *app
			return &result, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "application not found", nil)
}

func (r *fakeApplicationRepo) ListBySeeker(ctx context.Context, jobSeekerID common.UUID, status *application.Status, limit, offset int) ([]application.WithJob, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.WithJob
	for _, app := range r.byID {
		if app.JobSeekerID != jobSeekerID {
			continue
		}
		if status != nil && app.Status != *status {
			continue
		}
		items = append(items, application.WithJob{Application: *app, Job: application.JobSummary{JobID: app.JobID}})
	}
	return items, len(items), nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID common.UUID, limit, offset int) ([]application.WithApplicant, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.WithApplicant
	for _, app := range r.byID {
		if app.JobID != jobID {
			continue
		}
		items = append(items, application.WithApplicant{Application: *app, Applicant: application.ApplicantSummary{JobSeekerID: app.JobSeekerID}})
	}
	return items, len(items), nil
}

func (r *fakeApplicationRepo) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app := r.byID[id]
	if app == nil {
		return nil, common.NewError(common.CodeNotFound, "application not found", nil)
	}
	app.Status = status
	app.UpdatedAt = time.Now().UTC()
	result := *app
	return &result, nil
}

func (r *fakeApplicationRepo) CountByStatus(ctx context.Context) (map[application.Status]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make(map[application.Status]int)
	for _, app := range r.byID {
		counts[app.Status]++
	}
	return counts, nil
}

func (r *fakeApplicationRepo) CountCreatedSince(ctx context.Context, since time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, app := range r.byID {
		if app.AppliedAt.After(since) {
			count++
		}
	}
	return count, nil
}

type fakeReviewRepo struct {
	mu   sync.Mutex
	byID map[common.UUID]*review.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{byID: make(map[common.UUID]*review.Review)}
}

func (r *fakeReviewRepo) Create(ctx context.Context, rev review.Review) (*review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.CompanyID == rev.CompanyID && existing.JobSeekerID == rev.JobSeekerID {
			return nil, common.NewError(common.CodeDuplicate, "you have already reviewed this company", nil)
		}
	}
	rev.ID = common.NewUUID()
	now := time.Now().UTC()
	rev.CreatedAt = now
	rev.UpdatedAt = now
	stored := rev
	r.byID[rev.ID] = &stored
	result := stored
	return &result, nil
}

func (r *fakeReviewRepo) GetByID(ctx context.Context, id common.UUID) (*review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rev := r.byID[id]
	if rev == nil {
		return nil, common.NewError(common.CodeNotFound, "review not found", nil)
	}
	result := *rev
	return &result, nil
}

func (r *fakeReviewRepo) FindByCompanyAndSeeker(ctx context.Context, companyID, jobSeekerID common.UUID) (*review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rev := range r.byID {
		if rev.CompanyID == companyID && rev.JobSeekerID == jobSeekerID {
			result := *rev
			return &result, nil
		}
	}
	return nil, common.NewError(common.CodeNotFound, "review not found", nil)
}

func (r *fakeReviewRepo) ListByCompany(ctx context.Context, companyID common.UUID, limit, offset int) ([]review.WithReviewer, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []review.WithReviewer
	for _, rev := range r.byID {
		if rev.CompanyID == companyID {
			items = append(items, review.WithReviewer{Review: *rev})
		}
	}
	return items, len(items), nil
}

func (r *fakeReviewRepo) AverageRating(ctx context.Context, companyID common.UUID) (float64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sum, count := 0, 0
	for _, rev := range r.byID {
		if rev.CompanyID == companyID {
			sum += rev.Rating
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return float64(sum) / float64(count), nil
}

func (r *fakeReviewRepo) Update(ctx context.Context, rev review.Review) (*review.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[rev.ID]; !ok {
		return nil, common.NewError(common.CodeNotFound, "review not found", nil)
	}
	rev.UpdatedAt = time.Now().UTC()
	stored := rev
	r.byID[rev.ID] = &stored
	result := stored
	return &result, nil
}

func (r *fakeReviewRepo) Delete(ctx context.Context, id common.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return common.NewError(common.CodeNotFound, "review not found", nil)
	}
	delete(r.byID, id)
	return nil
}

type fakeMailer struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (m *fakeMailer) Send(ctx context.Context, msg notify.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *fakeMailer) sent() []notify.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]notify.Message(nil), m.messages...)
}
