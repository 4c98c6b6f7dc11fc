package app

import (
	"context"
	"strings"
	"testing"
	"time"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
	"jobzee/internal/notify"
	"jobzee/internal/security"
)

type authFixture struct {
	accounts  *fakeAccountRepo
	seekers   *fakeJobSeekerRepo
	companies *fakeCompanyRepo
	mailer    *fakeMailer
	queue     *notify.Queue
	service   *AuthService
}

func newAuthFixture() *authFixture {
	seekers := newFakeJobSeekerRepo()
	companies := newFakeCompanyRepo()
	accounts := newFakeAccountRepo(seekers, companies)
	mailer := &fakeMailer{}
	queue := notify.NewQueue(mailer, nil, 8)
	tokens := security.NewTokenProvider("test-secret", time.Hour)
	return &authFixture{
		accounts:  accounts,
		seekers:   seekers,
		companies: companies,
		mailer:    mailer,
		queue:     queue,
		service:   NewAuthService(accounts, tokens, mailer, queue, nil, "http://localhost:5173"),
	}
}

func registerInput(role account.Role, email string) RegisterInput {
	return RegisterInput{
		FirstName: "Dana",
		LastName:  "Reyes",
		Email:     email,
		Password:  "correct-horse",
		Role:      role,
	}
}

func TestAuthServiceRegister_CreatesSeekerProfile(t *testing.T) {
	f := newAuthFixture()
	result, err := f.service.Register(context.Background(), registerInput(account.RoleStudent, "dana@example.com"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a session token")
	}
	if result.Account.EmailVerified {
		t.Fatal("expected email to start unverified")
	}
	if _, err := f.seekers.GetByAccountID(context.Background(), result.Account.ID); err != nil {
		t.Fatalf("expected job seeker profile, got %v", err)
	}
	f.queue.Close()
	sent := f.mailer.sent()
	if len(sent) != 1 {
		t.Fatalf("expected one verification mail, got %d", len(sent))
	}
	if sent[0].To != "dana@example.com" || !strings.Contains(sent[0].Body, "verify-email?token=") {
		t.Fatalf("unexpected verification mail: %+v", sent[0])
	}
}

func TestAuthServiceRegister_CreatesCompanyProfile(t *testing.T) {
	f := newAuthFixture()
	result, err := f.service.Register(context.Background(), registerInput(account.RoleCompany, "hr@example.com"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := f.companies.GetByAccountID(context.Background(), result.Account.ID); err != nil {
		t.Fatalf("expected company profile, got %v", err)
	}
	if _, err := f.seekers.GetByAccountID(context.Background(), result.Account.ID); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected no job seeker profile, got %v", err)
	}
}

func TestAuthServiceRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.service.Register(context.Background(), registerInput(account.RoleStudent, "dana@example.com")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	_, err := f.service.Register(context.Background(), registerInput(account.RoleCompany, "dana@example.com"))
	if !common.Is(err, common.CodeDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestAuthServiceRegister_DefaultsRoleToStudent(t *testing.T) {
	f := newAuthFixture()
	result, err := f.service.Register(context.Background(), registerInput("", "dana@example.com"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Account.Role != account.RoleStudent {
		t.Fatalf("expected student role, got %s", result.Account.Role)
	}
	if _, err := f.seekers.GetByAccountID(context.Background(), result.Account.ID); err != nil {
		t.Fatalf("expected seeker profile for defaulted role, got %v", err)
	}
}

func TestAuthServiceRegister_RoleSet(t *testing.T) {
	f := newAuthFixture()
	result, err := f.service.Register(context.Background(), registerInput(account.RoleAdmin, "root@example.com"))
	if err != nil {
		t.Fatalf("expected admin registration to succeed, got %v", err)
	}
	if result.Account.Role != account.RoleAdmin {
		t.Fatalf("expected admin role, got %s", result.Account.Role)
	}
	_, err = f.service.Register(context.Background(), registerInput("wizard", "merlin@example.com"))
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for unknown role, got %v", err)
	}
}

func TestAuthServiceLogin_Success(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.service.Register(context.Background(), registerInput(account.RoleAlumni, "dana@example.com")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	result, err := f.service.Login(context.Background(), LoginInput{Email: "Dana@Example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a session token")
	}
	if result.Account.Role != account.RoleAlumni {
		t.Fatalf("expected alumni role, got %s", result.Account.Role)
	}
	if result.Account.LastLogin == nil {
		t.Fatal("expected last login to be recorded")
	}
	if result.Warning == "" {
		t.Fatal("expected an unverified email warning")
	}
}

func TestAuthServiceLogin_FailureShapeIsUniform(t *testing.T) {
	f := newAuthFixture()
	if _, err := f.service.Register(context.Background(), registerInput(account.RoleStudent, "dana@example.com")); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	_, wrongPassword := f.service.Login(context.Background(), LoginInput{Email: "dana@example.com", Password: "wrong"})
	_, unknownEmail := f.service.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "wrong"})

	if !common.Is(wrongPassword, common.CodeInvalidCredentials) {
		t.Fatalf("expected invalid credentials for wrong password, got %v", wrongPassword)
	}
	if !common.Is(unknownEmail, common.CodeInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", unknownEmail)
	}
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Fatalf("expected identical error shapes, got %q and %q", wrongPassword.Error(), unknownEmail.Error())
	}
}

func TestAuthServiceLogin_DeactivatedAccount(t *testing.T) {
	f := newAuthFixture()
	result, err := f.service.Register(context.Background(), registerInput(account.RoleStudent, "dana@example.com"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := f.accounts.SetActive(context.Background(), result.Account.ID, false); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	_, err = f.service.Login(context.Background(), LoginInput{Email: "dana@example.com", Password: "correct-horse"})
	if !common.Is(err, common.CodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestAuthServicePasswordReset_Flow(t *testing.T) {
	f := newAuthFixture()
	result, err := f.service.Register(context.Background(), registerInput(account.RoleStudent, "dana@example.com"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := f.service.RequestPasswordReset(context.Background(), "dana@example.com"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	acct, err := f.accounts.GetByID(context.Background(), result.Account.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if acct.PasswordResetToken == nil {
		t.Fatal("expected reset token to be stored")
	}
	var resetMail bool
	for _, msg := range f.mailer.sent() {
		if strings.Contains(msg.Body, "reset-password?token="+*acct.PasswordResetToken) {
			resetMail = true
		}
	}
	if !resetMail {
		t.Fatal("expected reset link mail to be sent")
	}

	if err := f.service.ResetPassword(context.Background(), *acct.PasswordResetToken, "new-password-1"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if _, err := f.service.Login(context.Background(), LoginInput{Email: "dana@example.com", Password: "new-password-1"}); err != nil {
		t.Fatalf("expected login with new password, got %v", err)
	}
	if _, err := f.service.Login(context.Background(), LoginInput{Email: "dana@example.com", Password: "correct-horse"}); !common.Is(err, common.CodeInvalidCredentials) {
		t.Fatalf("expected old password to be rejected, got %v", err)
	}

	f.queue.Close()
	var changedMail bool
	for _, msg := range f.mailer.sent() {
		if strings.Contains(msg.Subject, "password was changed") {
			changedMail = true
		}
	}
	if !changedMail {
		t.Fatal("expected a password change confirmation mail")
	}
}

func TestAuthServicePasswordReset_UnknownEmailIsSilent(t *testing.T) {
	f := newAuthFixture()
	if err := f.service.RequestPasswordReset(context.Background(), "ghost@example.com"); err != nil {
		t.Fatalf("expected nil error for unknown email, got %v", err)
	}
	if len(f.mailer.sent()) != 0 {
		t.Fatal("expected no mail for unknown email")
	}
}

func TestAuthServicePasswordReset_ExpiredToken(t *testing.T) {
	f := newAuthFixture()
	result, err := f.service.Register(context.Background(), registerInput(account.RoleStudent, "dana@example.com"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	expired := time.Now().UTC().Add(-time.Minute)
	if err := f.accounts.SetResetToken(context.Background(), result.Account.ID, "stale-token", expired); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	err = f.service.ResetPassword(context.Background(), "stale-token", "new-password-1")
	if !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for expired token, got %v", err)
	}
}

func TestAuthServiceVerifyEmail(t *testing.T) {
	f := newAuthFixture()
	result, err := f.service.Register(context.Background(), registerInput(account.RoleStudent, "dana@example.com"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	acct, err := f.accounts.GetByID(context.Background(), result.Account.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := f.service.VerifyEmail(context.Background(), *acct.EmailVerificationToken); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	verified, err := f.accounts.GetByID(context.Background(), result.Account.ID)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !verified.EmailVerified {
		t.Fatal("expected email to be verified")
	}
	if err := f.service.VerifyEmail(context.Background(), "bogus"); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for unknown token, got %v", err)
	}

	if err := f.accounts.SetVerificationToken(context.Background(), result.Account.ID, "stale"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	err = f.service.VerifyEmail(context.Background(), "stale")
	if !common.Is(err, common.CodeValidation) || !strings.Contains(err.Error(), "already verified") {
		t.Fatalf("expected already-verified error, got %v", err)
	}
}
