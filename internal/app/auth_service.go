package app

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
	"jobzee/internal/notify"
	"jobzee/internal/security"
)

type Logger interface {
	Info(msg string)
	Error(msg string)
}

const (
	minPasswordLength = 6
	resetTokenTTL     = time.Hour
)

// AuthService implements registration, login and the email-token flows used by
// the HTTP handlers.
type AuthService struct {
	accounts account.Repository
	tokens   *security.TokenProvider
	mailer   notify.Mailer
	queue    *notify.Queue
	logger   Logger
	baseURL  string
}

func NewAuthService(accounts account.Repository, tokens *security.TokenProvider, mailer notify.Mailer, queue *notify.Queue, logger Logger, frontendBaseURL string) *AuthService {
	return &AuthService{
		accounts: accounts,
		tokens:   tokens,
		mailer:   mailer,
		queue:    queue,
		logger:   logger,
		baseURL:  strings.TrimRight(frontendBaseURL, "/"),
	}
}

type RegisterInput struct {
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Email     string       `json:"email"`
	Password  string       `json:"password"`
	Role      account.Role `json:"role"`
}

type AuthResult struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Account   *account.Account `json:"user"`
	Warning   string           `json:"warning,omitempty"`
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	fields := map[string]string{}
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Email = normalizeEmail(input.Email)
	if input.FirstName == "" {
		fields["first_name"] = "first name is required"
	}
	if input.LastName == "" {
		fields["last_name"] = "last name is required"
	}
	if input.Email == "" {
		fields["email"] = "email is required"
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		fields["email"] = "email is not valid"
	}
	if len(input.Password) < minPasswordLength {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLength)
	}
	if input.Role == "" {
		input.Role = account.RoleStudent
	} else if !account.ValidRole(input.Role) {
		fields["role"] = "role must be one of student, alumni, company or admin"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("registration failed", fields)
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	verificationToken, err := security.GenerateOpaqueToken()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to generate verification token", err)
	}

	acct, err := s.accounts.CreateWithProfile(ctx, account.Account{
		FirstName:              input.FirstName,
		LastName:               input.LastName,
		Email:                  input.Email,
		PasswordHash:           passwordHash,
		Role:                   input.Role,
		EmailVerificationToken: &verificationToken,
		IsActive:               true,
	})
	if err != nil {
		return nil, err
	}

	s.enqueueVerificationMail(acct.Email, verificationToken)

	token, expiresAt, err := s.tokens.Generate(acct.ID, acct.Email, acct.Role)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	return &AuthResult{Token: token, ExpiresAt: expiresAt, Account: acct}, nil
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	if input.Email == "" || input.Password == "" {
		return nil, common.NewValidationError("email and password are required", nil)
	}

	acct, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			// Burn a comparison so a missing account costs the same as a wrong
			// password.
			security.BurnPasswordCheck(input.Password)
			return nil, errInvalidCredentials()
		}
		return nil, err
	}
	if !security.CheckPassword(acct.PasswordHash, input.Password) {
		return nil, errInvalidCredentials()
	}
	if !acct.IsActive {
		return nil, common.NewError(common.CodeForbidden, "account is deactivated", nil)
	}

	now := time.Now().UTC()
	if err := s.accounts.UpdateLastLogin(ctx, acct.ID, now); err != nil {
		s.logError("failed to record last login: " + err.Error())
	}
	acct.LastLogin = &now

	token, expiresAt, err := s.tokens.Generate(acct.ID, acct.Email, acct.Role)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue token", err)
	}
	result := &AuthResult{Token: token, ExpiresAt: expiresAt, Account: acct}
	if !acct.EmailVerified {
		result.Warning = "email is not verified"
	}
	return result, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, accountID common.UUID) (*account.Account, error) {
	return s.accounts.GetByID(ctx, accountID)
}

// RequestPasswordReset issues a one-hour reset token and mails the link. The
// response is identical whether or not the email is registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return common.NewValidationError("email is required", nil)
	}

	acct, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return nil
		}
		return err
	}

	token, err := security.GenerateOpaqueToken()
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to generate reset token", err)
	}
	expires := time.Now().UTC().Add(resetTokenTTL)
	if err := s.accounts.SetResetToken(ctx, acct.ID, token, expires); err != nil {
		return err
	}

	msg := notify.Message{
		To:      acct.Email,
		Subject: "Reset your Jobzee password",
		Body: "You requested a password reset.\n\n" +
			"Open the link below within one hour to set a new password:\n" +
			s.baseURL + "/reset-password?token=" + token + "\n\n" +
			"If you did not request this, ignore this message.",
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return common.NewError(common.CodeInternal, "failed to send reset email", err)
	}
	return nil
}

func (s *AuthService) ResetPassword(ctx context.Context, token, password string) error {
	if strings.TrimSpace(token) == "" {
		return common.NewValidationError("reset token is required", nil)
	}
	if len(password) < minPasswordLength {
		return common.NewValidationError("registration failed", map[string]string{
			"password": fmt.Sprintf("password must be at least %d characters", minPasswordLength),
		})
	}

	acct, err := s.accounts.GetByResetToken(ctx, token, time.Now().UTC())
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return common.NewError(common.CodeValidation, "reset token is invalid or expired", nil)
		}
		return err
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	if err := s.accounts.SetPassword(ctx, acct.ID, passwordHash); err != nil {
		return err
	}
	s.enqueuePasswordChangedMail(acct.Email)
	return nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return common.NewValidationError("verification token is required", nil)
	}
	acct, err := s.accounts.GetByVerificationToken(ctx, token)
	if err != nil {
		if common.Is(err, common.CodeNotFound) {
			return common.NewError(common.CodeValidation, "verification token is invalid", nil)
		}
		return err
	}
	if acct.EmailVerified {
		return common.NewValidationError("email is already verified", nil)
	}
	return s.accounts.SetEmailVerified(ctx, acct.ID)
}

func (s *AuthService) ResendVerification(ctx context.Context, accountID common.UUID) error {
	acct, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if acct.EmailVerified {
		return common.NewValidationError("email is already verified", nil)
	}
	token, err := security.GenerateOpaqueToken()
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to generate verification token", err)
	}
	if err := s.accounts.SetVerificationToken(ctx, acct.ID, token); err != nil {
		return err
	}
	s.enqueueVerificationMail(acct.Email, token)
	return nil
}

func (s *AuthService) enqueueVerificationMail(email, token string) {
	if s.queue == nil {
		return
	}
	s.queue.Enqueue(notify.Message{
		To:      email,
		Subject: "Verify your Jobzee email",
		Body: "Welcome to Jobzee.\n\n" +
			"Confirm your email address by opening the link below:\n" +
			s.baseURL + "/verify-email?token=" + token + "\n",
	})
}

func (s *AuthService) enqueuePasswordChangedMail(email string) {
	if s.queue == nil {
		return
	}
	s.queue.Enqueue(notify.Message{
		To:      email,
		Subject: "Your Jobzee password was changed",
		Body: "Your password was just changed.\n\n" +
			"If this was not you, request a new reset at " +
			s.baseURL + "/forgot-password immediately.\n",
	})
}

func (s *AuthService) logError(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Error(msg)
}

func errInvalidCredentials() error {
	return common.NewError(common.CodeInvalidCredentials, "invalid email or password", nil)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
