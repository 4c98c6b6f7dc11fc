package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, first_name, last_name, email, password_hash, role, email_verified, email_verification_token, password_reset_token, password_reset_expires, last_login, is_active, created_at, updated_at`

func (r *AccountRepository) CreateWithProfile(ctx context.Context, acct account.Account) (*account.Account, error) {
	acct.ID = common.NewUUID()
	now := time.Now().UTC()
	acct.CreatedAt = now
	acct.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `INSERT INTO accounts (id, first_name, last_name, email, password_hash, role, email_verified, email_verification_token, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		acct.ID, acct.FirstName, acct.LastName, acct.Email, acct.PasswordHash, acct.Role, acct.EmailVerified, acct.EmailVerificationToken, acct.IsActive, acct.CreatedAt, acct.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeDuplicate, "an account with this email already exists", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create account", err)
	}

	switch {
	case acct.Role.IsJobSeeker():
		_, err = tx.ExecContext(ctx, `INSERT INTO job_seekers (id, account_id, skills, education, created_at, updated_at)
			VALUES ($1, $2, $3, '[]'::jsonb, $4, $5)`,
			common.NewUUID(), acct.ID, pq.Array([]string{}), now, now)
	case acct.Role == account.RoleCompany:
		companyName := strings.TrimSpace(acct.FirstName + " " + acct.LastName + " Company")
		_, err = tx.ExecContext(ctx, `INSERT INTO companies (id, account_id, company_name, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)`,
			common.NewUUID(), acct.ID, companyName, now, now)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeDuplicate, "profile already exists for this account", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create profile", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to commit registration", err)
	}
	return &acct, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id common.UUID) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
	return scanAccount(row)
}

func (r *AccountRepository) GetByVerificationToken(ctx context.Context, token string) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE email_verification_token = $1`, token)
	return scanAccount(row)
}

func (r *AccountRepository) GetByResetToken(ctx context.Context, token string, now time.Time) (*account.Account, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+accountColumns+` FROM accounts WHERE password_reset_token = $1 AND password_reset_expires > $2`, token, now)
	return scanAccount(row)
}

func (r *AccountRepository) UpdateLastLogin(ctx context.Context, id common.UUID, at time.Time) error {
	return r.exec(ctx, `UPDATE accounts SET last_login = $1, updated_at = $2 WHERE id = $3`, "failed to update last login", at, time.Now().UTC(), id)
}

func (r *AccountRepository) SetEmailVerified(ctx context.Context, id common.UUID) error {
	return r.exec(ctx, `UPDATE accounts SET email_verified = TRUE, email_verification_token = NULL, updated_at = $1 WHERE id = $2`, "failed to mark email verified", time.Now().UTC(), id)
}

func (r *AccountRepository) SetVerificationToken(ctx context.Context, id common.UUID, token string) error {
	return r.exec(ctx, `UPDATE accounts SET email_verification_token = $1, updated_at = $2 WHERE id = $3`, "failed to set verification token", token, time.Now().UTC(), id)
}

func (r *AccountRepository) SetResetToken(ctx context.Context, id common.UUID, token string, expires time.Time) error {
	return r.exec(ctx, `UPDATE accounts SET password_reset_token = $1, password_reset_expires = $2, updated_at = $3 WHERE id = $4`, "failed to set reset token", token, expires, time.Now().UTC(), id)
}

func (r *AccountRepository) SetPassword(ctx context.Context, id common.UUID, passwordHash string) error {
	return r.exec(ctx, `UPDATE accounts SET password_hash = $1, password_reset_token = NULL, password_reset_expires = NULL, updated_at = $2 WHERE id = $3`, "failed to update password", passwordHash, time.Now().UTC(), id)
}

func (r *AccountRepository) SetRole(ctx context.Context, id common.UUID, role account.Role) error {
	return r.exec(ctx, `UPDATE accounts SET role = $1, updated_at = $2 WHERE id = $3`, "failed to update role", role, time.Now().UTC(), id)
}

func (r *AccountRepository) SetActive(ctx context.Context, id common.UUID, active bool) error {
	return r.exec(ctx, `UPDATE accounts SET is_active = $1, updated_at = $2 WHERE id = $3`, "failed to update active flag", active, time.Now().UTC(), id)
}

func (r *AccountRepository) Delete(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to delete account", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "account not found", sql.ErrNoRows)
	}
	return nil
}

func (r *AccountRepository) List(ctx context.Context, filter account.ListFilter, limit, offset int) ([]account.Account, int, error) {
	conditions := []string{"TRUE"}
	args := []interface{}{}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if filter.IsActive != nil {
		args = append(args, *filter.IsActive)
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", len(args)))
	}
	if filter.EmailVerified != nil {
		args = append(args, *filter.EmailVerified)
		conditions = append(conditions, fmt.Sprintf("email_verified = $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to count accounts", err)
	}

	args = append(args, limit, offset)
	query := fmt.Sprintf(`SELECT `+accountColumns+` FROM accounts WHERE %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, common.NewError(common.CodeInternal, "failed to list accounts", err)
	}
	defer rows.Close()
	var items []account.Account
	for rows.Next() {
		acct, err := scanAccountRows(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, *acct)
	}
	return items, total, nil
}

func (r *AccountRepository) CountStats(ctx context.Context, since time.Time) (*account.Stats, error) {
	stats := &account.Stats{ByRole: make(map[account.Role]int)}

	rows, err := r.db.QueryContext(ctx, `SELECT role, COUNT(*) FROM accounts GROUP BY role`)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to count accounts by role", err)
	}
	defer rows.Close()
	for rows.Next() {
		var role account.Role
		var count int
		if err := rows.Scan(&role, &count); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan role count", err)
		}
		stats.ByRole[role] = count
	}

	row := r.db.QueryRowContext(ctx, `SELECT
		COUNT(*) FILTER (WHERE email_verified),
		COUNT(*) FILTER (WHERE NOT email_verified),
		COUNT(*) FILTER (WHERE created_at >= $1)
		FROM accounts`, since)
	if err := row.Scan(&stats.Verified, &stats.Unverified, &stats.RecentAccounts); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to load account stats", err)
	}
	return stats, nil
}

func (r *AccountRepository) exec(ctx context.Context, query, failure string, args ...interface{}) error {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return common.NewError(common.CodeInternal, failure, err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "account not found", sql.ErrNoRows)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAccount(row rowScanner) (*account.Account, error) {
	acct, err := scanAccountRows(row)
	if err != nil {
		return nil, err
	}
	return acct, nil
}

func scanAccountRows(row rowScanner) (*account.Account, error) {
	var acct account.Account
	err := row.Scan(&acct.ID, &acct.FirstName, &acct.LastName, &acct.Email, &acct.PasswordHash, &acct.Role,
		&acct.EmailVerified, &acct.EmailVerificationToken, &acct.PasswordResetToken, &acct.PasswordResetExpires,
		&acct.LastLogin, &acct.IsActive, &acct.CreatedAt, &acct.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "account not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load account", err)
	}
	return &acct, nil
}
