package app

import (
	"context"
	"testing"

	"jobzee/internal/common"
	"jobzee/internal/domain/account"
	"jobzee/internal/domain/profile"
)

func (f *jobFixture) profileService() *ProfileService {
	return NewProfileService(f.seekers, f.companies, nil)
}

func TestProfileServiceUpdateJobSeeker_Partial(t *testing.T) {
	f := newJobFixture()
	acct, err := f.accounts.CreateWithProfile(context.Background(), account.Account{
		FirstName: "Lee",
		LastName:  "Kim",
		Email:     "lee@example.com",
		Role:      account.RoleStudent,
		IsActive:  true,
	})
	if err != nil {
		t.Fatalf("expected account created, got %v", err)
	}
	svc := f.profileService()

	bio := "Backend developer"
	if _, err := svc.UpdateJobSeeker(context.Background(), acct.ID, UpdateJobSeekerInput{
		Bio:    &bio,
		Skills: []string{"go", "sql"},
		Education: []profile.EducationEntry{
			{Institution: "State University", Degree: "BSc", StartYear: 2018, EndYear: 2022},
		},
	}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	location := "Berlin"
	updated, err := svc.UpdateJobSeeker(context.Background(), acct.ID, UpdateJobSeekerInput{Location: &location})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.Bio != "Backend developer" || len(updated.Skills) != 2 || len(updated.Education) != 1 {
		t.Fatal("expected earlier fields to survive a partial update")
	}
	if updated.Location != "Berlin" {
		t.Fatalf("expected updated location, got %q", updated.Location)
	}

	years := -1
	if _, err := svc.UpdateJobSeeker(context.Background(), acct.ID, UpdateJobSeekerInput{ExperienceYears: &years}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for negative experience, got %v", err)
	}
}

func TestProfileServiceUpdateCompany(t *testing.T) {
	f := newJobFixture()
	first := f.companyAccount(t, "hr@acme.com")
	second := f.companyAccount(t, "hr@globex.com")
	svc := f.profileService()

	name := "Acme Robotics"
	updated, err := svc.UpdateCompany(context.Background(), first.ID, UpdateCompanyInput{CompanyName: &name})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if updated.CompanyName != "Acme Robotics" {
		t.Fatalf("expected renamed company, got %q", updated.CompanyName)
	}

	if _, err := svc.UpdateCompany(context.Background(), second.ID, UpdateCompanyInput{CompanyName: &name}); !common.Is(err, common.CodeDuplicate) {
		t.Fatalf("expected duplicate name error, got %v", err)
	}

	empty := "  "
	if _, err := svc.UpdateCompany(context.Background(), first.ID, UpdateCompanyInput{CompanyName: &empty}); !common.Is(err, common.CodeValidation) {
		t.Fatalf("expected validation error for blank name, got %v", err)
	}
}

func TestProfileServiceListCompanies(t *testing.T) {
	f := newJobFixture()
	f.companyAccount(t, "hr@acme.com")
	f.companyAccount(t, "hr@globex.com")

	page, err := f.profileService().ListCompanies(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if page.Total != 2 || len(page.Companies) != 2 {
		t.Fatalf("expected two companies, got total=%d len=%d", page.Total, len(page.Companies))
	}
}
