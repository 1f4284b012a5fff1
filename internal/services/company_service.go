package services

import (
	"errors"
	"fmt"
	"strings"

	"vyapar/internal/models"
	"vyapar/internal/repositories"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// CompanyService handles seller onboarding and company profile management,
// and resolves the per-request SellerScope for all scoped operations.
type CompanyService struct {
	companyRepo repositories.CompanyRepository
	userRepo    repositories.UserRepository
	log         *zap.Logger
}

// NewCompanyService creates a new CompanyService.
func NewCompanyService(companyRepo repositories.CompanyRepository, userRepo repositories.UserRepository, log *zap.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

// Resolve builds the seller capability scope for a request. A user without a
// company cannot perform seller operations and is told to finish onboarding.
func (s *CompanyService) Resolve(userID string) (*SellerScope, error) {
	company, err := s.companyRepo.GetByOwner(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, Errorf(ErrCompanyNotFound, "Company not found. Complete company onboarding first.")
		}
		return nil, fmt.Errorf("failed to resolve seller scope: %w", err)
	}
	return &SellerScope{UserID: userID, Company: company}, nil
}

// CompanyInput is the onboarding payload.
type CompanyInput struct {
	CompanyName     string         `json:"companyName" validate:"required"`
	BusinessType    string         `json:"businessType" validate:"required"`
	Description     string         `json:"description"`
	GSTNumber       string         `json:"gstNumber"`
	Address         models.Address `json:"address"`
	EstablishedYear int            `json:"establishedYear"`
	SubDomain       string         `json:"subDomain" validate:"required"`
	Logo            string         `json:"logo"`
}

// Upsert creates or updates the acting user's company, keyed by owner, and
// promotes the user to seller with onboarding completed.
func (s *CompanyService) Upsert(userID string, input CompanyInput) (*models.Company, error) {
	if input.Address.City == "" || input.Address.State == "" {
		return nil, Errorf(ErrValidation, "Company name, business type and address are required")
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, Errorf(ErrNotFound, "User not found")
		}
		return nil, err
	}
	user.Role = models.RoleSeller
	user.IsSeller = true
	user.OnboardingCompleted = true
	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to promote user to seller: %w", err)
	}

	subDomain := slug.Make(strings.TrimSpace(input.SubDomain))

	company, err := s.companyRepo.GetByOwner(userID)
	switch {
	case err == nil:
		s.applyInput(company, input, subDomain)
		if err := s.companyRepo.Update(company); err != nil {
			if errors.Is(err, repositories.ErrConflict) {
				return nil, Errorf(ErrDuplicate, "Subdomain already in use")
			}
			return nil, err
		}
	case errors.Is(err, repositories.ErrRecordNotFound):
		company = &models.Company{OwnerID: userID}
		s.applyInput(company, input, subDomain)
		if err := s.companyRepo.Create(company); err != nil {
			if errors.Is(err, repositories.ErrConflict) {
				return nil, Errorf(ErrDuplicate, "Subdomain already in use")
			}
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	s.log.Info("company onboarded",
		zap.String("company_id", company.ID),
		zap.String("owner_id", userID),
		zap.String("subdomain", company.SubDomain))
	return company, nil
}

// GetMine returns the acting user's company.
func (s *CompanyService) GetMine(userID string) (*models.Company, error) {
	company, err := s.companyRepo.GetByOwner(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, Errorf(ErrNotFound, "Company not found")
		}
		return nil, err
	}
	return company, nil
}

// UpdateInput carries the mutable company profile fields. The owner binding
// is never client-controlled.
type UpdateInput struct {
	CompanyName     *string         `json:"companyName"`
	BusinessType    *string         `json:"businessType"`
	Description     *string         `json:"description"`
	GSTNumber       *string         `json:"gstNumber"`
	Address         *models.Address `json:"address"`
	EstablishedYear *int            `json:"establishedYear"`
	Logo            *string         `json:"logo"`
}

// UpdateMine applies a partial update to the acting user's company.
func (s *CompanyService) UpdateMine(userID string, input UpdateInput) (*models.Company, error) {
	company, err := s.companyRepo.GetByOwner(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, Errorf(ErrNotFound, "Company not found")
		}
		return nil, err
	}

	if input.CompanyName != nil {
		company.CompanyName = *input.CompanyName
	}
	if input.BusinessType != nil {
		company.BusinessType = *input.BusinessType
	}
	if input.Description != nil {
		company.Description = *input.Description
	}
	if input.GSTNumber != nil {
		company.GSTNumber = *input.GSTNumber
	}
	if input.Address != nil {
		company.Address = *input.Address
	}
	if input.EstablishedYear != nil {
		company.EstablishedYear = *input.EstablishedYear
	}
	if input.Logo != nil {
		company.Logo = *input.Logo
	}

	if err := s.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) applyInput(company *models.Company, input CompanyInput, subDomain string) {
	company.CompanyName = input.CompanyName
	company.BusinessType = input.BusinessType
	company.Description = input.Description
	company.GSTNumber = input.GSTNumber
	company.Address = input.Address
	company.EstablishedYear = input.EstablishedYear
	company.SubDomain = subDomain
	company.Logo = input.Logo
	if company.Address.Country == "" {
		company.Address.Country = "India"
	}
}
