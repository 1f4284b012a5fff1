package repositories

import (
	"errors"
	"fmt"

	"vyapar/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMEnquiryRepository is a GORM implementation of EnquiryRepository.
type GORMEnquiryRepository struct {
	db *gorm.DB
}

// NewGORMEnquiryRepository creates a new instance of GORMEnquiryRepository.
func NewGORMEnquiryRepository(db *gorm.DB) *GORMEnquiryRepository {
	return &GORMEnquiryRepository{db: db}
}

// Create inserts a new enquiry. The composite (buyer, product) unique index
// rejects duplicates that race past the service's pre-check.
func (r *GORMEnquiryRepository) Create(enquiry *models.Enquiry) error {
	if enquiry.ID == "" {
		enquiry.ID = uuid.New().String()
	}
	if err := r.db.Create(enquiry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("enquiry already exists for this product: %w", ErrConflict)
		}
		return fmt.Errorf("failed to create enquiry: %w", err)
	}
	return nil
}

// ExistsForBuyerAndProduct reports whether the buyer already enquired about
// the product.
func (r *GORMEnquiryRepository) ExistsForBuyerAndProduct(buyerID, productID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Enquiry{}).
		Where("buyer_id = ? AND product_id = ?", buyerID, productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check enquiry existence: %w", err)
	}
	return count > 0, nil
}

// ListBySellerCompany returns a seller's enquiries newest first, with the
// product and buyer rows attached for display.
func (r *GORMEnquiryRepository) ListBySellerCompany(companyID string) ([]models.Enquiry, error) {
	var enquiries []models.Enquiry
	err := r.db.Where("seller_company_id = ?", companyID).
		Preload("Product").
		Preload("Buyer").
		Order("created_at DESC").
		Find(&enquiries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list enquiries for company %s: %w", companyID, err)
	}
	return enquiries, nil
}

// UpdateStatusScoped updates the status of an enquiry owned by the company.
func (r *GORMEnquiryRepository) UpdateStatusScoped(id, companyID, status string) (*models.Enquiry, error) {
	res := r.db.Model(&models.Enquiry{}).
		Where("id = ? AND seller_company_id = ?", id, companyID).
		Update("status", status)
	if res.Error != nil {
		return nil, fmt.Errorf("failed to update enquiry %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("enquiry %s: %w", id, ErrRecordNotFound)
	}

	var enquiry models.Enquiry
	if err := r.db.First(&enquiry, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to reload enquiry %s: %w", id, err)
	}
	return &enquiry, nil
}
