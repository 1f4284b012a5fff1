package repositories

import "vyapar/internal/models"

// EnquiryRepository defines the interface for enquiry data access.
type EnquiryRepository interface {
	Create(enquiry *models.Enquiry) error
	ExistsForBuyerAndProduct(buyerID, productID string) (bool, error)
	ListBySellerCompany(companyID string) ([]models.Enquiry, error)
	// UpdateStatusScoped transitions an enquiry's status only when it belongs
	// to the given company; returns the updated row.
	UpdateStatusScoped(id, companyID, status string) (*models.Enquiry, error)
}
