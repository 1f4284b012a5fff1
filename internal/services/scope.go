package services

import "vyapar/internal/models"

// SellerScope is the per-request capability object for seller operations:
// the acting user and their resolved company. It is built once per request
// (CompanyService.Resolve) and threaded into every scoped operation, so the
// "owns this resource" check is a single company-id filter instead of a
// lookup repeated inside each call.
type SellerScope struct {
	UserID  string
	Company *models.Company
}

// CompanyID is the tenant boundary every scoped query filters on.
func (s *SellerScope) CompanyID() string {
	return s.Company.ID
}
