package services

import (
	"errors"
	"strings"

	"vyapar/internal/models"
	"vyapar/internal/repositories"

	"go.uber.org/zap"
)

// EnquiryService handles buyer lead capture and the seller-side enquiry
// workflow (new -> contacted -> closed).
type EnquiryService struct {
	enquiryRepo repositories.EnquiryRepository
	productRepo repositories.ProductRepository
	events      EventPublisher
	log         *zap.Logger
}

// NewEnquiryService creates a new EnquiryService.
func NewEnquiryService(enquiryRepo repositories.EnquiryRepository, productRepo repositories.ProductRepository, events EventPublisher, log *zap.Logger) *EnquiryService {
	return &EnquiryService{
		enquiryRepo: enquiryRepo,
		productRepo: productRepo,
		events:      events,
		log:         log,
	}
}

// CreateEnquiryInput is the buyer's lead payload.
type CreateEnquiryInput struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required,min=2,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Mobile    string `json:"mobile" validate:"required,inmobile"`
	Message   string `json:"message" validate:"omitempty,max=1000"`
	Source    string `json:"source" validate:"omitempty,oneof=product compare search"`
}

// Create records a buyer's enquiry, denormalizing the seller company from
// the product so seller queries never join through Product. Duplicates are
// rejected twice: an optimistic pre-check here and the composite unique
// index underneath when the pre-check races.
func (s *EnquiryService) Create(buyerID string, input CreateEnquiryInput) (*models.Enquiry, error) {
	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, Errorf(ErrNotFound, "Product not found")
		}
		return nil, err
	}

	exists, err := s.enquiryRepo.ExistsForBuyerAndProduct(buyerID, product.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, Errorf(ErrDuplicate, "You have already enquired about this product")
	}

	source := input.Source
	if source == "" {
		source = models.EnquirySourceProduct
	}
	enquiry := &models.Enquiry{
		BuyerID:         buyerID,
		SellerCompanyID: product.SellerCompanyID,
		ProductID:       product.ID,
		Name:            strings.TrimSpace(input.Name),
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Mobile:          input.Mobile,
		Message:         strings.TrimSpace(input.Message),
		Status:          models.EnquiryStatusNew,
		Source:          source,
	}

	if err := s.enquiryRepo.Create(enquiry); err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, Errorf(ErrDuplicate, "You have already enquired about this product")
		}
		return nil, err
	}

	s.publish(EventEnquiryCreated, map[string]interface{}{
		"enquiryId": enquiry.ID,
		"productId": enquiry.ProductID,
		"companyId": enquiry.SellerCompanyID,
		"buyerId":   enquiry.BuyerID,
		"source":    enquiry.Source,
	})
	s.log.Info("enquiry created",
		zap.String("enquiry_id", enquiry.ID),
		zap.String("product_id", enquiry.ProductID),
		zap.String("company_id", enquiry.SellerCompanyID))
	return enquiry, nil
}

// ListForSeller returns the scoped company's enquiries, newest first, with
// product and buyer display rows attached.
func (s *EnquiryService) ListForSeller(scope *SellerScope) ([]models.Enquiry, error) {
	return s.enquiryRepo.ListBySellerCompany(scope.CompanyID())
}

// UpdateStatus transitions an enquiry's status. The value must be one of
// the fixed enum; the update only touches enquiries owned by the scope.
func (s *EnquiryService) UpdateStatus(scope *SellerScope, id, status string) (*models.Enquiry, error) {
	switch status {
	case models.EnquiryStatusNew, models.EnquiryStatusContacted, models.EnquiryStatusClosed:
	default:
		return nil, Errorf(ErrInvalidStatus, "Invalid status value")
	}

	enquiry, err := s.enquiryRepo.UpdateStatusScoped(id, scope.CompanyID(), status)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, Errorf(ErrNotFound, "Enquiry not found or unauthorized")
		}
		return nil, err
	}
	return enquiry, nil
}

func (s *EnquiryService) publish(event string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(event, payload); err != nil {
		s.log.Warn("failed to publish event", zap.String("event", event), zap.Error(err))
	}
}
