package models

import "time"

// Enquiry statuses. Transitions are seller-driven and validated against this
// set: new -> contacted -> closed.
const (
	EnquiryStatusNew       = "new"
	EnquiryStatusContacted = "contacted"
	EnquiryStatusClosed    = "closed"
)

// Enquiry sources record which surface the buyer enquired from.
const (
	EnquirySourceProduct = "product"
	EnquirySourceCompare = "compare"
	EnquirySourceSearch  = "search"
)

// Enquiry is a buyer's lead on a product. SellerCompanyID is denormalized
// from the product at creation time so seller-side queries never join
// through Product. At most one enquiry per (buyer, product) pair.
type Enquiry struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BuyerID         string    `json:"buyer" gorm:"index;uniqueIndex:idx_buyer_product;type:varchar(36)"`
	SellerCompanyID string    `json:"sellerCompany" gorm:"index;type:varchar(36)"`
	ProductID       string    `json:"product" gorm:"index;uniqueIndex:idx_buyer_product;type:varchar(36)"`
	Name            string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Email           string    `json:"email" gorm:"type:varchar(255)" validate:"required,email"`
	Mobile          string    `json:"mobile" gorm:"type:varchar(10)" validate:"required,inmobile"`
	Message         string    `json:"message" gorm:"type:text" validate:"omitempty,max=1000"`
	Status          string    `json:"status" gorm:"index;type:varchar(10);default:new"`
	Source          string    `json:"source" gorm:"type:varchar(10);default:product" validate:"omitempty,oneof=product compare search"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	Buyer   *User    `json:"buyerInfo,omitempty" gorm:"foreignKey:BuyerID;references:ID"`
	Product *Product `json:"productInfo,omitempty" gorm:"foreignKey:ProductID;references:ID"`
}
