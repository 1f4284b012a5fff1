package models

import "time"

// Location is where a product ships from.
type Location struct {
	City    string `json:"city" gorm:"type:varchar(100)"`
	State   string `json:"state" gorm:"type:varchar(100)"`
	Country string `json:"country" gorm:"type:varchar(100);default:India"`
}

// Product is a listing owned by one company. Deleting a product flips
// IsActive to false; rows are never physically removed.
//
// OwnerID and the denormalized SubDomain are indexed but not unique: a
// seller lists many products, all sharing the owner and storefront
// subdomain.
type Product struct {
	ID              string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OwnerID         string     `json:"owner" gorm:"index;type:varchar(36)"`
	SellerCompanyID string     `json:"sellerCompany" gorm:"index;type:varchar(36)"`
	SubDomain       string     `json:"subDomain" gorm:"index;type:varchar(63)"`
	Name            string     `json:"name" gorm:"type:varchar(120)" validate:"required,min=3,max=120"`
	Slug            string     `json:"slug" gorm:"uniqueIndex;type:varchar(150)"`
	Price           float64    `json:"price" validate:"gte=0"`
	Category        string     `json:"category" gorm:"index;type:varchar(100)" validate:"required"`
	Description     string     `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	Images          ImageList  `json:"images" gorm:"type:text"`
	Stock           int        `json:"stock" gorm:"default:0" validate:"gte=0"`
	IsActive        bool       `json:"isActive" gorm:"default:true"`
	MinOrderQty     int        `json:"minOrderQty" gorm:"default:1" validate:"gte=1"`
	Tags            StringList `json:"tags" gorm:"type:text"`
	Location        Location   `json:"location" gorm:"embedded;embeddedPrefix:location_"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// StockValue is the inventory value of the listing.
func (p *Product) StockValue() float64 {
	return p.Price * float64(p.Stock)
}
