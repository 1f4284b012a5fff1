package models

import "time"

// Address is the embedded postal address of a company. City and state are
// required during onboarding; country defaults to India.
type Address struct {
	City    string `json:"city" gorm:"type:varchar(100)"`
	State   string `json:"state" gorm:"type:varchar(100)"`
	Country string `json:"country" gorm:"type:varchar(100);default:India"`
	Pincode string `json:"pincode" gorm:"type:varchar(10)"`
}

// Company is a seller's tenant profile. Exactly one company per owning user;
// the subdomain routes to the company's public storefront.
type Company struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	OwnerID         string    `json:"owner" gorm:"uniqueIndex;type:varchar(36)"`
	CompanyName     string    `json:"companyName" gorm:"type:varchar(150)" validate:"required"`
	BusinessType    string    `json:"businessType" gorm:"type:varchar(100)" validate:"required"`
	Description     string    `json:"description" gorm:"type:text"`
	GSTNumber       string    `json:"gstNumber" gorm:"type:varchar(20)"`
	Address         Address   `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	EstablishedYear int       `json:"establishedYear"`
	SubDomain       string    `json:"subDomain" gorm:"uniqueIndex;type:varchar(63)" validate:"required"`
	Logo            string    `json:"logo" gorm:"type:varchar(500)"`
	IsVerified      bool      `json:"isVerified"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
