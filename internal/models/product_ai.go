package models

import "time"

// DefaultAIModel identifies the generation model recorded on cached rows.
const DefaultAIModel = "gemini-2.5-flash"

// ProductAI caches AI-generated enrichment content for one product. Created
// lazily on the first enrichment request and immutable thereafter; there is
// no expiry or refresh path.
type ProductAI struct {
	ID              string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID       string     `json:"productId" gorm:"uniqueIndex;type:varchar(36)"`
	ProductName     string     `json:"productName" gorm:"type:varchar(120)"`
	Highlights      StringList `json:"highlights" gorm:"type:text"`
	Specifications  StringMap  `json:"specifications" gorm:"type:text"`
	LongDescription string     `json:"longDescription" gorm:"type:text"`
	ModelUsed       string     `json:"modelUsed" gorm:"type:varchar(50);default:gemini-2.5-flash"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
