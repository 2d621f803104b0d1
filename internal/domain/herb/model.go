package herb

import "time"

// Herb is one cultivation event recorded by a farmer. The table keeps the
// historical herb_data name.
type Herb struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	FarmerID          uint      `gorm:"not null;index" json:"farmer_id"`
	HerbName          string    `gorm:"size:100;not null" json:"herb_name"`
	GrowthMonth       string    `gorm:"size:50;not null" json:"growth_month"`
	FertilizerUsed    bool      `gorm:"not null" json:"fertilizer_used"`
	FertilizerDetails *string   `gorm:"size:200" json:"fertilizer_details"` // only set when FertilizerUsed
	HarvestingMethod  string    `gorm:"size:200;not null" json:"harvesting_method"`
	Location          string    `gorm:"size:300;not null" json:"location"`
	Latitude          *float64  `json:"latitude"`
	Longitude         *float64  `json:"longitude"`
	CreatedAt         time.Time `json:"created_at"`
}

func (Herb) TableName() string {
	return "herb_data"
}
