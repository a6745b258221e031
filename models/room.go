package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Room struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	RoomNumber       string          `json:"roomNumber" gorm:"uniqueIndex;size:20;not null"`
	RoomType         string          `json:"roomType" gorm:"size:50;not null"`
	PricePerNight    decimal.Decimal `json:"pricePerNight" gorm:"type:numeric(12,2);not null"`
	MaxOccupancy     int             `json:"maxOccupancy" gorm:"not null"`
	Amenities        datatypes.JSON  `json:"amenities"`
	Description      string          `json:"description"`
	Status           string          `json:"status" gorm:"size:20;not null;default:Available"`
	CurrentGuest     *string         `json:"currentGuest,omitempty"`
	ExpectedCheckout *time.Time      `json:"expectedCheckout,omitempty" gorm:"type:date"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// AmenityList decodes the amenity set; malformed data reads as empty.
func (r *Room) AmenityList() []string {
	if len(r.Amenities) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(r.Amenities, &out); err != nil {
		return []string{}
	}
	return out
}

// SetAmenities stores a de-duplicated amenity set.
func (r *Room) SetAmenities(amenities []string) {
	seen := make(map[string]bool, len(amenities))
	set := make([]string, 0, len(amenities))
	for _, a := range amenities {
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		set = append(set, a)
	}
	b, _ := json.Marshal(set)
	r.Amenities = datatypes.JSON(b)
}
