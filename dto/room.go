package dto

import "github.com/shopspring/decimal"

type CreateRoomRequest struct {
	RoomNumber    string          `json:"roomNumber" binding:"required,max=20"`
	RoomType      string          `json:"roomType" binding:"required,max=50"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	MaxOccupancy  int             `json:"maxOccupancy" binding:"required,min=1,max=10"`
	Amenities     []string        `json:"amenities"`
	Description   string          `json:"description"`
}

// UpdateRoomRequest only touches the fields that are set.
type UpdateRoomRequest struct {
	RoomNumber    *string          `json:"roomNumber" binding:"omitempty,min=1,max=20"`
	RoomType      *string          `json:"roomType" binding:"omitempty,min=1,max=50"`
	PricePerNight *decimal.Decimal `json:"pricePerNight"`
	MaxOccupancy  *int             `json:"maxOccupancy" binding:"omitempty,min=1,max=10"`
	Amenities     []string         `json:"amenities"`
	Description   *string          `json:"description"`
}

type RoomFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=Available Occupied Reserved"`
	RoomType string `form:"room_type"`
}
