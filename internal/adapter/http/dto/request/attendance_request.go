package request

import "jiyajewellery/internal/domain/entities"

// LocationRequest is the device position sent with check-in and check-out.
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Accuracy  float64  `json:"accuracy" validate:"gte=0"`
}

func (r LocationRequest) ToEntity() entities.Location {
	var loc entities.Location
	if r.Latitude != nil {
		loc.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		loc.Longitude = *r.Longitude
	}
	loc.Accuracy = r.Accuracy
	return loc
}
