package model

import "time"

// Restaurant is a claimed listing augmented with owner-supplied metadata.
// PlaceID is the upstream place identifier; the unique index makes a second
// claim of the same place a conflict rather than a merge.
type Restaurant struct {
	ID                 uint      `json:"id" gorm:"primaryKey"`
	Name               string    `json:"name" gorm:"size:255;not null"`
	Address            string    `json:"address" gorm:"size:512;not null"`
	Rating             *float64  `json:"rating,omitempty"`
	TotalRatings       *int      `json:"total_ratings,omitempty"`
	PlaceID            string    `json:"place_id" gorm:"uniqueIndex;size:255;not null"`
	OwnerID            *uint     `json:"owner_id,omitempty" gorm:"index"`
	PhoneNumber        string    `json:"phone_number,omitempty" gorm:"size:32"`
	Website            string    `json:"website,omitempty" gorm:"size:512"`
	HalalCertification string    `json:"halal_certification,omitempty" gorm:"size:255"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
