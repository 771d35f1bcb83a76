package entity

import (
	"time"
)

// Company is a partner profile keyed by the owning user's auth uid.
type Company struct {
	ID            string    `json:"id" firestore:"id"`
	CompanyName   string    `json:"company_name" firestore:"companyName"`
	Email         string    `json:"email" firestore:"email"`
	Phone         string    `json:"phone" firestore:"phone"`
	Location      string    `json:"location" firestore:"location"`
	LicenseNumber string    `json:"license_number" firestore:"licenseNumber"`
	PhotoURL      string    `json:"photo_url,omitempty" firestore:"photoUrl,omitempty"`
	Role          Role      `json:"role" firestore:"role"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}
