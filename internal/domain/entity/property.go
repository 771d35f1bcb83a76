package entity

import (
	"fmt"
	"strings"
	"time"
)

type PropertyStatus string

const (
	StatusDraft         PropertyStatus = "draft"
	StatusPendingReview PropertyStatus = "pending_review"
	StatusApproved      PropertyStatus = "approved"
	StatusRejected      PropertyStatus = "rejected"
)

// PropertyTypes is the closed set of accepted listing types.
var PropertyTypes = []string{"Apartment", "Villa", "Townhouse", "Commercial", "Office", "Land"}

func IsValidPropertyType(t string) bool {
	for _, pt := range PropertyTypes {
		if pt == t {
			return true
		}
	}
	return false
}

func IsValidStatus(s PropertyStatus) bool {
	switch s {
	case StatusDraft, StatusPendingReview, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Property struct {
	ID           string         `json:"id" firestore:"id"`
	OwnerUID     string         `json:"owner_uid" firestore:"ownerUid"`
	Title        string         `json:"title" firestore:"title"`
	Type         string         `json:"type" firestore:"type"`
	City         string         `json:"city" firestore:"city"`
	Neighborhood string         `json:"neighborhood" firestore:"neighborhood"`
	Description  string         `json:"description" firestore:"description"`
	Price        float64        `json:"price" firestore:"price"`
	Size         float64        `json:"size" firestore:"size"`
	Bedrooms     int            `json:"bedrooms" firestore:"bedrooms"`
	Bathrooms    int            `json:"bathrooms" firestore:"bathrooms"`
	Kitchens     int            `json:"kitchens" firestore:"kitchens"`
	LivingRooms  int            `json:"living_rooms" firestore:"livingRooms"`
	Status       PropertyStatus `json:"status" firestore:"status"`

	RejectionReason string `json:"rejection_reason,omitempty" firestore:"rejectionReason"`

	// 3D model blob metadata. Required once the listing reaches review.
	FileName string `json:"file_name,omitempty" firestore:"fileName,omitempty"`
	FileSize int64  `json:"file_size,omitempty" firestore:"fileSize,omitempty"`
	FileType string `json:"file_type,omitempty" firestore:"fileType,omitempty"`
	FilePath string `json:"file_path,omitempty" firestore:"filePath,omitempty"`
	FileURL  string `json:"file_url,omitempty" firestore:"fileUrl,omitempty"`

	// Optional cover image metadata.
	ImageName string `json:"image_name,omitempty" firestore:"imageName,omitempty"`
	ImageSize int64  `json:"image_size,omitempty" firestore:"imageSize,omitempty"`
	ImageType string `json:"image_type,omitempty" firestore:"imageType,omitempty"`
	ImagePath string `json:"image_path,omitempty" firestore:"imagePath,omitempty"`
	ImageURL  string `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// HasModel reports whether 3D model metadata is on file.
func (p *Property) HasModel() bool {
	return p.FileName != ""
}

// CanSubmit reports whether the listing may move to pending_review.
func (p *Property) CanSubmit() bool {
	return p.Status == StatusDraft || p.Status == StatusRejected
}

// CanApprove reports whether an admin may approve from the current status.
func (p *Property) CanApprove() bool {
	return p.Status == StatusPendingReview || p.Status == StatusDraft || p.Status == StatusRejected
}

// CanReject reports whether an admin may reject from the current status.
func (p *Property) CanReject() bool {
	return p.Status == StatusPendingReview || p.Status == StatusDraft || p.Status == StatusApproved
}

// BuildDescription generates the listing description from the structured
// room counts. The description field is never freely authored.
func BuildDescription(bedrooms, bathrooms, kitchens, livingRooms int) string {
	parts := []string{
		fmt.Sprintf("Property with %s and %s",
			pluralize(bedrooms, "bedroom"),
			pluralize(bathrooms, "bathroom")),
	}

	var facilities []string
	if kitchens > 0 {
		facilities = append(facilities, pluralize(kitchens, "kitchen"))
	}
	if livingRooms > 0 {
		facilities = append(facilities, pluralize(livingRooms, "living room"))
	}
	if len(facilities) > 0 {
		parts = append(parts, "includes "+strings.Join(facilities, " and "))
	}

	return strings.Join(parts, ", ") + "."
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
