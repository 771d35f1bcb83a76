package entity

// Favorite is a marker document under a customer's favorites subcollection.
// The document id is the property id and existence is the whole signal; the
// stored document carries no fields.
type Favorite struct {
	CustomerUID string `json:"customer_uid" firestore:"-"`
	PropertyID  string `json:"property_id" firestore:"-"`
}

// FavoriteProperty is a favorited listing joined with display data for the
// customer dashboard.
type FavoriteProperty struct {
	Property    *Property `json:"property"`
	CompanyName string    `json:"company_name,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
}
