package models

// FirstAidStep is one numbered instruction within a first-aid case.
type FirstAidStep struct {
	Step        int    `bson:"step" json:"step"`
	Description string `bson:"description" json:"description"`
}

// FirstAidCase is a static instructional record, keyed by its Case slug.
// The catalog is read-only; content is seeded out of band.
type FirstAidCase struct {
	Case         string         `bson:"case" json:"case"`
	Title        string         `bson:"title" json:"title"`
	Instructions []FirstAidStep `bson:"instructions" json:"instructions"`
}

// FirstAidSummary is the projection returned by the catalog listing.
type FirstAidSummary struct {
	Case  string `bson:"case" json:"case"`
	Title string `bson:"title" json:"title"`
}
