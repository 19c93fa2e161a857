package models

import "time"

// Medicine is one entry of the structured plan extracted from a
// prescription image. Names stay in their original Latin form; the other
// fields are rendered in the user's target language.
type Medicine struct {
	Name        string `bson:"name" json:"name"`
	Purpose     string `bson:"purpose" json:"purpose"`
	Schedule    string `bson:"schedule" json:"schedule"`
	SideEffects string `bson:"side_effects" json:"side_effects"`
}

// Prescription is the persisted result of one successful pipeline run.
// Immutable after creation; a user's "latest" prescription is the one with
// the maximum CreatedAt.
type Prescription struct {
	ID              string     `bson:"id" json:"id"`
	UserID          string     `bson:"userId" json:"userId"`
	OriginalText    string     `bson:"originalText" json:"originalText"`
	Medicines       []Medicine `bson:"medicines" json:"medicines"`
	LifestyleAdvice []string   `bson:"lifestyleAdvice" json:"lifestyleAdvice"`
	CreatedAt       time.Time  `bson:"createdAt" json:"createdAt"`
}

// PrescriptionAnalysis is the JSON shape the language model is instructed
// to return for a prescription image.
type PrescriptionAnalysis struct {
	Medicines       []Medicine `json:"medicines"`
	LifestyleAdvice []string   `json:"lifestyleAdvice"`
}
