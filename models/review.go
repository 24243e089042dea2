package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a user review of a service. ServiceID carries the textual form
// of the reviewed service's identifier; it is matched as a plain string and
// never enforced as a foreign key.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ServiceID string             `bson:"serviceId" json:"serviceId"`
	Text      string             `bson:"text" json:"text"`
	Date      string             `bson:"date" json:"date"`
	Rating    float64            `bson:"rating" json:"rating"`
	Email     string             `bson:"email" json:"email"`

	// Snapshot of the reviewed service, populated at read time by the
	// enrichment join. Absent when the referenced service no longer exists.
	ServiceTitle string `bson:"serviceTitle,omitempty" json:"serviceTitle,omitempty"`
	ServiceImage string `bson:"serviceImage,omitempty" json:"serviceImage,omitempty"`
	CompanyName  string `bson:"companyName,omitempty" json:"companyName,omitempty"`
}

// ReviewFields is the fixed field set overwritten by the review
// replace-or-create operation.
type ReviewFields struct {
	Text   string  `bson:"text" json:"text"`
	Date   string  `bson:"date" json:"date"`
	Rating float64 `bson:"rating" json:"rating"`
}
