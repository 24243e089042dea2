package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a listed service offering. The email field is the owner's
// address and keys the "my services" queries.
type Service struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ServiceImage string             `bson:"serviceImage" json:"serviceImage"`
	ServiceTitle string             `bson:"serviceTitle" json:"serviceTitle"`
	CompanyName  string             `bson:"companyName" json:"companyName"`
	Website      string             `bson:"website" json:"website"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"`
	Price        string             `bson:"price" json:"price"`
	AddedDate    string             `bson:"addedDate" json:"addedDate"`
	Email        string             `bson:"email" json:"email"`
}

// ServiceFields is the fixed field set overwritten by the service
// replace-or-create operation.
type ServiceFields struct {
	ServiceImage string `bson:"serviceImage" json:"serviceImage"`
	ServiceTitle string `bson:"serviceTitle" json:"serviceTitle"`
	CompanyName  string `bson:"companyName" json:"companyName"`
	Website      string `bson:"website" json:"website"`
	Description  string `bson:"description" json:"description"`
	Category     string `bson:"category" json:"category"`
	Price        string `bson:"price" json:"price"`
	AddedDate    string `bson:"addedDate" json:"addedDate"`
	Email        string `bson:"email" json:"email"`
}
