package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Appointment struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	ClientName      string             `bson:"client_name"`
	ClientEmail     string             `bson:"client_email"`
	ClientPhone     string             `bson:"client_phone"`
	AppointmentDate time.Time          `bson:"appointment_date"`
	Notes           string             `bson:"notes,omitempty"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at,omitempty"`
}
