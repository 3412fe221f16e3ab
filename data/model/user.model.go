package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password_hash"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role         UserRole           `json:"role" bson:"role"`
	AvatarImage  string             `json:"avatar_image,omitempty" bson:"avatar_image,omitempty"`

	// EMP profile
	Specialization       string    `json:"specialization,omitempty" bson:"specialization,omitempty"`
	YearsOfExperience    int       `json:"years_of_experience,omitempty" bson:"years_of_experience,omitempty"`
	Certifications       []string  `json:"certifications,omitempty" bson:"certifications,omitempty"`
	AssignedEmergencies  int       `json:"assigned_emergencies" bson:"assigned_emergencies"`
	CompletedEmergencies int       `json:"completed_emergencies" bson:"completed_emergencies"`
	AvailabilityStatus   string    `json:"availability_status,omitempty" bson:"availability_status,omitempty"`
	LastActive           time.Time `json:"last_active,omitempty" bson:"last_active,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

type UserRole string

const (
	UserRoleEMP       UserRole = "emp"
	UserRoleAdmin     UserRole = "admin"
	UserRoleApplicant UserRole = "applicant"
)

// ActiveEmergencies is assigned minus completed.
func (u User) ActiveEmergencies() int {
	return u.AssignedEmergencies - u.CompletedEmergencies
}

var Specializations = []string{
	"Emergency Medicine",
	"Trauma",
	"Critical Care",
	"Pediatric Emergency",
	"Cardiac Emergency",
	"Disaster Response",
	"General Emergency",
}

var Certifications = []string{
	"Advanced Cardiac Life Support",
	"Pediatric Advanced Life Support",
	"Basic Life Support",
	"Advanced Trauma Life Support",
	"Emergency Medical Technician",
	"Paramedic Certification",
	"Crisis Intervention",
	"Hazardous Materials Certification",
}

var AvailabilityStatuses = []string{
	"Available",
	"On Call",
	"On Emergency",
	"Off Duty",
	"On Break",
}
