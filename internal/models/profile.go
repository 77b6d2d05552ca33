package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile developer profile. A user owns at most one.
type Profile struct {
	ID             string       `json:"_id" gorm:"primaryKey;size:36"`
	UserID         string       `json:"-" gorm:"size:36;uniqueIndex;not null"`
	User           *User        `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Company        string       `json:"company,omitempty"`
	Website        string       `json:"website,omitempty"`
	Location       string       `json:"location,omitempty"`
	Bio            string       `json:"bio,omitempty"`
	Status         string       `json:"status"`
	GithubUsername string       `json:"githubusername,omitempty"`
	Skills         []string     `json:"skills" gorm:"serializer:json;type:text"`
	Social         Social       `json:"social" gorm:"embedded;embeddedPrefix:social_"`
	Experience     []Experience `json:"experience" gorm:"serializer:json;type:text"`
	Education      []Education  `json:"education" gorm:"serializer:json;type:text"`
	Date           time.Time    `json:"date"`
}

// Social named links shown on a profile.
type Social struct {
	YouTube   string `json:"youtube,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Indeed    string `json:"indeed,omitempty"`
	Instagram string `json:"instagram,omitempty"`
}

// Experience a job entry.
type Experience struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location,omitempty"`
	From        time.Time  `json:"from"`
	To          *time.Time `json:"to"`
	Current     bool       `json:"current"`
	Description string     `json:"description,omitempty"`
}

// Education a school entry.
type Education struct {
	ID           string     `json:"_id"`
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldofstudy"`
	From         time.Time  `json:"from"`
	To           *time.Time `json:"to"`
	Current      bool       `json:"current"`
	Description  string     `json:"description,omitempty"`
}

// BeforeCreate assigns a generated identifier.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// AfterFind keeps list fields serializing as [] instead of null.
func (p *Profile) AfterFind(tx *gorm.DB) error {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	return nil
}
