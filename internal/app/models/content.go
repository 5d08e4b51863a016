package models

import "time"

// ContentSection is one editable copy block of the public site, keyed by the
// section name (hero, about, online_therapy, contact). Fields stay schemaless
// so the admin panel can evolve section copy without a migration.
type ContentSection struct {
	Section   string            `bson:"_id"`
	Fields    map[string]string `bson:"fields"`
	UpdatedAt time.Time         `bson:"updated_at,omitempty"`
}

type FaqItem struct {
	Question string `bson:"question"`
	Answer   string `bson:"answer"`
}

type FaqDocument struct {
	ID        string    `bson:"_id"`
	Faqs      []FaqItem `bson:"faqs"`
	UpdatedAt time.Time `bson:"updated_at,omitempty"`
}
