package tutor

import (
	"github.com/uptrace/bun"
)

type Tutor struct {
	bun.BaseModel `bun:"table:tutors,alias:t"`

	ID      int    `bun:"tutor_id,pk,autoincrement" json:"tutor_id"`
	Name    string `bun:"tutor_name,notnull" json:"tutor_name"`
	PicURL  string `bun:"tutor_pic_url,notnull" json:"tutor_pic_url"`
	Profile string `bun:"tutor_profile,notnull" json:"tutor_profile"`
}

// NewTutor requires every key to be present; an empty string is a value.
type NewTutor struct {
	Name    *string `json:"tutor_name" validate:"required"`
	PicURL  *string `json:"tutor_pic_url" validate:"required"`
	Profile *string `json:"tutor_profile" validate:"required"`
}

// UpdateTutor holds a partial update; nil fields keep the stored value.
type UpdateTutor struct {
	Name    *string `json:"tutor_name"`
	PicURL  *string `json:"tutor_pic_url"`
	Profile *string `json:"tutor_profile"`
}

func (n NewTutor) ToTutor() *Tutor {
	return &Tutor{
		Name:    deref(n.Name),
		PicURL:  deref(n.PicURL),
		Profile: deref(n.Profile),
	}
}

// Merge returns current with every supplied field of u applied.
func (u UpdateTutor) Merge(current Tutor) *Tutor {
	merged := current
	if u.Name != nil {
		merged.Name = *u.Name
	}
	if u.PicURL != nil {
		merged.PicURL = *u.PicURL
	}
	if u.Profile != nil {
		merged.Profile = *u.Profile
	}
	return &merged
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
