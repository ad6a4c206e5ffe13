package course

import (
	"time"

	"github.com/uptrace/bun"
)

type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID          int       `bun:"course_id,pk,autoincrement" json:"course_id"`
	TutorID     int       `bun:"tutor_id,notnull" json:"tutor_id"`
	Name        string    `bun:"course_name,notnull" json:"course_name"`
	Description *string   `bun:"course_description" json:"course_description"`
	Format      *string   `bun:"course_format" json:"course_format"`
	Structure   *string   `bun:"course_structure" json:"course_structure"`
	Duration    *string   `bun:"course_duration" json:"course_duration"`
	Price       *int      `bun:"course_price" json:"course_price"`
	Language    *string   `bun:"course_language" json:"course_language"`
	Level       *string   `bun:"course_level" json:"course_level"`
	PostedTime  time.Time `bun:"posted_time,nullzero,notnull,default:current_timestamp" json:"posted_time"`
}

// NewCourse requires tutor_id and course_name to be present.
type NewCourse struct {
	TutorID     *int    `json:"tutor_id" validate:"required"`
	Name        *string `json:"course_name" validate:"required"`
	Description *string `json:"course_description"`
	Format      *string `json:"course_format"`
	Structure   *string `json:"course_structure"`
	Duration    *string `json:"course_duration"`
	Price       *int    `json:"course_price"`
	Language    *string `json:"course_language"`
	Level       *string `json:"course_level"`
}

// UpdateCourse holds a partial update; nil fields keep the stored value.
type UpdateCourse struct {
	Name        *string `json:"course_name"`
	Description *string `json:"course_description"`
	Format      *string `json:"course_format"`
	Structure   *string `json:"course_structure"`
	Duration    *string `json:"course_duration"`
	Price       *int    `json:"course_price"`
	Language    *string `json:"course_language"`
	Level       *string `json:"course_level"`
}

// updatableColumns excludes the keys and posted_time, which never change.
var updatableColumns = []string{
	"course_name",
	"course_description",
	"course_format",
	"course_structure",
	"course_duration",
	"course_price",
	"course_language",
	"course_level",
}

func (n NewCourse) ToCourse() *Course {
	return &Course{
		TutorID:     *n.TutorID,
		Name:        *n.Name,
		Description: n.Description,
		Format:      n.Format,
		Structure:   n.Structure,
		Duration:    n.Duration,
		Price:       n.Price,
		Language:    n.Language,
		Level:       n.Level,
	}
}

// Merge returns current with every supplied field of u applied. An optional
// field absent from both u and current comes back as "" (price 0), so a
// stored NULL does not survive an update.
func (u UpdateCourse) Merge(current Course) *Course {
	merged := current

	if u.Name != nil {
		merged.Name = *u.Name
	}
	merged.Description = pick(u.Description, current.Description)
	merged.Format = pick(u.Format, current.Format)
	merged.Structure = pick(u.Structure, current.Structure)
	merged.Duration = pick(u.Duration, current.Duration)
	merged.Price = pick(u.Price, current.Price)
	merged.Language = pick(u.Language, current.Language)
	merged.Level = pick(u.Level, current.Level)

	return &merged
}

func pick[T any](update, current *T) *T {
	var v T
	switch {
	case update != nil:
		v = *update
	case current != nil:
		v = *current
	}
	return &v
}
