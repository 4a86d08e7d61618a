package models

import (
	"time"
)

// Role values for users. Auth itself lives outside this service; the role
// only gates which operations make sense for a user ID.
const (
	RoleCandidate = "candidate"
	RoleRecruiter = "recruiter"
)

// Swipe labels. Mash is the "like" outcome.
const (
	LabelPass = 0
	LabelMash = 1
)

// JobFields is the fixed set collaborators present in the UI. The stores and
// the model pipeline treat the field as an opaque string; this list is a
// convention, not a constraint the stores enforce.
var JobFields = []string{
	"software",
	"data",
	"finance",
	"marketing",
	"design",
	"unspecified",
}

// IsKnownJobField reports whether field is in JobFields.
func IsKnownJobField(field string) bool {
	for _, f := range JobFields {
		if f == field {
			return true
		}
	}
	return false
}

type User struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Role      string    `db:"role"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type Resume struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	Filename   string    `db:"filename"`
	Text       string    `db:"text"`
	TextHash   string    `db:"text_hash"`
	JobField   string    `db:"job_field"`
	UploadedAt time.Time `db:"uploaded_at"`
}

type Swipe struct {
	ID        int64     `db:"id"`
	ResumeID  int64     `db:"resume_id"`
	UserID    int64     `db:"user_id"`
	Label     int       `db:"label"`
	CreatedAt time.Time `db:"created_at"`
}

// LabeledExample is one (resume text, swipe label) training pair. Built per
// training run from the swipe/resume join, never stored on its own.
type LabeledExample struct {
	Text  string
	Label int
}

// FieldStats summarises one job field for operators: how much swipe data
// exists, how it splits by label, and whether a trained model is live.
type FieldStats struct {
	JobField    string     `json:"job_field"`
	ResumeCount int        `json:"resume_count"`
	SwipeCount  int        `json:"swipe_count"`
	MashCount   int        `json:"mash_count"`
	PassCount   int        `json:"pass_count"`
	Model       *ModelInfo `json:"model,omitempty"`
}

// ModelInfo is the metadata half of a stored bundle, safe to expose over
// the API without shipping the weights.
type ModelInfo struct {
	Version     string    `json:"version"`
	TrainedAt   time.Time `json:"trained_at"`
	SampleCount int       `json:"sample_count"`
}
