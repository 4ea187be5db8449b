package profile

import (
	"errors"
	"fmt"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

const (
	DefaultHeight = 170.0
	DefaultWeight = 70.0
	DefaultAge    = 30
	DefaultGender = GenderOther
)

type Profile struct {
	ID        int       `json:"-"`
	ClientID  string    `json:"-"`
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
	Age       int       `json:"age"`
	Gender    Gender    `json:"gender"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Default is the profile materialized on first access for a client.
func Default(clientID string) Profile {
	return Profile{
		ClientID: clientID,
		Height:   DefaultHeight,
		Weight:   DefaultWeight,
		Age:      DefaultAge,
		Gender:   DefaultGender,
	}
}

func (p Profile) Validate() error {
	if p.Height <= 0 {
		return fmt.Errorf("height must be positive, got %f", p.Height)
	}
	if p.Weight <= 0 {
		return fmt.Errorf("weight must be positive, got %f", p.Weight)
	}
	if p.Age <= 0 {
		return fmt.Errorf("age must be positive, got %d", p.Age)
	}
	switch p.Gender {
	case GenderMale, GenderFemale, GenderOther:
		// ok
	default:
		return fmt.Errorf("unknown gender: %s", p.Gender)
	}
	return nil
}

// UpdateParams carries a partial profile update, absent fields fall back
// to the existing profile values or the defaults.
type UpdateParams struct {
	Height *float64 `json:"height"`
	Weight *float64 `json:"weight"`
	Age    *int     `json:"age"`
	Gender *Gender  `json:"gender"`
}

// MergeOver applies the given fields over the base profile.
func (params UpdateParams) MergeOver(base Profile) Profile {
	merged := base
	if params.Height != nil {
		merged.Height = *params.Height
	}
	if params.Weight != nil {
		merged.Weight = *params.Weight
	}
	if params.Age != nil {
		merged.Age = *params.Age
	}
	if params.Gender != nil {
		merged.Gender = *params.Gender
	}
	return merged
}
