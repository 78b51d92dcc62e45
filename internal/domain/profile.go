package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type CommunicationStyle string

const (
	CommunicationDirect     CommunicationStyle = "direct"
	CommunicationDiplomatic CommunicationStyle = "diplomatic"
	CommunicationCasual     CommunicationStyle = "casual"
	CommunicationFormal     CommunicationStyle = "formal"
)

func (s CommunicationStyle) IsValid() bool {
	switch s {
	case CommunicationDirect, CommunicationDiplomatic, CommunicationCasual, CommunicationFormal:
		return true
	}
	return false
}

// Traits holds Big Five scores. A nil trait is treated as neutral (50) by the scorers.
type Traits struct {
	Openness          *int `json:"openness" db:"openness"`
	Conscientiousness *int `json:"conscientiousness" db:"conscientiousness"`
	Extraversion      *int `json:"extraversion" db:"extraversion"`
	Agreeableness     *int `json:"agreeableness" db:"agreeableness"`
	Neuroticism       *int `json:"neuroticism" db:"neuroticism"`
}

// Values returns the five traits in a fixed order.
func (t Traits) Values() [5]*int {
	return [5]*int{t.Openness, t.Conscientiousness, t.Extraversion, t.Agreeableness, t.Neuroticism}
}

type LifestyleFlags struct {
	CleanlinessLevel int  `json:"cleanliness_level" db:"cleanliness_level"`
	SocialLevel      int  `json:"social_level" db:"social_level"`
	QuietHours       bool `json:"quiet_hours" db:"quiet_hours"`
	PetsAllowed      bool `json:"pets_allowed" db:"pets_allowed"`
	SmokingAllowed   bool `json:"smoking_allowed" db:"smoking_allowed"`
}

// LifestyleAnswers maps a survey attribute name to its categorical answer.
// It is stored as a JSONB column.
type LifestyleAnswers map[string]string

func (a LifestyleAnswers) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

func (a *LifestyleAnswers) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = LifestyleAnswers{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported lifestyle answers type %T", src)
	}
	out := LifestyleAnswers{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return err
		}
	}
	*a = out
	return nil
}

type PersonalityProfile struct {
	UserID int `json:"user_id" db:"user_id"`
	Traits
	LifestyleFlags
	CommunicationStyle CommunicationStyle `json:"communication_style" db:"communication_style"`
	LifestyleAnswers   LifestyleAnswers   `json:"lifestyle_answers" db:"lifestyle_answers"`
	PreferredCity      *string            `json:"preferred_city,omitempty" db:"preferred_city"`
	CompletedAt        time.Time          `json:"completed_at" db:"completed_at"`
	UpdatedAt          time.Time          `json:"updated_at" db:"updated_at"`
}

// Clamp forces every trait and level score into [0,100].
func (p *PersonalityProfile) Clamp() {
	for _, v := range []*int{
		p.Openness, p.Conscientiousness, p.Extraversion, p.Agreeableness, p.Neuroticism,
		&p.CleanlinessLevel, &p.SocialLevel,
	} {
		if v != nil {
			*v = ClampScore(*v)
		}
	}
}

func ClampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
