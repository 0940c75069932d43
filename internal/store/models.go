package store

import (
	"time"
)

// Campaign is a named outreach effort tied to one candidate
type Campaign struct {
	ID            int64     `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Description   string    `db:"description" json:"description"`
	CandidateName string    `db:"candidate_name" json:"candidate_name"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Contact is a phone number to be surveyed
type Contact struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Call is one placed telephone interaction for a (Campaign, Contact) pair
type Call struct {
	ID                 int64      `db:"id" json:"id"`
	CampaignID         int64      `db:"campaign_id" json:"campaign_id"`
	ContactID          int64      `db:"contact_id" json:"contact_id"`
	Status             string     `db:"status" json:"status"`
	ProviderCallSID    string     `db:"provider_call_sid" json:"provider_call_sid"`
	StartedAt          *time.Time `db:"started_at" json:"started_at,omitempty"`
	EndedAt            *time.Time `db:"ended_at" json:"ended_at,omitempty"`
	Preference         *string    `db:"preference" json:"preference,omitempty"`
	LoyaltyScore       *int       `db:"loyalty_score" json:"loyalty_score,omitempty"`
	LastProviderStatus string     `db:"last_provider_status" json:"last_provider_status"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

// IsAnswered reports whether a preference has been recorded for the call
func (c Call) IsAnswered() bool {
	return c.Preference != nil && c.LoyaltyScore != nil
}

// CallDetail is a call joined with its campaign, contact and response count
type CallDetail struct {
	Call
	CampaignName  string `db:"campaign_name" json:"campaign_name"`
	CandidateName string `db:"candidate_name" json:"candidate_name"`
	ContactName   string `db:"contact_name" json:"contact_name"`
	ContactPhone  string `db:"contact_phone" json:"contact_phone"`
	ResponseCount int    `db:"response_count" json:"response_count"`
}

// Response is one recorded answer to the survey question within a call
type Response struct {
	ID           int64     `db:"id" json:"id"`
	CallID       int64     `db:"call_id" json:"call_id"`
	QuestionText string    `db:"question_text" json:"question_text"`
	AnswerRaw    string    `db:"answer_raw" json:"answer_raw"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// StatusCount is the number of calls in one lifecycle status
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Total  int    `db:"total" json:"total"`
}

// PreferenceCount groups answered calls of a campaign by classification
type PreferenceCount struct {
	Preference   string `db:"preference" json:"preference"`
	LoyaltyScore int    `db:"loyalty_score" json:"loyalty_score"`
	Total        int    `db:"total" json:"total"`
}
