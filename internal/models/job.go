package models

import (
	"time"
)

// Known job record origins. Producers outside this module (scrapers, API
// handlers, import scripts) stamp one of these on every record they emit.
const (
	SourceLinkedIn     = "linkedin"
	SourceIndeed       = "indeed"
	SourceGreenhouse   = "greenhouse"
	SourceLever        = "lever"
	SourceCompanySite  = "company_site"
	SourceManualUpload = "manual_upload"
)

// RemoteType classifies how location-bound a posting is.
type RemoteType string

const (
	RemoteTypeOnsite RemoteType = "onsite"
	RemoteTypeHybrid RemoteType = "hybrid"
	RemoteTypeRemote RemoteType = "remote"
)

// SalaryPeriod is the pay period the source quoted amounts in.
type SalaryPeriod string

const (
	SalaryPeriodHour  SalaryPeriod = "hour"
	SalaryPeriodDay   SalaryPeriod = "day"
	SalaryPeriodMonth SalaryPeriod = "month"
	SalaryPeriodYear  SalaryPeriod = "year"
)

// Seniority levels, ordered roughly by career stage.
type Seniority string

const (
	SeniorityEntry    Seniority = "entry"
	SeniorityMid      Seniority = "mid"
	SenioritySenior   Seniority = "senior"
	SeniorityLead     Seniority = "lead"
	SeniorityDirector Seniority = "director"
	SeniorityVP       Seniority = "vp"
	SeniorityCXO      Seniority = "cxo"
	SeniorityUnknown  Seniority = "unknown"
)

// Company is an embedded value object; branding/domain resolution is handled
// by an external collaborator and never called from this pipeline.
type Company struct {
	Name   string `json:"name" yaml:"name"`
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"`
}

// Location describes where a job is based.
type Location struct {
	City       string     `json:"city,omitempty" yaml:"city,omitempty"`
	State      string     `json:"state,omitempty" yaml:"state,omitempty"`
	Country    string     `json:"country,omitempty" yaml:"country,omitempty"`
	RemoteType RemoteType `json:"remote_type,omitempty" yaml:"remote_type,omitempty"`
}

// Salary carries the source-quoted range plus normalized annual figures
// computed by the normalizer. Amounts are NOT converted across currencies;
// NormalizedCurrency mirrors the configured base currency only when the
// source currency already matches it.
type Salary struct {
	Min                 float64      `json:"min,omitempty" yaml:"min,omitempty"`
	Max                 float64      `json:"max,omitempty" yaml:"max,omitempty"`
	Currency            string       `json:"currency,omitempty" yaml:"currency,omitempty"`
	Period              SalaryPeriod `json:"period,omitempty" yaml:"period,omitempty"`
	NormalizedAnnualMin float64      `json:"normalized_annual_min,omitempty" yaml:"normalized_annual_min,omitempty"`
	NormalizedAnnualMax float64      `json:"normalized_annual_max,omitempty" yaml:"normalized_annual_max,omitempty"`
	NormalizedCurrency  string       `json:"normalized_currency,omitempty" yaml:"normalized_currency,omitempty"`
}

// JobDTO is the untrusted producer-supplied record before normalization.
// Every field except Source, Title, Company.Name and PostedAt may be absent.
type JobDTO struct {
	Source            string     `json:"source" yaml:"source" validate:"required"`
	ExternalID        string     `json:"external_id,omitempty" yaml:"external_id,omitempty"`
	CanonicalURL      string     `json:"canonical_url,omitempty" yaml:"canonical_url,omitempty"`
	Title             string     `json:"title" yaml:"title"`
	Company           Company    `json:"company" yaml:"company"`
	Location          Location   `json:"location" yaml:"location"`
	Salary            *Salary    `json:"salary,omitempty" yaml:"salary,omitempty"`
	Seniority         Seniority  `json:"seniority,omitempty" yaml:"seniority,omitempty"`
	Description       string     `json:"description,omitempty" yaml:"description,omitempty"`
	Skills            []string   `json:"skills,omitempty" yaml:"skills,omitempty"`
	Benefits          []string   `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	PostedAt          *time.Time `json:"posted_at" yaml:"posted_at"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
	ApplicationCount  int        `json:"application_count,omitempty" yaml:"application_count,omitempty"`
	ReferralAvailable bool       `json:"referral_available,omitempty" yaml:"referral_available,omitempty"`
}

// JobAudit is the per-record bookkeeping block. FirstSeenAt is set once at
// creation and never mutated; LastSeenAt moves forward on every successful
// ingestion touching the record, even when no visible field changes.
type JobAudit struct {
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
	LastSource  string    `json:"last_source"`
}

// CanonicalJob is the persisted entity. One logical posting has exactly one
// canonical record, identified by CompositeKey.
type CanonicalJob struct {
	// Identity
	ID           string `json:"id"`                                   // job_{uuid}
	CompositeKey string `json:"composite_key" badgerhold:"unique"`    // immutable once assigned
	Hash         string `json:"hash"`                                 // content fingerprint, fallback identity
	Source       string `json:"source" badgerhold:"index"`            // last writing source is tracked in Audit
	ExternalID   string `json:"external_id,omitempty"`
	CanonicalURL string `json:"canonical_url,omitempty"`

	// Content
	Title                string     `json:"title"`
	Company              Company    `json:"company"`
	Location             Location   `json:"location"`
	Salary               *Salary    `json:"salary,omitempty"`
	Seniority            Seniority  `json:"seniority" badgerhold:"index"`
	Description          string     `json:"description,omitempty"`
	SanitizedDescription string     `json:"sanitized_description,omitempty"` // PII-redacted copy for external reads
	Skills               []string   `json:"skills,omitempty" badgerhold:"index"`
	Benefits             []string   `json:"benefits,omitempty"`
	PostedAt             time.Time  `json:"posted_at" badgerhold:"index"`
	ExpiresAt            *time.Time `json:"expires_at,omitempty"`
	ApplicationCount     int        `json:"application_count,omitempty"`
	ReferralAvailable    bool       `json:"referral_available,omitempty"`

	// LocationKey is a denormalized "COUNTRY|city" key supporting the
	// country+city list query shape.
	LocationKey string `json:"location_key,omitempty" badgerhold:"index"`

	// Bookkeeping
	Audit     JobAudit  `json:"audit"`
	CreatedAt time.Time `json:"created_at" badgerhold:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BuildLocationKey derives the indexed location key from a location.
// Empty when either component is unknown.
func BuildLocationKey(loc Location) string {
	if loc.Country == "" || loc.City == "" {
		return ""
	}
	return loc.Country + "|" + loc.City
}
