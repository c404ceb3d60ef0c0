package badger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/colligo/internal/common"
	"github.com/ternarybob/colligo/internal/interfaces"
	"github.com/ternarybob/colligo/internal/models"
	"github.com/timshannon/badgerhold/v4"
)

// upsertRetries bounds how often a losing concurrent insert is retried as an
// update before giving up.
const upsertRetries = 3

// JobStorage implements the JobStorage interface for Badger
type JobStorage struct {
	db     *BadgerDB
	logger arbor.ILogger
}

// NewJobStorage creates a new JobStorage instance
func NewJobStorage(db *BadgerDB, logger arbor.ILogger) interfaces.JobStorage {
	return &JobStorage{
		db:     db,
		logger: logger,
	}
}

// UpsertByCompositeKey inserts the document when its composite key has never
// been seen, otherwise merges it into the existing canonical record with
// fill-or-improve semantics. The unique index on CompositeKey is the
// authoritative guard against double insert: a losing concurrent insert is
// retried as a merge instead of surfacing the constraint violation.
func (s *JobStorage) UpsertByCompositeKey(ctx context.Context, doc *models.CanonicalJob) (*interfaces.UpsertOutcome, error) {
	if doc.CompositeKey == "" {
		return nil, fmt.Errorf("composite key is required")
	}

	var lastErr error
	for attempt := 0; attempt < upsertRetries; attempt++ {
		existing, err := s.findByCompositeKey(doc.CompositeKey)
		if err != nil && !errors.Is(err, interfaces.ErrJobNotFound) {
			return nil, err
		}

		if existing == nil {
			outcome, err := s.insert(doc)
			if err == nil {
				return outcome, nil
			}
			if errors.Is(err, badgerhold.ErrKeyExists) || errors.Is(err, badgerhold.ErrUniqueExists) {
				// Lost the insert race; loop and merge into the winner's record.
				lastErr = err
				continue
			}
			return nil, fmt.Errorf("failed to insert job: %w", err)
		}

		return s.merge(existing, doc)
	}

	return nil, fmt.Errorf("upsert retries exhausted for key %s: %w", doc.CompositeKey, lastErr)
}

// BulkUpsert applies the merge-upsert over a batch, isolating item failures.
func (s *JobStorage) BulkUpsert(ctx context.Context, docs []*models.CanonicalJob) (*interfaces.BulkOutcome, error) {
	outcome := &interfaces.BulkOutcome{}

	for _, doc := range docs {
		res, err := s.UpsertByCompositeKey(ctx, doc)
		if err != nil {
			outcome.Failed++
			s.logger.Warn().
				Err(err).
				Str("composite_key", doc.CompositeKey).
				Msg("Bulk upsert item failed")
			continue
		}
		if res.Created {
			outcome.Upserted++
		} else {
			outcome.Matched++
			if len(res.UpdatedFields) > 0 {
				outcome.Modified++
			}
		}
	}

	return outcome, nil
}

func (s *JobStorage) GetByID(ctx context.Context, id string) (*models.CanonicalJob, error) {
	var job models.CanonicalJob
	if err := s.db.Store().Get(id, &job); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, interfaces.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

func (s *JobStorage) GetByCompositeKey(ctx context.Context, key string) (*models.CanonicalJob, error) {
	return s.findByCompositeKey(key)
}

func (s *JobStorage) ListBySource(ctx context.Context, opts *interfaces.ListOptions) ([]*models.CanonicalJob, error) {
	query := badgerhold.Where("ID").Ne("") // Select all

	if opts != nil {
		if opts.Source != "" {
			query = query.And("Source").Eq(opts.Source)
		}
		if opts.Limit > 0 {
			query = query.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			query = query.Skip(opts.Offset)
		}
	}

	var jobs []models.CanonicalJob
	if err := s.db.Store().Find(&jobs, query); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	result := make([]*models.CanonicalJob, len(jobs))
	for i := range jobs {
		result[i] = &jobs[i]
	}
	return result, nil
}

func (s *JobStorage) CountJobs(ctx context.Context) (int, error) {
	count, err := s.db.Store().Count(&models.CanonicalJob{}, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return int(count), nil
}

func (s *JobStorage) findByCompositeKey(key string) (*models.CanonicalJob, error) {
	var jobs []models.CanonicalJob
	err := s.db.Store().Find(&jobs, badgerhold.Where("CompositeKey").Eq(key).Index("CompositeKey"))
	if err != nil {
		return nil, fmt.Errorf("failed to find job by composite key: %w", err)
	}
	if len(jobs) == 0 {
		return nil, interfaces.ErrJobNotFound
	}
	return &jobs[0], nil
}

// insert persists a brand new canonical record. FirstSeenAt is stamped here
// and never touched again.
func (s *JobStorage) insert(doc *models.CanonicalJob) (*interfaces.UpsertOutcome, error) {
	now := time.Now()

	if doc.ID == "" {
		doc.ID = common.NewJobID()
	}
	doc.CreatedAt = now
	doc.UpdatedAt = now
	doc.Audit = models.JobAudit{
		FirstSeenAt: now,
		LastSeenAt:  now,
		LastSource:  doc.Source,
	}
	doc.LocationKey = models.BuildLocationKey(doc.Location)

	if err := s.db.Store().Insert(doc.ID, doc); err != nil {
		return nil, err
	}

	return &interfaces.UpsertOutcome{
		Job:           doc,
		Created:       true,
		UpdatedFields: suppliedFields(doc),
	}, nil
}

// merge applies the fill-or-improve policy: a scalar field is overwritten
// only when the stored value is absent or the incoming string is strictly
// longer; sets are unioned; dates only move forward. LastSeenAt always
// advances but is never reported as an updated field.
func (s *JobStorage) merge(existing, incoming *models.CanonicalJob) (*interfaces.UpsertOutcome, error) {
	updated := []string{}

	if improveString(&existing.Title, incoming.Title) {
		updated = append(updated, "title")
	}
	if mergeCompany(&existing.Company, incoming.Company) {
		updated = append(updated, "company")
	}
	if mergeLocation(&existing.Location, incoming.Location) {
		updated = append(updated, "location")
	}
	if mergeSalary(&existing.Salary, incoming.Salary) {
		updated = append(updated, "salary")
	}
	if improveSeniority(&existing.Seniority, incoming.Seniority) {
		updated = append(updated, "seniority")
	}
	if improveString(&existing.Description, incoming.Description) {
		updated = append(updated, "description")
	}
	if improveString(&existing.SanitizedDescription, incoming.SanitizedDescription) {
		updated = append(updated, "sanitizedDescription")
	}
	if added := unionStrings(&existing.Skills, incoming.Skills); added {
		updated = append(updated, "skills")
	}
	if added := unionStrings(&existing.Benefits, incoming.Benefits); added {
		updated = append(updated, "benefits")
	}
	if forwardDate(&existing.ExpiresAt, incoming.ExpiresAt) {
		updated = append(updated, "expiresAt")
	}
	if incoming.ApplicationCount > existing.ApplicationCount {
		existing.ApplicationCount = incoming.ApplicationCount
		updated = append(updated, "applicationCount")
	}
	if incoming.ReferralAvailable && !existing.ReferralAvailable {
		existing.ReferralAvailable = true
		updated = append(updated, "referralAvailable")
	}

	// Identity fields fill in but never change once set.
	if existing.ExternalID == "" && incoming.ExternalID != "" {
		existing.ExternalID = incoming.ExternalID
	}
	if existing.CanonicalURL == "" && incoming.CanonicalURL != "" {
		existing.CanonicalURL = incoming.CanonicalURL
	}

	// The hash tracks the latest observed content; not a visible field.
	if incoming.Hash != "" {
		existing.Hash = incoming.Hash
	}
	existing.LocationKey = models.BuildLocationKey(existing.Location)

	// Bookkeeping always advances, even on a no-op ingestion.
	existing.Audit.LastSeenAt = time.Now()
	existing.Audit.LastSource = incoming.Source
	existing.UpdatedAt = existing.Audit.LastSeenAt

	if err := s.db.Store().Update(existing.ID, existing); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return &interfaces.UpsertOutcome{
		Job:           existing,
		Created:       false,
		UpdatedFields: updated,
	}, nil
}

// improveString overwrites dst when it is empty or src is strictly longer.
func improveString(dst *string, src string) bool {
	if src == "" {
		return false
	}
	if *dst == "" || len(src) > len(*dst) {
		if *dst == src {
			return false
		}
		*dst = src
		return true
	}
	return false
}

func improveSeniority(dst *models.Seniority, src models.Seniority) bool {
	if src == "" || src == models.SeniorityUnknown {
		return false
	}
	if *dst == "" || *dst == models.SeniorityUnknown {
		*dst = src
		return true
	}
	return false
}

func mergeCompany(dst *models.Company, src models.Company) bool {
	changed := improveString(&dst.Name, src.Name)
	if improveString(&dst.Domain, src.Domain) {
		changed = true
	}
	return changed
}

func mergeLocation(dst *models.Location, src models.Location) bool {
	changed := improveString(&dst.City, src.City)
	if improveString(&dst.State, src.State) {
		changed = true
	}
	if dst.Country == "" && src.Country != "" {
		dst.Country = src.Country
		changed = true
	}
	if dst.RemoteType == "" && src.RemoteType != "" {
		dst.RemoteType = src.RemoteType
		changed = true
	}
	return changed
}

// mergeSalary takes the incoming salary wholesale when none is stored, and
// fills absent subfields otherwise. Known ranges are never narrowed.
func mergeSalary(dst **models.Salary, src *models.Salary) bool {
	if src == nil {
		return false
	}
	if *dst == nil {
		cp := *src
		*dst = &cp
		return true
	}

	existing := *dst
	changed := false
	if existing.Min == 0 && src.Min != 0 {
		existing.Min = src.Min
		existing.NormalizedAnnualMin = src.NormalizedAnnualMin
		changed = true
	}
	if existing.Max == 0 && src.Max != 0 {
		existing.Max = src.Max
		existing.NormalizedAnnualMax = src.NormalizedAnnualMax
		changed = true
	}
	if existing.Currency == "" && src.Currency != "" {
		existing.Currency = src.Currency
		existing.NormalizedCurrency = src.NormalizedCurrency
		changed = true
	}
	if existing.Period == "" && src.Period != "" {
		existing.Period = src.Period
		changed = true
	}
	return changed
}

// unionStrings adds unseen items from src into dst, preserving order of
// first appearance.
func unionStrings(dst *[]string, src []string) bool {
	if len(src) == 0 {
		return false
	}
	seen := make(map[string]bool, len(*dst))
	for _, v := range *dst {
		seen[v] = true
	}
	added := false
	for _, v := range src {
		if !seen[v] {
			*dst = append(*dst, v)
			seen[v] = true
			added = true
		}
	}
	return added
}

// forwardDate overwrites dst only when src is later; expiry never shrinks.
func forwardDate(dst **time.Time, src *time.Time) bool {
	if src == nil {
		return false
	}
	if *dst == nil || src.After(**dst) {
		cp := *src
		*dst = &cp
		return true
	}
	return false
}

// suppliedFields reports which visible fields a freshly inserted document
// actually carried, matching the merge path's field names.
func suppliedFields(doc *models.CanonicalJob) []string {
	fields := []string{}
	if doc.Title != "" {
		fields = append(fields, "title")
	}
	if doc.Company.Name != "" || doc.Company.Domain != "" {
		fields = append(fields, "company")
	}
	if doc.Location.City != "" || doc.Location.State != "" || doc.Location.Country != "" || doc.Location.RemoteType != "" {
		fields = append(fields, "location")
	}
	if doc.Salary != nil {
		fields = append(fields, "salary")
	}
	if doc.Seniority != "" && doc.Seniority != models.SeniorityUnknown {
		fields = append(fields, "seniority")
	}
	if doc.Description != "" {
		fields = append(fields, "description")
	}
	if doc.SanitizedDescription != "" {
		fields = append(fields, "sanitizedDescription")
	}
	if len(doc.Skills) > 0 {
		fields = append(fields, "skills")
	}
	if len(doc.Benefits) > 0 {
		fields = append(fields, "benefits")
	}
	if doc.ExpiresAt != nil {
		fields = append(fields, "expiresAt")
	}
	if doc.ApplicationCount > 0 {
		fields = append(fields, "applicationCount")
	}
	if doc.ReferralAvailable {
		fields = append(fields, "referralAvailable")
	}
	return fields
}

// Ensure JobStorage implements the interface
var _ interfaces.JobStorage = (*JobStorage)(nil)
