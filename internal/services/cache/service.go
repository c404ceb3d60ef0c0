// Package cache keeps hot-list freshness markers warm for downstream list
// views. Markers are short-TTL signals keyed by source, location and skill;
// they are never canonical data and losing one is harmless.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/colligo/internal/interfaces"
	"github.com/ternarybob/colligo/internal/models"
)

// maxSkillKeys caps how many per-skill markers one job warms.
const maxSkillKeys = 5

// Service warms hot-list cache markers after a successful ingestion. The
// record marker carries the general TTL; the list markers carry the shorter
// hot-list TTL.
type Service struct {
	cache     interfaces.HotListCache
	markerTTL time.Duration
	listTTL   time.Duration
	logger    arbor.ILogger
}

// NewService creates a hot-list warmer over the injected cache.
func NewService(cache interfaces.HotListCache, ttlSeconds, hotListTTLSeconds int, logger arbor.ILogger) *Service {
	return &Service{
		cache:     cache,
		markerTTL: time.Duration(ttlSeconds) * time.Second,
		listTTL:   time.Duration(hotListTTLSeconds) * time.Second,
		logger:    logger,
	}
}

// WarmHotLists writes a freshness marker for the record itself plus list
// markers for the job's source, location and up to five of its skills.
// Best-effort: every failure is logged and swallowed, never propagated to
// the pipeline.
func (s *Service) WarmHotLists(ctx context.Context, job *models.CanonicalJob) {
	marker := job.ID

	s.set(ctx, JobKey(job.ID), job.CompositeKey, s.markerTTL)

	s.set(ctx, SourceKey(job.Source), marker, s.listTTL)

	if key := LocationKey(job.Location.Country, job.Location.City); key != "" {
		s.set(ctx, key, marker, s.listTTL)
	}

	skills := job.Skills
	if len(skills) > maxSkillKeys {
		skills = skills[:maxSkillKeys]
	}
	for _, skill := range skills {
		s.set(ctx, SkillKey(skill), marker, s.listTTL)
	}
}

func (s *Service) set(ctx context.Context, key, value string, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.Warn().
			Err(err).
			Str("key", key).
			Msg("Failed to warm hot-list marker")
	}
}

// JobKey is the freshness marker key for one canonical record.
func JobKey(jobID string) string {
	return "hotlist:job:" + jobID
}

// SourceKey is the marker key for a source's hot list.
func SourceKey(source string) string {
	return "hotlist:source:" + source
}

// LocationKey is the marker key for a (country, city) hot list. Empty when
// either component is unknown.
func LocationKey(country, city string) string {
	if country == "" || city == "" {
		return ""
	}
	return fmt.Sprintf("hotlist:location:%s:%s", strings.ToLower(country), strings.ToLower(city))
}

// SkillKey is the marker key for a skill's hot list.
func SkillKey(skill string) string {
	return "hotlist:skill:" + strings.ToLower(skill)
}
