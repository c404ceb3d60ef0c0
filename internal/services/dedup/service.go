// Package dedup derives the content hash and the durable composite identity
// of a job record. Both functions are pure and deterministic; they must be
// called with the normalized record, never the raw DTO, so cosmetic
// differences between sources do not fracture identity.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/ternarybob/colligo/internal/models"
)

// descriptionHashLength caps how much description text feeds the hash,
// counted in characters so a multi-byte rune is never split.
const descriptionHashLength = 300

// Service derives hashes and composite keys.
type Service struct{}

// NewService creates a new dedup service.
func NewService() *Service {
	return &Service{}
}

// BuildHash fingerprints the record's content: a sha256 digest over the
// case-folded concatenation of title, company name, city, country and the
// first 300 characters of the description.
func (s *Service) BuildHash(dto *models.JobDTO) string {
	desc := dto.Description
	if len(desc) > descriptionHashLength {
		if runes := []rune(desc); len(runes) > descriptionHashLength {
			desc = string(runes[:descriptionHashLength])
		}
	}

	parts := []string{
		dto.Title,
		dto.Company.Name,
		dto.Location.City,
		dto.Location.Country,
		desc,
	}
	payload := strings.ToLower(strings.Join(parts, "|"))

	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// CompositeKey derives the durable identity for a logical posting, in
// priority order: source:externalId, then source:normalizedUrl, then
// source:hash as a last resort.
//
// The hash path is content-sensitive: a trivial edit to a hash-keyed
// posting mints a new identity rather than updating the old one. ExternalId
// and URL keys are the stable paths.
func (s *Service) CompositeKey(dto *models.JobDTO, hash string) string {
	if dto.ExternalID != "" {
		return dto.Source + ":" + dto.ExternalID
	}
	if dto.CanonicalURL != "" {
		if normalized := NormalizeURL(dto.CanonicalURL); normalized != "" {
			return dto.Source + ":" + normalized
		}
	}
	return dto.Source + ":" + hash
}

// NormalizeURL strips the query string and fragment and lower-cases the
// scheme and host, so tracking parameters do not create false identities.
// Returns "" for unparseable input.
func NormalizeURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return ""
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.RawQuery = ""
	u.Fragment = ""
	u.RawFragment = ""

	return strings.TrimSuffix(u.String(), "/")
}
