package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"
	"time"

	"github.com/anyulbade/travel-budget-estimator/internal/benefits"
	"github.com/anyulbade/travel-budget-estimator/internal/dto"
	"github.com/anyulbade/travel-budget-estimator/internal/model"
)

const maxUserAgentLen = 500

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LeadStore persists lead submissions. The store is append-only; Insert is
// its only operation.
type LeadStore interface {
	Insert(ctx context.Context, lead *model.Lead) error
}

// LeadService validates form submissions and appends them to the lead log.
// Client IPs are stored only as truncated SHA-256 hashes.
type LeadService struct {
	store LeadStore
	now   func() time.Time
}

func NewLeadService(store LeadStore) *LeadService {
	return &LeadService{store: store, now: time.Now}
}

// Submit validates every field server-side before anything touches the
// store, so an invalid submission can never be persisted.
func (s *LeadService) Submit(ctx context.Context, req *dto.LeadRequest, clientIP, userAgent string) (*model.Lead, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	lead := &model.Lead{
		Continent:        strings.TrimSpace(req.Continent),
		Country:          strings.TrimSpace(req.Country),
		DurationWeeks:    req.DurationWeeks,
		Month:            req.Month,
		Year:             req.Year,
		TotalAmount:      *req.TotalAmount,
		TotalSavings:     *req.TotalSavings,
		FullName:         strings.TrimSpace(req.FullName),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		PreferredBenefit: req.PreferredBenefit,
		SessionID:        req.SessionID,
		IPHash:           hashIP(clientIP),
		UserAgent:        truncate(userAgent, maxUserAgentLen),
	}

	if err := s.store.Insert(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *LeadService) validate(req *dto.LeadRequest) error {
	if strings.TrimSpace(req.Continent) == "" {
		return invalid("continent", "continent is required")
	}
	if strings.TrimSpace(req.Country) == "" {
		return invalid("country", "country is required")
	}
	if req.DurationWeeks < 1 {
		return invalid("durationWeeks", "duration must be at least one week")
	}
	if req.Month < 1 || req.Month > 12 {
		return invalid("month", "month must be between 1 and 12")
	}
	if req.Year < s.now().Year() {
		return invalid("year", "year cannot be in the past")
	}
	if req.TotalAmount == nil || *req.TotalAmount < 0 {
		return invalid("totalAmount", "total amount is required and cannot be negative")
	}
	if req.TotalSavings == nil || *req.TotalSavings < 0 {
		return invalid("totalSavings", "total savings is required and cannot be negative")
	}
	if strings.TrimSpace(req.FullName) == "" {
		return invalid("fullName", "full name is required")
	}
	if !emailPattern.MatchString(strings.TrimSpace(req.Email)) {
		return invalid("email", "a valid email is required")
	}
	if !benefits.Type(req.PreferredBenefit).Valid() {
		return invalid("preferredBenefit", "preferred benefit must be A, B, C or D")
	}
	return nil
}

func hashIP(ip string) string {
	if ip == "" {
		ip = "unknown"
	}
	sum := sha256.Sum256([]byte(ip))
	return hex.EncodeToString(sum[:])[:16]
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
