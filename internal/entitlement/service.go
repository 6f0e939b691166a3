package entitlement

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/fitmantra/fitmantra-backend/internal/store"
)

// Service answers feature-access questions for a user and owns the active
// subscription tier. The tier lives in the key-value store so the engine
// works against any backend.
type Service struct {
	store    store.Store
	registry *Registry
}

func NewService(st store.Store, registry *Registry) *Service {
	return &Service{store: st, registry: registry}
}

func tierKey(userID string) string {
	return "tier:" + userID
}

// Tier returns the user's active tier. A missing or corrupted stored value
// is treated as absent: the tier resets to free and the default is persisted
// immediately, so a tier is always defined after the first read.
func (s *Service) Tier(userID string) Tier {
	data, err := s.store.Get(tierKey(userID))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Error("failed to read subscription tier", "user_id", userID, "error", err)
		}
		s.reset(userID)
		return TierFree
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		slog.Warn("discarding corrupted subscription tier", "user_id", userID, "error", err)
		s.reset(userID)
		return TierFree
	}

	tier, ok := ParseTier(raw)
	if !ok {
		slog.Warn("discarding unknown subscription tier", "user_id", userID, "tier", raw)
		s.reset(userID)
		return TierFree
	}

	return tier
}

// SetTier replaces the user's active tier and persists it. Only the three
// known tier values are accepted.
func (s *Service) SetTier(userID string, tier Tier) error {
	if _, ok := ParseTier(string(tier)); !ok {
		return errors.New("invalid subscription tier: " + string(tier))
	}

	data, err := json.Marshal(string(tier))
	if err != nil {
		return err
	}
	return s.store.Set(tierKey(userID), data)
}

// IsFeatureAccessible reports whether the user's active tier may use the
// named feature. Unknown feature keys are config errors: they are logged
// and denied; the registry completeness test catches them before release.
func (s *Service) IsFeatureAccessible(userID, featureKey string) bool {
	allowed, err := s.registry.Accessible(featureKey, s.Tier(userID))
	if err != nil {
		slog.Error("feature access check failed", "feature", featureKey, "error", err)
		return false
	}
	return allowed
}

// Registry exposes the feature registry for read-only consumers.
func (s *Service) Registry() *Registry {
	return s.registry
}

func (s *Service) reset(userID string) {
	data, _ := json.Marshal(string(TierFree))
	if err := s.store.Set(tierKey(userID), data); err != nil {
		slog.Error("failed to persist default tier", "user_id", userID, "error", err)
	}
}
