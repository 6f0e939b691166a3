package entitlement

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Feature keys gated by the registry. Every key used by a handler must have
// a registry entry; a lookup for an undefined key is a programming error.
const (
	FeatureWorkoutPlan               = "workoutPlan"
	FeatureNutritionPlan             = "nutritionPlan"
	FeatureFormAnalysis              = "formAnalysis"
	FeatureCoachChat                 = "aiCoachChat"
	FeatureDashboardBodyMeasurements = "dashboardBodyMeasurements"
	FeatureDashboardProgressPhotos   = "dashboardProgressPhotos"
)

// Registry maps feature keys to the set of tiers allowed to use them.
// It is populated once at process start and immutable afterwards.
type Registry struct {
	mu       sync.RWMutex
	features map[string][]Tier
}

type featuresFile struct {
	Features map[string][]string `json:"features"`
}

func defaultFeatures() map[string][]Tier {
	return map[string][]Tier{
		FeatureWorkoutPlan:               {TierFree, TierPremium, TierUnlimited},
		FeatureNutritionPlan:             {TierPremium, TierUnlimited},
		FeatureFormAnalysis:              {TierPremium, TierUnlimited},
		FeatureCoachChat:                 {TierUnlimited},
		FeatureDashboardBodyMeasurements: {TierPremium, TierUnlimited},
		FeatureDashboardProgressPhotos:   {TierUnlimited},
	}
}

// DefaultRegistry builds the registry from the built-in feature map.
func DefaultRegistry() *Registry {
	return &Registry{features: defaultFeatures()}
}

// LoadFromFile reads a feature-access override file. Entries replace the
// built-in mapping per key; keys absent from the file keep their defaults.
func LoadFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read features config: %w", err)
	}

	var file featuresFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse features config: %w", err)
	}

	features := defaultFeatures()
	for key, raw := range file.Features {
		tiers := make([]Tier, 0, len(raw))
		for _, t := range raw {
			tier, ok := ParseTier(t)
			if !ok {
				return nil, fmt.Errorf("unknown tier %q for feature %q", t, key)
			}
			tiers = append(tiers, tier)
		}
		features[key] = tiers
	}

	return &Registry{features: features}, nil
}

// AllowedTiers returns the tier set for a feature key.
func (r *Registry) AllowedTiers(key string) ([]Tier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tiers, ok := r.features[key]
	return tiers, ok
}

// Accessible reports whether the given tier may use the feature. An unknown
// key returns an error so misconfigured callers fail loudly in tests.
func (r *Registry) Accessible(key string, tier Tier) (bool, error) {
	tiers, ok := r.AllowedTiers(key)
	if !ok {
		return false, fmt.Errorf("unknown feature key %q", key)
	}
	for _, t := range tiers {
		if t == tier {
			return true, nil
		}
	}
	return false, nil
}

// Keys lists every registered feature key.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.features))
	for k := range r.features {
		keys = append(keys, k)
	}
	return keys
}
