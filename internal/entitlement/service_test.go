package entitlement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fitmantra/fitmantra-backend/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return NewService(st, DefaultRegistry()), st
}

func TestTierDefaultsToFreeAndPersists(t *testing.T) {
	svc, st := newService(t)

	assert.Equal(t, TierFree, svc.Tier("user-1"))

	// the default is written immediately, not just returned
	data, err := st.Get("tier:user-1")
	require.NoError(t, err)
	assert.JSONEq(t, `"free"`, string(data))
}

func TestSetTierRoundTrips(t *testing.T) {
	svc, _ := newService(t)

	require.NoError(t, svc.SetTier("user-1", TierPremium))
	assert.Equal(t, TierPremium, svc.Tier("user-1"))

	require.NoError(t, svc.SetTier("user-1", TierUnlimited))
	assert.Equal(t, TierUnlimited, svc.Tier("user-1"))
}

func TestSetTierRejectsUnknownValues(t *testing.T) {
	svc, _ := newService(t)
	assert.Error(t, svc.SetTier("user-1", Tier("platinum")))
}

func TestCorruptedTierResetsToFree(t *testing.T) {
	svc, st := newService(t)

	require.NoError(t, st.Set("tier:user-1", []byte(`"gold"`)))
	assert.Equal(t, TierFree, svc.Tier("user-1"))

	require.NoError(t, st.Set("tier:user-1", []byte(`{{{not json`)))
	assert.Equal(t, TierFree, svc.Tier("user-1"))

	// and the reset sticks
	data, err := st.Get("tier:user-1")
	require.NoError(t, err)
	assert.JSONEq(t, `"free"`, string(data))
}

// The access matrix must agree with the registry definition for every
// tier/feature combination.
func TestFeatureAccessMatrix(t *testing.T) {
	svc, _ := newService(t)
	registry := svc.Registry()

	for _, tier := range []Tier{TierFree, TierPremium, TierUnlimited} {
		require.NoError(t, svc.SetTier("user-1", tier))
		for _, key := range registry.Keys() {
			allowed, err := registry.Accessible(key, tier)
			require.NoError(t, err)
			assert.Equal(t, allowed, svc.IsFeatureAccessible("user-1", key),
				"tier=%s feature=%s", tier, key)
		}
	}
}

func TestFeatureAccessExamples(t *testing.T) {
	svc, _ := newService(t)

	// free tier cannot use form analysis
	assert.False(t, svc.IsFeatureAccessible("user-1", FeatureFormAnalysis))

	require.NoError(t, svc.SetTier("user-1", TierPremium))
	assert.True(t, svc.IsFeatureAccessible("user-1", FeatureFormAnalysis))
	assert.False(t, svc.IsFeatureAccessible("user-1", FeatureCoachChat))

	require.NoError(t, svc.SetTier("user-1", TierUnlimited))
	assert.True(t, svc.IsFeatureAccessible("user-1", FeatureCoachChat))
}

func TestUnknownFeatureKeyIsAnError(t *testing.T) {
	registry := DefaultRegistry()
	_, err := registry.Accessible("timeTravel", TierUnlimited)
	assert.Error(t, err)

	svc, _ := newService(t)
	assert.False(t, svc.IsFeatureAccessible("user-1", "timeTravel"))
}

// Every feature key referenced by handlers must be registered; an undefined
// key is a config bug, not a runtime state.
func TestRegistryCoversAllFeatureKeys(t *testing.T) {
	registry := DefaultRegistry()
	for _, key := range []string{
		FeatureWorkoutPlan,
		FeatureNutritionPlan,
		FeatureFormAnalysis,
		FeatureCoachChat,
		FeatureDashboardBodyMeasurements,
		FeatureDashboardProgressPhotos,
	} {
		_, ok := registry.AllowedTiers(key)
		assert.True(t, ok, "feature key %q is not registered", key)
	}

	// free tier always has at least the workout plan
	allowed, err := registry.Accessible(FeatureWorkoutPlan, TierFree)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"features":{"aiCoachChat":["premium","unlimited"]}}`), 0o644))

	registry, err := LoadFromFile(path)
	require.NoError(t, err)

	allowed, err := registry.Accessible(FeatureCoachChat, TierPremium)
	require.NoError(t, err)
	assert.True(t, allowed)

	// untouched keys keep their defaults
	allowed, err = registry.Accessible(FeatureFormAnalysis, TierFree)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestLoadFromFileRejectsUnknownTier(t *testing.T) {
	path := filepath.Join(t.TempDir(), "features.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"features":{"aiCoachChat":["platinum"]}}`), 0o644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
