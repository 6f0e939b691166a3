package entitlement

// Tier is a named subscription level controlling feature access.
type Tier string

const (
	TierFree      Tier = "free"
	TierPremium   Tier = "premium"
	TierUnlimited Tier = "unlimited"
)

// ParseTier validates a raw tier value. Anything outside the three known
// tiers is rejected; callers reading persisted state treat that as absent.
func ParseTier(s string) (Tier, bool) {
	switch Tier(s) {
	case TierFree, TierPremium, TierUnlimited:
		return Tier(s), true
	}
	return "", false
}
