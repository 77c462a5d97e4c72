package cache

import "time"

// Duration is a named cache lifetime class. Call sites pick a class instead of
// a raw TTL so cache lifetime policy stays centralized and auditable.
type Duration string

const (
	Short    Duration = "short"
	Medium   Duration = "medium"
	Long     Duration = "long"
	VeryLong Duration = "very_long"
)

// TTLTable maps duration classes to concrete TTLs.
type TTLTable map[Duration]time.Duration

// DefaultTTLTable returns the standard class-to-TTL mapping. Deployments may
// override individual entries through configuration.
func DefaultTTLTable() TTLTable {
	return TTLTable{
		Short:    5 * time.Minute,
		Medium:   15 * time.Minute,
		Long:     1 * time.Hour,
		VeryLong: 24 * time.Hour,
	}
}

// Resolve returns the TTL for a duration class, falling back to Short for
// unknown classes so a typo never produces an unbounded entry.
func (t TTLTable) Resolve(d Duration) time.Duration {
	if ttl, ok := t[d]; ok {
		return ttl
	}
	return t[Short]
}
