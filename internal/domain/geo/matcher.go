package geo

import (
	"sort"
	"time"

	"proximity/internal/domain/entity"
)

// Match is the zone selected for a position.
type Match struct {
	Zone           *entity.ProximityZone
	DistanceMeters float64
}

// IsEligible reports whether a zone can trigger a session at t.
func IsEligible(zone *entity.ProximityZone, t time.Time) bool {
	return zone != nil && zone.IsActive && zone.DeletedAt == nil && zone.ActivationEnabled && IsZoneActiveAt(zone, t)
}

// MatchZone returns the nearest eligible zone whose radius contains p.
// Ties on distance are broken by zone id so the result is deterministic.
func MatchZone(p entity.Position, zones []*entity.ProximityZone, t time.Time) (Match, bool) {
	var best Match
	found := false

	for _, zone := range zones {
		if !IsEligible(zone, t) {
			continue
		}
		d := DistanceToZone(p, zone)
		if d > zone.RadiusMeters {
			continue
		}
		if !found || d < best.DistanceMeters ||
			(d == best.DistanceMeters && zone.ID.String() < best.Zone.ID.String()) {
			best = Match{Zone: zone, DistanceMeters: d}
			found = true
		}
	}

	return best, found
}

// NearbyZones lists active zones within searchMeters of p, nearest first, capped at limit.
func NearbyZones(p entity.Position, zones []*entity.ProximityZone, searchMeters float64, limit int) []entity.NearbyZone {
	nearby := make([]entity.NearbyZone, 0, len(zones))
	for _, zone := range zones {
		if zone == nil || !zone.IsActive || zone.DeletedAt != nil {
			continue
		}
		d := DistanceToZone(p, zone)
		if d > searchMeters {
			continue
		}
		nearby = append(nearby, entity.NearbyZone{
			ZoneID:         zone.ID,
			Name:           zone.Name,
			DistanceMeters: RoundMeters(d),
			RadiusMeters:   zone.RadiusMeters,
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	if limit > 0 && len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby
}

// HasExited reports whether p lies outside the zone radius.
func HasExited(p entity.Position, zone *entity.ProximityZone) bool {
	return DistanceToZone(p, zone) > zone.RadiusMeters
}
