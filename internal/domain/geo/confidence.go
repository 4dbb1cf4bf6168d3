package geo

import "proximity/internal/domain/entity"

// defaultReferenceRadius is used when no zone is known for a fix.
const defaultReferenceRadius = 50.0

// ConfidenceScore rates how trustworthy a fix is relative to the zone size.
// It is radius / (radius + accuracy), clamped to [0, 1].
func ConfidenceScore(p entity.Position, zone *entity.ProximityZone) float64 {
	radius := defaultReferenceRadius
	if zone != nil && zone.RadiusMeters > 0 {
		radius = zone.RadiusMeters
	}

	accuracy := p.AccuracyMeters
	if accuracy < 0 {
		accuracy = 0
	}

	score := radius / (radius + accuracy)
	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}

	return score
}
