package scoring

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/twpayne/go-geom"
	"liyu1981.xyz/farm-sustainability-service/pkg/common"
	"liyu1981.xyz/farm-sustainability-service/pkg/models"
)

const (
	// KmPerDegree turns a flat Euclidean degree distance into kilometres.
	// Not geodesically correct away from the equator.
	KmPerDegree = 111.0

	NearbyRadiusKm          = 50.0
	HighConfidenceThreshold = 75
	DefaultSearchRadiusKm   = 20.0

	TieringProximity = "proximity_confidence"
	// Deprecated: count-only tiering ignores distance and confidence.
	TieringCount = "incident_count"
)

// FireSummary is what the tier table looks at.
type FireSummary struct {
	NearbyCount         int
	HighConfidenceCount int
	// ClosestDistanceKm is nil when no incident is nearby.
	ClosestDistanceKm *float64
}

func (s FireSummary) closerThan(km float64) bool {
	return s.ClosestDistanceKm != nil && *s.ClosestDistanceKm < km
}

type TierRule struct {
	Level   models.RiskLevel
	Matches func(FireSummary) bool
}

// FireTierTable is evaluated in order, first match wins; low applies when no
// rule matches.
var FireTierTable = []TierRule{
	{models.RiskCritical, func(s FireSummary) bool { return s.HighConfidenceCount > 2 || s.closerThan(5) }},
	{models.RiskHigh, func(s FireSummary) bool { return s.HighConfidenceCount > 0 || s.closerThan(15) }},
	{models.RiskModerate, func(s FireSummary) bool { return s.NearbyCount > 0 }},
}

var FireRecommendations = map[models.RiskLevel]string{
	models.RiskLow:      "Continue normal operations",
	models.RiskModerate: "Monitor situation closely",
	models.RiskHigh:     "Prepare for potential evacuation",
	models.RiskCritical: "Immediate evacuation may be required",
}

// DistanceKm is the flat-earth distance between two XY (lon, lat) points.
func DistanceKm(a, b *geom.Point) float64 {
	return math.Hypot(a.X()-b.X(), a.Y()-b.Y()) * KmPerDegree
}

// IncidentPoint returns the incident location, or false when latitude or
// longitude does not parse.
func IncidentPoint(incident models.FireIncident) (*geom.Point, bool) {
	lat, err := incident.Latitude.Float()
	if err != nil {
		return nil, false
	}
	lon, err := incident.Longitude.Float()
	if err != nil {
		return nil, false
	}
	return geom.NewPointFlat(geom.XY, []float64{lon, lat}).SetSRID(models.SRIDWGS84), true
}

// SummarizeIncidents counts the well-formed incidents within NearbyRadiusKm
// of origin. Malformed incidents are skipped.
func SummarizeIncidents(origin *geom.Point, incidents []models.FireIncident) FireSummary {
	var summary FireSummary
	for _, incident := range incidents {
		point, ok := IncidentPoint(incident)
		if !ok {
			continue
		}
		confidence, err := incident.Confidence.Int()
		if err != nil {
			continue
		}

		distance := DistanceKm(origin, point)
		if distance >= NearbyRadiusKm {
			continue
		}
		summary.NearbyCount++
		if summary.ClosestDistanceKm == nil || distance < *summary.ClosestDistanceKm {
			d := distance
			summary.ClosestDistanceKm = &d
		}
		if confidence > HighConfidenceThreshold {
			summary.HighConfidenceCount++
		}
	}
	return summary
}

func ClassifyFireRisk(summary FireSummary) models.RiskLevel {
	for _, rule := range FireTierTable {
		if rule.Matches(summary) {
			return rule.Level
		}
	}
	return models.RiskLow
}

// AnalyzeFireRisk classifies the incidents around origin. The caller assigns
// the record id and timestamp.
func AnalyzeFireRisk(farmID string, origin *geom.Point, incidents []models.FireIncident) *models.FireRiskAssessment {
	summary := SummarizeIncidents(origin, incidents)
	level := ClassifyFireRisk(summary)

	var closest *float64
	if summary.ClosestDistanceKm != nil {
		rounded := common.RoundTo(*summary.ClosestDistanceKm, 1)
		closest = &rounded
	}

	return &models.FireRiskAssessment{
		FarmID:              farmID,
		RiskLevel:           level,
		NearbyCount:         summary.NearbyCount,
		HighConfidenceCount: summary.HighConfidenceCount,
		ClosestDistanceKm:   closest,
		Recommendation:      FireRecommendations[level],
		TieringMethod:       TieringProximity,
	}
}

type countTier struct {
	Above int
	Level models.RiskLevel
}

var countTierTable = []countTier{
	{10, models.RiskCritical},
	{5, models.RiskHigh},
	{0, models.RiskModerate},
}

// Deprecated: ClassifyByCount tiers on the raw incident count only. Use
// ClassifyFireRisk.
func ClassifyByCount(count int) models.RiskLevel {
	for _, tier := range countTierTable {
		if count > tier.Above {
			return tier.Level
		}
	}
	return models.RiskLow
}

// Deprecated: AnalyzeFireRiskByCount reports every incident as nearby and no
// closest distance. Use AnalyzeFireRisk.
func AnalyzeFireRiskByCount(farmID string, incidents []models.FireIncident) *models.FireRiskAssessment {
	level := ClassifyByCount(len(incidents))
	return &models.FireRiskAssessment{
		FarmID:         farmID,
		RiskLevel:      level,
		NearbyCount:    len(incidents),
		Recommendation: FireRecommendations[level],
		TieringMethod:  TieringCount,
	}
}

var firmsRequiredColumns = []string{"latitude", "longitude", "confidence"}

// ParseFIRMSCSV reads a FIRMS active-fire CSV export. Rows shorter than the
// header are dropped; field values are kept raw for the analyzer to judge.
func ParseFIRMSCSV(r io.Reader) ([]models.FireIncident, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read firms header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range firmsRequiredColumns {
		if _, ok := columns[col]; !ok {
			return nil, fmt.Errorf("missing required firms column: %s", col)
		}
	}

	var incidents []models.FireIncident
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				continue
			}
			return nil, err
		}
		if len(record) < len(header) {
			continue
		}

		get := func(col string) string {
			if idx, ok := columns[col]; ok {
				return strings.TrimSpace(record[idx])
			}
			return ""
		}
		incidents = append(incidents, models.FireIncident{
			Latitude:   models.RawValue(get("latitude")),
			Longitude:  models.RawValue(get("longitude")),
			Confidence: models.RawValue(get("confidence")),
			AcquiredAt: parseAcquired(get("acq_date"), get("acq_time")),
		})
	}
	return incidents, nil
}

// parseAcquired joins FIRMS acq_date (2006-01-02) and acq_time (HHMM, leading
// zeros often dropped). Zero time when either is unusable.
func parseAcquired(date, hhmm string) time.Time {
	if date == "" {
		return time.Time{}
	}
	if hhmm == "" {
		hhmm = "0000"
	}
	if len(hhmm) < 4 {
		hhmm = strings.Repeat("0", 4-len(hhmm)) + hhmm
	}
	ts, err := time.Parse("2006-01-02 1504", date+" "+hhmm)
	if err != nil {
		return time.Time{}
	}
	return ts.UTC()
}
