package stats

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"mentalpitch/internal/store"
)

// TrendDirection describes the coarse direction of the mood trend
type TrendDirection string

const (
	TrendImproving TrendDirection = "improving"
	TrendDeclining TrendDirection = "declining"
	TrendStable    TrendDirection = "stable"
)

// trendThreshold is the minimum half-to-half mood difference that counts
// as a real trend rather than noise.
const trendThreshold = 0.3

// MoodTrendPoint is the average mood for one calendar date
type MoodTrendPoint struct {
	Date        time.Time
	AverageMood *float64
	EntryCount  int // all entries on that date, scored or not
}

// WorkoutTypeStats is the per-workout-type breakdown for a window
type WorkoutTypeStats struct {
	WorkoutTypeID   string
	WorkoutTypeName string
	EntryCount      int
	AverageMood     *float64
	Percentage      float64 // share of typed window entries, 0-100
}

// TimeOfDay is one of the four fixed time-of-day buckets
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"   // [05:00, 12:00)
	Afternoon TimeOfDay = "afternoon" // [12:00, 17:00)
	Evening   TimeOfDay = "evening"   // [17:00, 21:00)
	Night     TimeOfDay = "night"     // everything else
)

// timeBuckets is the fixed output order for time patterns
var timeBuckets = []TimeOfDay{Morning, Afternoon, Evening, Night}

// TimePatternStats is the aggregate for one time-of-day bucket
type TimePatternStats struct {
	TimeOfDay   TimeOfDay
	AverageMood *float64
	EntryCount  int
}

// validMood reports whether a mood score is usable. Scores are constrained
// to 1-10 upstream; anything else is discarded rather than averaged.
func validMood(score *int) bool {
	return score != nil && *score >= 1 && *score <= 10
}

// MoodTrends groups window entries by calendar date and averages the mood
// scores of each date. Only dates with at least one scored entry produce a
// point, but EntryCount covers every entry on that date.
func MoodTrends(entries []store.Entry) []MoodTrendPoint {
	type dayAgg struct {
		count  int
		sum    float64
		scored int
	}

	byDate := make(map[string]*dayAgg)
	for _, e := range entries {
		key := e.EntryDate.Format(store.DateFormat)
		agg := byDate[key]
		if agg == nil {
			agg = &dayAgg{}
			byDate[key] = agg
		}
		agg.count++
		if validMood(e.MoodScore) {
			agg.sum += float64(*e.MoodScore)
			agg.scored++
		}
	}

	points := make([]MoodTrendPoint, 0, len(byDate))
	for key, agg := range byDate {
		if agg.scored == 0 {
			continue
		}
		date, err := time.Parse(store.DateFormat, key)
		if err != nil {
			continue
		}
		avg := agg.sum / float64(agg.scored)
		points = append(points, MoodTrendPoint{
			Date:        date,
			AverageMood: &avg,
			EntryCount:  agg.count,
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// Trend compares the mean mood of the first and second halves of the trend
// points. Fewer than 2 scored points is stable, as is any difference below
// the threshold. Deliberately a coarse two-bucket heuristic, not a regression.
func Trend(points []MoodTrendPoint) TrendDirection {
	var values []float64
	for _, p := range points {
		if p.AverageMood != nil {
			values = append(values, *p.AverageMood)
		}
	}
	if len(values) < 2 {
		return TrendStable
	}

	mid := len(values) / 2
	firstMean := mean(values[:mid])
	secondMean := mean(values[mid:])

	diff := secondMean - firstMean
	switch {
	case diff >= trendThreshold:
		return TrendImproving
	case diff <= -trendThreshold:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// TypeDistribution groups window entries by workout type. Entries without a
// type are excluded. Groups keep encounter order on equal counts.
func TypeDistribution(entries []store.Entry, typeNames map[string]string) []WorkoutTypeStats {
	type typeAgg struct {
		count  int
		sum    float64
		scored int
	}

	byType := make(map[string]*typeAgg)
	var order []string
	typedTotal := 0

	for _, e := range entries {
		if e.WorkoutTypeID == nil {
			continue
		}
		id := *e.WorkoutTypeID
		agg := byType[id]
		if agg == nil {
			agg = &typeAgg{}
			byType[id] = agg
			order = append(order, id)
		}
		agg.count++
		typedTotal++
		if validMood(e.MoodScore) {
			agg.sum += float64(*e.MoodScore)
			agg.scored++
		}
	}

	dist := make([]WorkoutTypeStats, 0, len(order))
	for _, id := range order {
		agg := byType[id]
		st := WorkoutTypeStats{
			WorkoutTypeID:   id,
			WorkoutTypeName: typeNames[id],
			EntryCount:      agg.count,
		}
		if agg.scored > 0 {
			avg := agg.sum / float64(agg.scored)
			st.AverageMood = &avg
		}
		if typedTotal > 0 {
			st.Percentage = float64(agg.count) / float64(typedTotal) * 100
		}
		dist = append(dist, st)
	}

	sort.SliceStable(dist, func(i, j int) bool { return dist[i].EntryCount > dist[j].EntryCount })
	return dist
}

// TimePatterns buckets window entries into the four time-of-day categories.
// All four buckets are always present, in fixed order, even when empty.
func TimePatterns(entries []store.Entry) []TimePatternStats {
	type bucketAgg struct {
		count  int
		sum    float64
		scored int
	}

	aggs := make(map[TimeOfDay]*bucketAgg, len(timeBuckets))
	for _, b := range timeBuckets {
		aggs[b] = &bucketAgg{}
	}

	for _, e := range entries {
		agg := aggs[classifyTime(e.EntryTime)]
		agg.count++
		if validMood(e.MoodScore) {
			agg.sum += float64(*e.MoodScore)
			agg.scored++
		}
	}

	patterns := make([]TimePatternStats, 0, len(timeBuckets))
	for _, b := range timeBuckets {
		agg := aggs[b]
		st := TimePatternStats{TimeOfDay: b, EntryCount: agg.count}
		if agg.scored > 0 {
			avg := agg.sum / float64(agg.scored)
			st.AverageMood = &avg
		}
		patterns = append(patterns, st)
	}
	return patterns
}

// classifyTime maps an entry time to its bucket. Entries without a usable
// time default to afternoon.
func classifyTime(entryTime *string) TimeOfDay {
	if entryTime == nil {
		return Afternoon
	}
	hourStr, _, ok := strings.Cut(*entryTime, ":")
	if !ok {
		return Afternoon
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return Afternoon
	}
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

// AverageMood is the mean of all valid mood scores across entries,
// nil when none are scored.
func AverageMood(entries []store.Entry) *float64 {
	var sum float64
	scored := 0
	for _, e := range entries {
		if validMood(e.MoodScore) {
			sum += float64(*e.MoodScore)
			scored++
		}
	}
	if scored == 0 {
		return nil
	}
	avg := sum / float64(scored)
	return &avg
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
