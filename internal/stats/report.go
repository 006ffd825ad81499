package stats

import (
	"time"

	"mentalpitch/internal/store"
)

// Summary holds the headline numbers for a reporting period
type Summary struct {
	Period                Period
	StartDate             time.Time
	EndDate               time.Time
	TotalEntries          int
	AverageMood           *float64
	MoodTrend             TrendDirection
	MostActiveWorkoutType *string
	Streaks               StreakData
}

// Report is the complete statistics report for a reporting period
type Report struct {
	Summary          Summary
	MoodTrends       []MoodTrendPoint
	TypeDistribution []WorkoutTypeStats
	TimePatterns     []TimePatternStats
	Insights         []string
}

// Profile summarizes the user's all-time journaling activity
type Profile struct {
	TotalEntries          int
	CurrentStreak         int
	LongestStreak         int
	AverageMood           *float64
	MostActiveWorkoutType *string
}

// BuildReport assembles the full stats report for a period. windowEntries
// must be restricted to the period's date range; allEntries is the complete
// history, which streaks need. The function is pure: identical inputs and
// the same today always produce the same report.
func BuildReport(period Period, today time.Time, windowEntries, allEntries []store.Entry, typeNames map[string]string) Report {
	start, end := period.Range(today)

	trends := MoodTrends(windowEntries)
	distribution := TypeDistribution(windowEntries, typeNames)
	patterns := TimePatterns(windowEntries)

	summary := Summary{
		Period:                period,
		StartDate:             start,
		EndDate:               end,
		TotalEntries:          len(windowEntries),
		AverageMood:           AverageMood(windowEntries),
		MoodTrend:             Trend(trends),
		MostActiveWorkoutType: topTypeName(distribution),
		Streaks:               Streaks(allEntries, today),
	}

	return Report{
		Summary:          summary,
		MoodTrends:       trends,
		TypeDistribution: distribution,
		TimePatterns:     patterns,
		Insights:         GenerateInsights(summary, distribution, patterns),
	}
}

// BuildProfile computes the all-time profile summary
func BuildProfile(allEntries []store.Entry, typeNames map[string]string, today time.Time) Profile {
	streaks := Streaks(allEntries, today)
	distribution := TypeDistribution(allEntries, typeNames)

	return Profile{
		TotalEntries:          len(allEntries),
		CurrentStreak:         streaks.Current,
		LongestStreak:         streaks.Longest,
		AverageMood:           AverageMood(allEntries),
		MostActiveWorkoutType: topTypeName(distribution),
	}
}

func topTypeName(distribution []WorkoutTypeStats) *string {
	if len(distribution) == 0 {
		return nil
	}
	name := distribution[0].WorkoutTypeName
	return &name
}
