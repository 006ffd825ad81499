package stats

import (
	"fmt"
	"strings"
)

// FallbackInsight is emitted when no other rule produces a message
const FallbackInsight = "Start logging entries to see your insights!"

// insightThreshold is the minimum average mood that makes an activity or
// time of day worth calling out.
const insightThreshold = 7.0

// insightInput bundles everything the rules inspect
type insightInput struct {
	Summary      Summary
	Distribution []WorkoutTypeStats
	TimePatterns []TimePatternStats
}

// insightRule inspects the aggregated stats and optionally contributes one
// message. Rules are independent; several may fire for the same report.
type insightRule func(in insightInput) (string, bool)

// insightRules is evaluated in priority order
var insightRules = []insightRule{
	streakInsight,
	trendInsight,
	topActivityInsight,
	bestTimeInsight,
	overallMoodInsight,
}

// GenerateInsights produces the ordered list of insight messages for a
// report. The result is never empty.
func GenerateInsights(summary Summary, distribution []WorkoutTypeStats, patterns []TimePatternStats) []string {
	in := insightInput{
		Summary:      summary,
		Distribution: distribution,
		TimePatterns: patterns,
	}

	var insights []string
	for _, rule := range insightRules {
		if msg, ok := rule(in); ok {
			insights = append(insights, msg)
		}
	}

	if len(insights) == 0 {
		insights = append(insights, FallbackInsight)
	}
	return insights
}

func streakInsight(in insightInput) (string, bool) {
	current := in.Summary.Streaks.Current
	switch {
	case current >= 7:
		return fmt.Sprintf("You're on a %d-day streak! Keep the momentum going!", current), true
	case current == 1:
		return "You've logged 1 day in a row. Keep it up!", true
	case current > 1:
		return fmt.Sprintf("You've logged %d days in a row. Keep it up!", current), true
	default:
		return "", false
	}
}

func trendInsight(in insightInput) (string, bool) {
	switch in.Summary.MoodTrend {
	case TrendImproving:
		return "Your mood is trending upward. Whatever you're doing, it's working!", true
	case TrendDeclining:
		return "Your mood has been dipping lately. Consider revisiting what's been working for you.", true
	default:
		return "", false
	}
}

func topActivityInsight(in insightInput) (string, bool) {
	if len(in.Distribution) == 0 {
		return "", false
	}
	top := in.Distribution[0]
	if top.AverageMood == nil || *top.AverageMood < insightThreshold {
		return "", false
	}
	return fmt.Sprintf("%s sessions boost your mood the most (%.1f/10 average).",
		top.WorkoutTypeName, *top.AverageMood), true
}

func bestTimeInsight(in insightInput) (string, bool) {
	var best *TimePatternStats
	for i := range in.TimePatterns {
		p := &in.TimePatterns[i]
		if p.AverageMood == nil {
			continue
		}
		if best == nil || *p.AverageMood > *best.AverageMood {
			best = p
		}
	}
	if best == nil || *best.AverageMood < insightThreshold {
		return "", false
	}
	return fmt.Sprintf("%s workouts leave you feeling your best.", capitalize(string(best.TimeOfDay))), true
}

func overallMoodInsight(in insightInput) (string, bool) {
	avg := in.Summary.AverageMood
	switch {
	case avg == nil:
		return "", false
	case *avg >= 8:
		return "Your overall mood is excellent. Great work!", true
	case *avg >= 6:
		return "You're doing well. Keep building on your routine.", true
	default:
		return "", false
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
