package metrics

import "time"

// PassCounts is what a finished override pass reports.
type PassCounts struct {
	Applied       int
	Missed        int
	Unmatched     int
	BuffsReplaced int
}

// ObservePass records one override pass. Counts are recorded even when the
// pass failed, since entries before the failure were already applied.
func ObservePass(category string, counts PassCounts, elapsed time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusError
	}
	OverridePasses.WithLabelValues(category, status).Inc()
	OverridePassDuration.WithLabelValues(category).Observe(elapsed.Seconds())

	OverrideEntries.WithLabelValues(category, OutcomeApplied).Add(float64(counts.Applied))
	OverrideEntries.WithLabelValues(category, OutcomeMissed).Add(float64(counts.Missed))
	OverrideEntries.WithLabelValues(category, OutcomeUnmatched).Add(float64(counts.Unmatched))
	OverrideBuffLists.WithLabelValues(category).Add(float64(counts.BuffsReplaced))
}
