package algo

import "math"

// LogZScores computes population z-scores over the natural logs of the
// input values. Taking the log first avoids skew from the heavy right
// tail of raw rank values. Returns nil when the spread is zero or the
// input is empty, in which case callers leave every z-score at 0.
func LogZScores(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	logs := make([]float64, len(values))
	for i, v := range values {
		logs[i] = math.Log(v)
	}

	var sum float64
	for _, l := range logs {
		sum += l
	}
	mean := sum / float64(len(logs))

	var sq float64
	for _, l := range logs {
		d := l - mean
		sq += d * d
	}
	std := math.Sqrt(sq / float64(len(logs)))
	if std == 0 {
		return nil
	}

	zs := make([]float64, len(logs))
	for i, l := range logs {
		zs[i] = (l - mean) / std
	}
	return zs
}
