package salary

import "vacancystats/internal/models"

// Estimate converts a possibly partial salary range into a single
// figure. When only one bound is known the figure is skewed toward the
// middle of a typical range: 80% of a stated lower bound, 120% of a
// stated upper bound, truncated to an integer. The second return is
// false when the range carries no bounds at all.
func Estimate(r models.SalaryRange) (int, bool) {
	switch {
	case r.Lower != nil && r.Upper != nil:
		return (*r.Lower + *r.Upper) / 2, true
	case r.Lower != nil:
		return *r.Lower * 4 / 5, true // floor(lower * 0.8)
	case r.Upper != nil:
		return *r.Upper * 6 / 5, true // floor(upper * 1.2)
	}
	return 0, false
}
