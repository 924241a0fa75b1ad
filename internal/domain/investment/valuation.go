package investment

// CurrentValue projects the present value of a position from the asset's
// performance drift since the position's baseline was captured.
//
// Percentages are points on the asset's own lifetime performance index,
// so the gain or loss is the marginal drift between baseline and now,
// not the asset's absolute performance. The result is not floored at
// zero: a delta below -100 yields a negative value, which callers must
// treat as valid output.
func CurrentValue(investedAmount, baselinePerformance, currentPerformance float64) float64 {
	if investedAmount == 0 {
		return 0
	}
	delta := currentPerformance - baselinePerformance
	return investedAmount * (1 + delta/100)
}
