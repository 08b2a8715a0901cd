// Package questiongen produces placeholder question sets for an assessment.
package questiongen

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithDefaultCounts sets the fallback question counts used when an
// assessment carries no question configuration. Negative values are
// ignored.
func WithDefaultCounts(mcq, descriptive, dsa int) Option {
	return func(g *Generator) {
		if mcq >= 0 {
			g.mcqCount = mcq
		}
		if descriptive >= 0 {
			g.descriptiveCount = descriptive
		}
		if dsa >= 0 {
			g.dsaCount = dsa
		}
	}
}
