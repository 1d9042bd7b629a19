package hermes

const (
	SubjectRankingWildcard = "boxrank.ranking.>"

	StreamName   = "BOXRANK_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectRankingComputed(runID string) string { return "boxrank.ranking." + runID + ".computed" }
