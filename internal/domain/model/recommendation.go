package model

// Recommendation levels, from most to least severe.
const (
	RecommendationUrgent    = "urgent"
	RecommendationProactive = "proactive"
	RecommendationStandard  = "standard"
)

// Recommendation is the retention playbook selected for a dropout percentage
// band.
type Recommendation struct {
	Level   string
	Title   string
	Actions []string
}
