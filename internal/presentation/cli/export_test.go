package cli

// Exported for tests.
var (
	RenderAssessment = renderAssessment
	RenderBar        = renderBar
	RenderGuard      = renderGuard
)
