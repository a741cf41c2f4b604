package web

// Exported for tests.
var RenderGauge = renderGauge
