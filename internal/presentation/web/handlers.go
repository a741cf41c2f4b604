package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chynaenye/microinsurance-predictor/internal/application/usecase"
	"github.com/chynaenye/microinsurance-predictor/internal/domain/model"
	"github.com/chynaenye/microinsurance-predictor/internal/infrastructure/monitoring"
)

// AssessHandler serves the assessment page and runs evaluations.
type AssessHandler struct {
	evaluate *usecase.EvaluateBeneficiary
	metrics  *monitoring.Metrics
}

// NewAssessHandler creates a new assessment handler.
func NewAssessHandler(evaluate *usecase.EvaluateBeneficiary, metrics *monitoring.Metrics) *AssessHandler {
	return &AssessHandler{
		evaluate: evaluate,
		metrics:  metrics,
	}
}

// Index renders the intake form with its default values.
func (h *AssessHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.gohtml", newIndexView(defaultAssessForm()))
}

// Assess runs one evaluation. Form posts receive the rendered page; clients
// accepting JSON receive the response DTO. A missing beneficiary ID is a
// re-prompt on the page, not a failure.
func (h *AssessHandler) Assess(c *gin.Context) {
	start := time.Now()

	form := defaultAssessForm()
	if err := c.ShouldBind(&form); err != nil {
		h.fail(c, form, "Invalid input: "+err.Error())
		return
	}

	resp, err := h.evaluate.Execute(c.Request.Context(), form.toRequest())
	switch {
	case errors.Is(err, model.ErrMissingBeneficiaryID):
		h.metrics.RecordGuardRejection()
		if wantsJSON(c) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "beneficiary ID is required",
				"hint":  "Example: BEN001234, MIC789456, etc.",
			})
			return
		}
		view := newIndexView(form)
		view.Guard = true
		c.HTML(http.StatusOK, "index.gohtml", view)
		return
	case err != nil:
		h.fail(c, form, err.Error())
		return
	}

	probability, _ := strconv.ParseFloat(resp.DropoutProbability, 64)
	h.metrics.RecordEvaluation(resp.Outcome, resp.RiskTier, probability, time.Since(start))

	if wantsJSON(c) {
		c.JSON(http.StatusOK, resp)
		return
	}

	view := newIndexView(form)
	view.Result = newResultView(resp)
	c.HTML(http.StatusOK, "index.gohtml", view)
}

func (h *AssessHandler) fail(c *gin.Context, form assessForm, msg string) {
	if wantsJSON(c) {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	view := newIndexView(form)
	view.Error = msg
	c.HTML(http.StatusBadRequest, "index.gohtml", view)
}

// wantsJSON reports whether the client asked for a JSON response, either via
// the Accept header or by posting a JSON body.
func wantsJSON(c *gin.Context) bool {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		return true
	}
	return c.ContentType() == "application/json"
}
