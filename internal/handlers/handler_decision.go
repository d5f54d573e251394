package handlers

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portssvc "github.com/SscSPs/patient_decisions_app/internal/core/ports/services"
	"github.com/SscSPs/patient_decisions_app/internal/core/services"
	"github.com/SscSPs/patient_decisions_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// decisionHandler handles HTTP requests related to decisions.
type decisionHandler struct {
	*foundationHandler[domain.Decision, *domain.Decision, dto.DecisionRequest, dto.DecisionResponse]
}

// RegisterDecisionRoutes registers routes related to decisions.
func RegisterDecisionRoutes(rg *gin.RouterGroup, svc portssvc.DecisionSvcFacade) {
	registerValidators()
	h := &decisionHandler{
		foundationHandler: newFoundationHandler[domain.Decision, *domain.Decision, dto.DecisionRequest](
			services.EntityDecision, svc, dto.ToDecisionResponse),
	}

	group := rg.Group("/decisions")
	{
		group.POST("", h.addDecision)
		group.GET("", h.listDecisions)
		group.POST("/bulk", h.bulkDecisions)
		group.GET("/:id", h.getDecision)
		group.PUT("/:id", h.modifyDecision)
		group.DELETE("/:id", h.removeDecision)
	}
}

// addDecision godoc
// @Summary Add a decision
// @Description Stamps, validates and stores a new decision. Audit fields may be omitted.
// @Tags decisions
// @Accept  json
// @Produce  json
// @Param   body body dto.DecisionRequest true "decision details"
// @Success 201 {object} dto.DecisionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Already exists"
// @Failure 422 {object} dto.ErrorResponse "Invalid reference"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /decisions [post]
func (h *decisionHandler) addDecision(c *gin.Context) { h.add(c) }

// modifyDecision godoc
// @Summary Modify a decision
// @Description Updates a decision. CreatedBy and CreatedDate must match the stored record.
// @Tags decisions
// @Accept  json
// @Produce  json
// @Param   id path string true "decision ID"
// @Param   body body dto.DecisionRequest true "decision details"
// @Success 200 {object} dto.DecisionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation or provenance error"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 423 {object} dto.ErrorResponse "Record locked"
// @Security BearerAuth
// @Router /decisions/{id} [put]
func (h *decisionHandler) modifyDecision(c *gin.Context) { h.modify(c) }

// getDecision godoc
// @Summary Get a decision by ID
// @Tags decisions
// @Produce  json
// @Param   id path string true "decision ID"
// @Success 200 {object} dto.DecisionResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /decisions/{id} [get]
func (h *decisionHandler) getDecision(c *gin.Context) { h.get(c) }

// listDecisions godoc
// @Summary List decisions
// @Tags decisions
// @Produce  json
// @Success 200 {array} dto.DecisionResponse
// @Security BearerAuth
// @Router /decisions [get]
func (h *decisionHandler) listDecisions(c *gin.Context) { h.list(c) }

// removeDecision godoc
// @Summary Remove a decision
// @Tags decisions
// @Produce  json
// @Param   id path string true "decision ID"
// @Success 200 {object} dto.DecisionResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /decisions/{id} [delete]
func (h *decisionHandler) removeDecision(c *gin.Context) { h.remove(c) }

// bulkDecisions godoc
// @Summary Bulk add or modify decisions
// @Description Reconciles the body against storage batch by batch, inserting new and updating existing records. Batches committed before a failure stay committed.
// @Tags decisions
// @Accept  json
// @Produce  json
// @Param   batchSize query int false "Batch size (defaults to BULK_BATCH_SIZE)"
// @Param   body body []dto.DecisionRequest true "decisions"
// @Success 200 {object} dto.BulkResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /decisions/bulk [post]
func (h *decisionHandler) bulkDecisions(c *gin.Context) { h.bulk(c) }
