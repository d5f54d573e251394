package handlers

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portssvc "github.com/SscSPs/patient_decisions_app/internal/core/ports/services"
	"github.com/SscSPs/patient_decisions_app/internal/core/services"
	"github.com/SscSPs/patient_decisions_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// decisionTypeHandler handles HTTP requests related to decision types.
type decisionTypeHandler struct {
	*foundationHandler[domain.DecisionType, *domain.DecisionType, dto.DecisionTypeRequest, dto.DecisionTypeResponse]
}

// RegisterDecisionTypeRoutes registers routes related to decision types.
func RegisterDecisionTypeRoutes(rg *gin.RouterGroup, svc portssvc.DecisionTypeSvcFacade) {
	h := &decisionTypeHandler{
		foundationHandler: newFoundationHandler[domain.DecisionType, *domain.DecisionType, dto.DecisionTypeRequest](
			services.EntityDecisionType, svc, dto.ToDecisionTypeResponse),
	}

	group := rg.Group("/decision-types")
	{
		group.POST("", h.addDecisionType)
		group.GET("", h.listDecisionTypes)
		group.POST("/bulk", h.bulkDecisionTypes)
		group.GET("/:id", h.getDecisionType)
		group.PUT("/:id", h.modifyDecisionType)
		group.DELETE("/:id", h.removeDecisionType)
	}
}

// addDecisionType godoc
// @Summary Add a decision type
// @Description Stamps, validates and stores a new decision type. Audit fields may be omitted.
// @Tags decision-types
// @Accept  json
// @Produce  json
// @Param   body body dto.DecisionTypeRequest true "decision type details"
// @Success 201 {object} dto.DecisionTypeResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Already exists"
// @Failure 422 {object} dto.ErrorResponse "Invalid reference"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /decision-types [post]
func (h *decisionTypeHandler) addDecisionType(c *gin.Context) { h.add(c) }

// modifyDecisionType godoc
// @Summary Modify a decision type
// @Description Updates a decision type. CreatedBy and CreatedDate must match the stored record.
// @Tags decision-types
// @Accept  json
// @Produce  json
// @Param   id path string true "decision type ID"
// @Param   body body dto.DecisionTypeRequest true "decision type details"
// @Success 200 {object} dto.DecisionTypeResponse
// @Failure 400 {object} dto.ErrorResponse "Validation or provenance error"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 423 {object} dto.ErrorResponse "Record locked"
// @Security BearerAuth
// @Router /decision-types/{id} [put]
func (h *decisionTypeHandler) modifyDecisionType(c *gin.Context) { h.modify(c) }

// getDecisionType godoc
// @Summary Get a decision type by ID
// @Tags decision-types
// @Produce  json
// @Param   id path string true "decision type ID"
// @Success 200 {object} dto.DecisionTypeResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /decision-types/{id} [get]
func (h *decisionTypeHandler) getDecisionType(c *gin.Context) { h.get(c) }

// listDecisionTypes godoc
// @Summary List decision types
// @Tags decision-types
// @Produce  json
// @Success 200 {array} dto.DecisionTypeResponse
// @Security BearerAuth
// @Router /decision-types [get]
func (h *decisionTypeHandler) listDecisionTypes(c *gin.Context) { h.list(c) }

// removeDecisionType godoc
// @Summary Remove a decision type
// @Tags decision-types
// @Produce  json
// @Param   id path string true "decision type ID"
// @Success 200 {object} dto.DecisionTypeResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /decision-types/{id} [delete]
func (h *decisionTypeHandler) removeDecisionType(c *gin.Context) { h.remove(c) }

// bulkDecisionTypes godoc
// @Summary Bulk add or modify decision types
// @Description Reconciles the body against storage batch by batch, inserting new and updating existing records. Batches committed before a failure stay committed.
// @Tags decision-types
// @Accept  json
// @Produce  json
// @Param   batchSize query int false "Batch size (defaults to BULK_BATCH_SIZE)"
// @Param   body body []dto.DecisionTypeRequest true "decision types"
// @Success 200 {object} dto.BulkResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /decision-types/bulk [post]
func (h *decisionTypeHandler) bulkDecisionTypes(c *gin.Context) { h.bulk(c) }
