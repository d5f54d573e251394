package handlers

import (
	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portssvc "github.com/SscSPs/patient_decisions_app/internal/core/ports/services"
	"github.com/SscSPs/patient_decisions_app/internal/core/services"
	"github.com/SscSPs/patient_decisions_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// consumerAdoptionHandler handles HTTP requests related to consumer adoptions.
type consumerAdoptionHandler struct {
	*foundationHandler[domain.ConsumerAdoption, *domain.ConsumerAdoption, dto.ConsumerAdoptionRequest, dto.ConsumerAdoptionResponse]
}

// RegisterConsumerAdoptionRoutes registers routes related to consumer adoptions.
func RegisterConsumerAdoptionRoutes(rg *gin.RouterGroup, svc portssvc.ConsumerAdoptionSvcFacade) {
	h := &consumerAdoptionHandler{
		foundationHandler: newFoundationHandler[domain.ConsumerAdoption, *domain.ConsumerAdoption, dto.ConsumerAdoptionRequest](
			services.EntityConsumerAdoption, svc, dto.ToConsumerAdoptionResponse),
	}

	group := rg.Group("/consumer-adoptions")
	{
		group.POST("", h.addConsumerAdoption)
		group.GET("", h.listConsumerAdoptions)
		group.POST("/bulk", h.bulkConsumerAdoptions)
		group.GET("/:id", h.getConsumerAdoption)
		group.PUT("/:id", h.modifyConsumerAdoption)
		group.DELETE("/:id", h.removeConsumerAdoption)
	}
}

// addConsumerAdoption godoc
// @Summary Add a consumer adoption
// @Description Stamps, validates and stores a new consumer adoption. Audit fields may be omitted.
// @Tags consumer-adoptions
// @Accept  json
// @Produce  json
// @Param   body body dto.ConsumerAdoptionRequest true "consumer adoption details"
// @Success 201 {object} dto.ConsumerAdoptionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Already exists"
// @Failure 422 {object} dto.ErrorResponse "Invalid reference"
// @Failure 503 {object} dto.ErrorResponse "Storage unavailable"
// @Security BearerAuth
// @Router /consumer-adoptions [post]
func (h *consumerAdoptionHandler) addConsumerAdoption(c *gin.Context) { h.add(c) }

// modifyConsumerAdoption godoc
// @Summary Modify a consumer adoption
// @Description Updates a consumer adoption. CreatedBy and CreatedDate must match the stored record.
// @Tags consumer-adoptions
// @Accept  json
// @Produce  json
// @Param   id path string true "consumer adoption ID"
// @Param   body body dto.ConsumerAdoptionRequest true "consumer adoption details"
// @Success 200 {object} dto.ConsumerAdoptionResponse
// @Failure 400 {object} dto.ErrorResponse "Validation or provenance error"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Failure 423 {object} dto.ErrorResponse "Record locked"
// @Security BearerAuth
// @Router /consumer-adoptions/{id} [put]
func (h *consumerAdoptionHandler) modifyConsumerAdoption(c *gin.Context) { h.modify(c) }

// getConsumerAdoption godoc
// @Summary Get a consumer adoption by ID
// @Tags consumer-adoptions
// @Produce  json
// @Param   id path string true "consumer adoption ID"
// @Success 200 {object} dto.ConsumerAdoptionResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /consumer-adoptions/{id} [get]
func (h *consumerAdoptionHandler) getConsumerAdoption(c *gin.Context) { h.get(c) }

// listConsumerAdoptions godoc
// @Summary List consumer adoptions
// @Tags consumer-adoptions
// @Produce  json
// @Success 200 {array} dto.ConsumerAdoptionResponse
// @Security BearerAuth
// @Router /consumer-adoptions [get]
func (h *consumerAdoptionHandler) listConsumerAdoptions(c *gin.Context) { h.list(c) }

// removeConsumerAdoption godoc
// @Summary Remove a consumer adoption
// @Tags consumer-adoptions
// @Produce  json
// @Param   id path string true "consumer adoption ID"
// @Success 200 {object} dto.ConsumerAdoptionResponse
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Security BearerAuth
// @Router /consumer-adoptions/{id} [delete]
func (h *consumerAdoptionHandler) removeConsumerAdoption(c *gin.Context) { h.remove(c) }

// bulkConsumerAdoptions godoc
// @Summary Bulk add or modify consumer adoptions
// @Description Reconciles the body against storage batch by batch, inserting new and updating existing records. Batches committed before a failure stay committed.
// @Tags consumer-adoptions
// @Accept  json
// @Produce  json
// @Param   batchSize query int false "Batch size (defaults to BULK_BATCH_SIZE)"
// @Param   body body []dto.ConsumerAdoptionRequest true "consumer adoptions"
// @Success 200 {object} dto.BulkResponse
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Security BearerAuth
// @Router /consumer-adoptions/bulk [post]
func (h *consumerAdoptionHandler) bulkConsumerAdoptions(c *gin.Context) { h.bulk(c) }
