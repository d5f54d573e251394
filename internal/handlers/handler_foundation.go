package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/patient_decisions_app/internal/core/domain"
	portssvc "github.com/SscSPs/patient_decisions_app/internal/core/ports/services"
	"github.com/SscSPs/patient_decisions_app/internal/dto"
	"github.com/SscSPs/patient_decisions_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestDTO is a bound request body that converts to the domain entity T.
type requestDTO[T any] interface {
	ToDomain() T
}

// foundationHandler serves the add/modify/remove/retrieve/bulk endpoints of
// one entity. R is the request body and V the response body.
type foundationHandler[T any, P domain.EntityPtr[T], R requestDTO[T], V any] struct {
	entity     string
	service    portssvc.FoundationService[T]
	toResponse func(*T) V
}

func newFoundationHandler[T any, P domain.EntityPtr[T], R requestDTO[T], V any](
	entity string,
	service portssvc.FoundationService[T],
	toResponse func(*T) V,
) *foundationHandler[T, P, R, V] {
	return &foundationHandler[T, P, R, V]{entity: entity, service: service, toResponse: toResponse}
}

func (h *foundationHandler[T, P, R, V]) logger(c *gin.Context) *slog.Logger {
	return middleware.LoggerOrDefault(c.Request.Context()).With(slog.String("entity", h.entity))
}

func (h *foundationHandler[T, P, R, V]) add(c *gin.Context) {
	logger := h.logger(c)
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for add", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entity := req.ToDomain()
	created, err := h.service.Add(c.Request.Context(), &entity)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	logger.Info("Record added", slog.String("id", P(created).Identity()))
	c.JSON(http.StatusCreated, h.toResponse(created))
}

func (h *foundationHandler[T, P, R, V]) modify(c *gin.Context) {
	logger := h.logger(c)
	id := c.Param("id")
	var req R
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for modify", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entity := req.ToDomain()
	if bodyID := P(&entity).Identity(); bodyID != id {
		logger.Warn("Path id does not match body id", slog.String("path_id", id), slog.String("body_id", bodyID))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Path id does not match body id"})
		return
	}

	updated, err := h.service.Modify(c.Request.Context(), &entity)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	logger.Info("Record modified", slog.String("id", id))
	c.JSON(http.StatusOK, h.toResponse(updated))
}

func (h *foundationHandler[T, P, R, V]) get(c *gin.Context) {
	found, err := h.service.RetrieveByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(found))
}

func (h *foundationHandler[T, P, R, V]) list(c *gin.Context) {
	all, err := h.service.RetrieveAll(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}

	responses := make([]V, len(all))
	for i := range all {
		responses[i] = h.toResponse(&all[i])
	}
	h.logger(c).Debug("Records listed", slog.Int("count", len(responses)))
	c.JSON(http.StatusOK, responses)
}

func (h *foundationHandler[T, P, R, V]) remove(c *gin.Context) {
	removed, err := h.service.RemoveByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	h.logger(c).Info("Record removed", slog.String("id", P(removed).Identity()))
	c.JSON(http.StatusOK, h.toResponse(removed))
}

func (h *foundationHandler[T, P, R, V]) bulk(c *gin.Context) {
	logger := h.logger(c)
	batchSize := 0
	if raw := c.Query("batchSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "batchSize must be a positive integer"})
			return
		}
		batchSize = parsed
	}

	var reqs []R
	if err := c.ShouldBindJSON(&reqs); err != nil {
		logger.Warn("Failed to bind JSON for bulk upsert", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	var entities []T
	if reqs != nil {
		entities = make([]T, len(reqs))
		for i, req := range reqs {
			entities[i] = req.ToDomain()
		}
	}

	var err error
	if batchSize > 0 {
		err = h.service.BulkAddOrModifyBatch(c.Request.Context(), entities, batchSize)
	} else {
		batchSize = h.service.DefaultBatchSize()
		err = h.service.BulkAddOrModify(c.Request.Context(), entities)
	}
	if err != nil {
		writeServiceError(c, err)
		return
	}

	logger.Info("Bulk upsert completed", slog.Int("received", len(entities)))
	c.JSON(http.StatusOK, dto.BulkResponse{Received: len(entities), BatchSize: batchSize})
}
