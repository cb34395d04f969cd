package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/travel-budget-estimator/internal/dataset"
	"github.com/anyulbade/travel-budget-estimator/internal/dto"
)

type DatasetHandler struct {
	store *dataset.Store
}

func NewDatasetHandler(store *dataset.Store) *DatasetHandler {
	return &DatasetHandler{store: store}
}

// Get returns the ingested reference data, triggering ingestion on the
// first call.
func (h *DatasetHandler) Get(c *gin.Context) {
	ds, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("dataset ingestion failed")
		c.JSON(http.StatusInternalServerError, dto.Fail("failed to load cost dataset"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(ds))
}

// Reload re-ingests the workbook. Ingestion failures are never retried
// automatically; this endpoint is the explicit retry path.
func (h *DatasetHandler) Reload(c *gin.Context) {
	if err := h.store.Reload(c.Request.Context()); err != nil {
		log.Error().Err(err).Msg("dataset reload failed")
		c.JSON(http.StatusInternalServerError, dto.Fail("failed to reload cost dataset"))
		return
	}

	ds, err := h.store.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.Fail("failed to load cost dataset"))
		return
	}
	c.JSON(http.StatusOK, dto.OK(ds))
}
