package handlers

import (
	"net/http"

	"devis_batiment/internal/adapter/http/dto/response"
	"devis_batiment/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// GetCatalog lists the standard work items in catalog order.
//
// @Summary  Standard work items
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  response.CatalogResponse
// @Router   /catalog [get]
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(entities.Catalog()))
}

// Ping answers health checks.
//
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
