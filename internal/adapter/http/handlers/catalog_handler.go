package handlers

import (
	"errors"
	"net/http"

	request "photo_studio/internal/adapter/http/dto/request"
	response "photo_studio/internal/adapter/http/dto/response"
	"photo_studio/internal/domain/pricing"
	"photo_studio/internal/usecase"
	"photo_studio/pkg"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// GetCatalog godoc
// @Summary      Studio catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  entities.Catalog
// @Failure      500  {object}  pkg.HTTPError
// @Router       /catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.usecase.GetCatalog(c.Request.Context())
	if err != nil {
		writeError(c, pkg.NewInternalError(err))
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// Quote godoc
// @Summary      Price a package selection
// @Tags         catalog
// @Produce      json
// @Param        packageId              query     string  true   "package id"
// @Param        additionalPhotoNumber  query     int     false  "extra prints"
// @Success      200  {object}  response.QuoteResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /catalog/quote [get]
func (h *CatalogHandler) Quote(c *gin.Context) {
	var query request.QuoteRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.Quote(c.Request.Context(), query.PackageID, query.AdditionalPhotoNumber)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingPackageID):
		return validationError(usecase.ErrMissingPackageID)
	case errors.Is(err, pricing.ErrNegativeAdditionalUnits):
		return validationError(pricing.ErrNegativeAdditionalUnits)
	case errors.Is(err, pricing.ErrTooManyAdditionalUnits):
		return validationError(pricing.ErrTooManyAdditionalUnits)
	case errors.Is(err, pricing.ErrAmountOverflow):
		return pkg.NewDomainError("INVALID_AMOUNT", "Order amount out of range", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainError("PACKAGE_NOT_FOUND", "Package not found", err, http.StatusNotFound)
	default:
		return pkg.NewInternalError(err)
	}
}
