package handlers

import (
	"errors"
	"net/http"

	response "sama-store/internal/adapter/http/dto/response"
	"sama-store/internal/usecase"
	"sama-store/pkg"

	"github.com/gin-gonic/gin"
)

// ProductHandler serves the storefront catalog.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

// ListProducts returns the catalog, optionally filtered by ?category=.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapProductError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

func mapProductError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
