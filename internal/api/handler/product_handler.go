package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bizcore/erp-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /api/products.
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, products)
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product by id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, product)
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), toProductInput(req), actorID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, product)
}

// Update handles PUT /api/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	product, err := h.service.Update(c.Request().Context(), id, toProductInput(req), actorID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, product)
}

// Delete handles DELETE /api/products/:id. Products are soft-deleted:
// the row is deactivated and stays retrievable by id.
//
// @Summary      Deactivate a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id, actorID); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"message": "product deactivated"})
}

// LowStock handles GET /api/products/low-stock.
func (h *ProductHandler) LowStock(c echo.Context) error {
	products, err := h.service.ListLowStock(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, products)
}

// Categories handles GET /api/products/categories.
func (h *ProductHandler) Categories(c echo.Context) error {
	categories, err := h.service.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, categories)
}

// Brands handles GET /api/products/brands.
func (h *ProductHandler) Brands(c echo.Context) error {
	brands, err := h.service.Brands(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, brands)
}

// BulkCreate handles POST /api/products/bulk. Every item is attempted;
// the response carries aggregate counts plus per-item failures.
//
// @Summary      Bulk-import products
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bulkProductRequest  true  "Products to import"
// @Success      200   {object}  envelope
// @Router       /api/products/bulk [post]
func (h *ProductHandler) BulkCreate(c echo.Context) error {
	var req bulkProductRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	items := make([]ports.ProductInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = toProductInput(item)
	}

	result, err := h.service.BulkCreate(c.Request().Context(), items, actorID)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		ProductName:        req.ProductName,
		ProductCode:        req.ProductCode,
		ProductCategory:    req.ProductCategory,
		Unit:               req.Unit,
		CriticalStockLevel: req.CriticalStockLevel,
		CurrentStock:       req.CurrentStock,
		Brand:              req.Brand,
	}
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
