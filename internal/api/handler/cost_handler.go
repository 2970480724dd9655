package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bizcore/erp-api/internal/core/ports"
)

// CostHandler handles HTTP requests for fixed costs and product costs.
type CostHandler struct {
	service ports.CostService
}

func NewCostHandler(service ports.CostService) *CostHandler {
	return &CostHandler{service: service}
}

type fixedCostRequest struct {
	CostName string  `json:"cost_name" validate:"required"`
	Month    string  `json:"month"     validate:"required,len=7"`
	Amount   float64 `json:"amount"    validate:"required,gt=0"`
}

type productCostRequest struct {
	ProductID int64   `json:"product_id" validate:"required,gt=0"`
	Month     string  `json:"month"      validate:"required,len=7"`
	UnitCost  float64 `json:"unit_cost"  validate:"required,gt=0"`
}

// --- Fixed costs ---

func (h *CostHandler) ListFixed(c echo.Context) error {
	costs, err := h.service.ListFixed(c.Request().Context(), c.QueryParam("month"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, costs)
}

func (h *CostHandler) CreateFixed(c echo.Context) error {
	var req fixedCostRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	fc, err := h.service.CreateFixed(c.Request().Context(), ports.FixedCostInput{
		CostName: req.CostName,
		Month:    req.Month,
		Amount:   req.Amount,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, fc)
}

func (h *CostHandler) UpdateFixed(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req fixedCostRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	fc, err := h.service.UpdateFixed(c.Request().Context(), id, ports.FixedCostInput{
		CostName: req.CostName,
		Month:    req.Month,
		Amount:   req.Amount,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, fc)
}

func (h *CostHandler) DeleteFixed(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteFixed(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"message": "fixed cost deleted"})
}

// --- Product costs ---

func (h *CostHandler) ListProductCosts(c echo.Context) error {
	productID, _ := strconv.ParseInt(c.QueryParam("product_id"), 10, 64)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	result, err := h.service.ListProductCosts(c.Request().Context(), ports.ProductCostFilter{
		ProductID: productID,
		Month:     c.QueryParam("month"),
		Limit:     limit,
		Offset:    offset,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

func (h *CostHandler) CreateProductCost(c echo.Context) error {
	var req productCostRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	pc, err := h.service.CreateProductCost(c.Request().Context(), ports.ProductCostInput{
		ProductID: req.ProductID,
		Month:     req.Month,
		UnitCost:  req.UnitCost,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, pc)
}

func (h *CostHandler) UpdateProductCost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req productCostRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	pc, err := h.service.UpdateProductCost(c.Request().Context(), id, ports.ProductCostInput{
		ProductID: req.ProductID,
		Month:     req.Month,
		UnitCost:  req.UnitCost,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, pc)
}

func (h *CostHandler) DeleteProductCost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteProductCost(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"message": "product cost deleted"})
}
