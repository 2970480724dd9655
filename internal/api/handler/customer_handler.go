package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/bizcore/erp-api/internal/core/ports"
)

// CustomerHandler handles HTTP requests for customer records.
type CustomerHandler struct {
	service ports.CustomerService
}

func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

type customerRequest struct {
	CustomerName      string  `json:"customer_name"       validate:"required,min=2"`
	CustomerCode      string  `json:"customer_code"       validate:"required"`
	Address           string  `json:"address"`
	CityOrDistrict    string  `json:"city_or_district"`
	RegionOrState     string  `json:"region_or_state"`
	Country           string  `json:"country"`
	TelephoneNumber   string  `json:"telephone_number"`
	Email             string  `json:"email"               validate:"omitempty,email"`
	ContactPerson     string  `json:"contact_person"`
	SalesRep          string  `json:"sales_rep"`
	PaymentTermsLimit int64   `json:"payment_terms_limit" validate:"gte=0"`
	BalanceRiskLimit  float64 `json:"balance_risk_limit"  validate:"gte=0"`
}

// List handles GET /api/customers with search, country, and sales_rep
// filters plus pagination.
func (h *CustomerHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.CustomerFilter{
		Search:   c.QueryParam("search"),
		Country:  c.QueryParam("country"),
		SalesRep: c.QueryParam("sales_rep"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	customer, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c echo.Context) error {
	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Create(c.Request().Context(), toCustomerInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req customerRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, http.StatusBadRequest, err.Error())
	}

	customer, err := h.service.Update(c.Request().Context(), id, toCustomerInput(req))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/:id. Customer deletion is hard:
// the row is removed.
func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return respond(c, http.StatusOK, map[string]string{"message": "customer deleted"})
}

func toCustomerInput(req customerRequest) ports.CustomerInput {
	return ports.CustomerInput{
		CustomerName:      req.CustomerName,
		CustomerCode:      req.CustomerCode,
		Address:           req.Address,
		CityOrDistrict:    req.CityOrDistrict,
		RegionOrState:     req.RegionOrState,
		Country:           req.Country,
		TelephoneNumber:   req.TelephoneNumber,
		Email:             req.Email,
		ContactPerson:     req.ContactPerson,
		SalesRep:          req.SalesRep,
		PaymentTermsLimit: req.PaymentTermsLimit,
		BalanceRiskLimit:  req.BalanceRiskLimit,
	}
}
