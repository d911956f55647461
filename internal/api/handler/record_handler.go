package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pagoservicios/payments-api/internal/core/domain"
	"github.com/pagoservicios/payments-api/internal/core/ports"
)

// RecordHandler serves the five CRUD routes for one entity type. Requests
// bind straight onto the domain struct; validator tags on the struct cover
// required-field presence. Domain errors bubble to the central error handler.
type RecordHandler[T domain.Record] struct {
	service ports.RecordService[T]
}

func NewRecordHandler[T domain.Record](service ports.RecordService[T]) *RecordHandler[T] {
	return &RecordHandler[T]{service: service}
}

// List handles GET /<entity>/listar.
func (h *RecordHandler[T]) List(c echo.Context) error {
	records, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, records)
}

// Create handles POST /<entity>/cargar.
func (h *RecordHandler[T]) Create(c echo.Context) error {
	var record T
	if err := c.Bind(&record); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&record); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), &record)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// Get handles GET /<entity>/consultar/:id.
func (h *RecordHandler[T]) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	record, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Update handles PUT /<entity>/editar/:id. The body id must match the path id.
func (h *RecordHandler[T]) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var record T
	if err := c.Bind(&record); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&record); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), id, &record)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /<entity>/eliminar/:id.
func (h *RecordHandler[T]) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "record deleted"})
}
