package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pagoservicios/payments-api/internal/api/metrics"
	"github.com/pagoservicios/payments-api/internal/core/domain"
	"github.com/pagoservicios/payments-api/internal/core/ports"
)

// PaymentHandler extends the generic CRUD handler with idempotent creation,
// metrics and an audit trail of who mutated what. Deleting a payment
// cascades to its detail rows.
type PaymentHandler struct {
	*RecordHandler[domain.Payment]
	service ports.PaymentService
	logger  zerolog.Logger
}

func NewPaymentHandler(service ports.PaymentService, logger zerolog.Logger) *PaymentHandler {
	return &PaymentHandler{
		RecordHandler: NewRecordHandler[domain.Payment](service),
		service:       service,
		logger:        logger,
	}
}

// Create handles POST /payments/cargar.
//
// @Summary      Create a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string          false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      domain.Payment  true   "Payment"
// @Success      200              {object}  domain.Payment
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Failure      500              {object}  map[string]string
// @Router       /payments/cargar [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var payment domain.Payment
	if err := c.Bind(&payment); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&payment); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	key := c.Request().Header.Get("Idempotency-Key")
	created, replayed, err := h.service.CreateIdempotent(c.Request().Context(), key, &payment)
	if err != nil {
		return err
	}

	if key != "" {
		if replayed {
			metrics.IdempotencyTotal.WithLabelValues("hit").Inc()
		} else {
			metrics.IdempotencyTotal.WithLabelValues("miss").Inc()
		}
	}
	if !replayed {
		metrics.PaymentsCreatedTotal.WithLabelValues(created.Status).Inc()
	}

	h.logger.Info().
		Str("actor", ident.Username).
		Uint("payment_id", created.ID).
		Bool("replayed", replayed).
		Msg("payment created")

	return c.JSON(http.StatusOK, created)
}

// Delete handles DELETE /payments/eliminar/:id. The payment and its detail
// rows are removed atomically.
//
// @Summary      Delete a payment and its details
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Payment id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  map[string]string
// @Router       /payments/eliminar/{id} [delete]
func (h *PaymentHandler) Delete(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.PaymentsDeletedTotal.Inc()
	h.logger.Info().Str("actor", ident.Username).Uint("payment_id", id).Msg("payment deleted")
	return c.JSON(http.StatusOK, messageResponse{Message: "payment deleted"})
}
