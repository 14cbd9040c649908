package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/keg-tracer/internal/application/dto"
	"github.com/tu-usuario/keg-tracer/internal/application/movements"
	"github.com/tu-usuario/keg-tracer/internal/domain"
	"github.com/tu-usuario/keg-tracer/internal/infrastructure/metrics"
)

// Cabecera que marca un envío del cliente offline (PWA).
const headerPWA = "X-Keg-PWA"

// MovementHandler maneja la ingesta y el listado de movimientos de fûts.
type MovementHandler struct {
	uc *movements.RegisterMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movements.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// RegisterJSON godoc
// @Summary      Registrar movimiento de fûts (ingesta JSON del cliente offline)
// @Tags         movements
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "dt, mtype, client_id, beer_id, qty, consigne_per_keg, notes"
// @Success      201   {object}  dto.MovementAcceptedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/movement [post]
func (h *MovementHandler) RegisterJSON(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		metrics.MovementsRejected.WithLabelValues("invalid_body").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	source := "api"
	if c.Get(headerPWA) != "" {
		source = "pwa"
	}

	m, err := h.uc.RegisterFromRequest(c.Context(), in)
	if err != nil {
		return h.rejectJSON(c, err)
	}

	metrics.MovementsRegistered.WithLabelValues(m.MType, source).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.MovementAcceptedResponse{
		OK: true, ID: m.ID, Message: "movimiento registrado",
	})
}

// RegisterForm maneja el formulario nativo POST /movements/add y redirige al listado,
// igual que el flujo server-rendered original. El cliente offline intercepta esta
// ruta antes de llegar aquí; este endpoint cubre el envío sin PWA.
func (h *MovementHandler) RegisterForm(c *fiber.Ctx) error {
	consigne := decimal.Zero
	if s := c.FormValue("consigne_per_keg"); s != "" {
		if parsed, err := decimal.NewFromString(s); err == nil {
			consigne = parsed
		}
	}
	qty, _ := strconv.Atoi(c.FormValue("qty"))
	clientID, _ := strconv.ParseInt(c.FormValue("client_id"), 10, 64)
	beerID, _ := strconv.ParseInt(c.FormValue("beer_id"), 10, 64)

	in := dto.RegisterMovementRequest{
		Dt:             c.FormValue("dt"),
		MType:          c.FormValue("mtype", "delivery"),
		ClientID:       clientID,
		BeerID:         beerID,
		Qty:            qty,
		ConsignePerKeg: consigne,
		Notes:          c.FormValue("notes"),
	}

	m, err := h.uc.RegisterFromRequest(c.Context(), in)
	if err != nil {
		// El original hace flash + redirect; sin sesión, solo redirect al listado.
		metrics.MovementsRejected.WithLabelValues("form").Inc()
		return c.Redirect("/movements", fiber.StatusSeeOther)
	}

	metrics.MovementsRegistered.WithLabelValues(m.MType, "form").Inc()
	return c.Redirect("/movements", fiber.StatusSeeOther)
}

// List godoc
// @Summary      Listar movimientos (fecha e id descendentes)
// @Tags         movements
// @Produce      json
// @Param        limit   query  int  false  "máx. filas (50 por defecto)"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	page.DefaultPage()

	list, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MovementListResponse{
		Movements: list,
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	})
}

// Delete godoc
// @Summary      Eliminar un movimiento del ledger
// @Tags         movements
// @Produce      json
// @Param        id  path  int  true  "id del movimiento"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id inválido"})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "movimiento no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "movimiento eliminado"})
}

// rejectJSON mapea errores de dominio al contrato ok:false del cliente offline.
func (h *MovementHandler) rejectJSON(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		metrics.MovementsRejected.WithLabelValues("validation").Inc()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if errors.Is(err, domain.ErrNotFound) {
		metrics.MovementsRejected.WithLabelValues("not_found").Inc()
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente o cerveza no encontrado"})
	}
	metrics.MovementsRejected.WithLabelValues("internal").Inc()
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
