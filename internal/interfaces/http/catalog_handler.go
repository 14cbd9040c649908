package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/keg-tracer/internal/application/dto"
	"github.com/tu-usuario/keg-tracer/internal/application/usecase"
	"github.com/tu-usuario/keg-tracer/internal/domain"
)

// CatalogHandler maneja los catálogos de clientes y cervezas.
type CatalogHandler struct {
	clients *usecase.ClientUseCase
	beers   *usecase.BeerUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(clients *usecase.ClientUseCase, beers *usecase.BeerUseCase) *CatalogHandler {
	return &CatalogHandler{clients: clients, beers: beers}
}

// ListClients godoc
// @Summary      Listar clientes (orden alfabético)
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.ClientResponse
// @Router       /api/clients [get]
func (h *CatalogHandler) ListClients(c *fiber.Ctx) error {
	list, err := h.clients.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// CreateClient godoc
// @Summary      Crear cliente
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateClientRequest  true  "nombre único"
// @Success      201  {object}  dto.ClientResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/clients [post]
func (h *CatalogHandler) CreateClient(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	// El formulario nativo manda name urlencoded; BodyParser cubre ambos.
	created, err := h.clients.Create(in)
	if err != nil {
		return h.rejectCatalog(c, err, "cliente")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListBeers godoc
// @Summary      Listar catálogo de cervezas (orden alfabético)
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.BeerResponse
// @Router       /api/beers [get]
func (h *CatalogHandler) ListBeers(c *fiber.Ctx) error {
	list, err := h.beers.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// CreateBeer godoc
// @Summary      Crear cerveza
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBeerRequest  true  "nombre único y precio TTC"
// @Success      201  {object}  dto.BeerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/beers [post]
func (h *CatalogHandler) CreateBeer(c *fiber.Ctx) error {
	var in dto.CreateBeerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	created, err := h.beers.Create(in)
	if err != nil {
		return h.rejectCatalog(c, err, "cerveza")
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CatalogHandler) rejectCatalog(c *fiber.Ctx, err error, what string) error {
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: what + ": datos inválidos"})
	}
	if errors.Is(err, domain.ErrDuplicate) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: what + ": nombre ya existe"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
