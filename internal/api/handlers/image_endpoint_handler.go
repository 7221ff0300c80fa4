package handlers

import (
	"DishCraft-Backend/domain"
	"DishCraft-Backend/internal/api/presenters"
	"DishCraft-Backend/pkg/image"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	// ImageEndpointHandler lets the remote image generation service announce
	// its current address. The stored address is picked up lazily by the
	// endpoint cache on the next resolution.
	ImageEndpointHandler interface {
		AnnounceEndpoint(c *fiber.Ctx) error
	}

	imageEndpointHandler struct {
		endpointRepository image.EndpointRepository
		endpointCache      *image.EndpointCache
		validator          *validator.Validate
	}
)

func NewImageEndpointHandler(endpointRepository image.EndpointRepository, endpointCache *image.EndpointCache, validator *validator.Validate) ImageEndpointHandler {
	return &imageEndpointHandler{
		endpointRepository: endpointRepository,
		endpointCache:      endpointCache,
		validator:          validator,
	}
}

func (h *imageEndpointHandler) AnnounceEndpoint(c *fiber.Ctx) error {
	req := new(domain.AnnounceEndpointRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAnnounceEndpoint, err)
	}

	if err := h.endpointRepository.SaveEndpoint(c.Context(), image.EndpointTypeImageGeneration, req.EndpointURL); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAnnounceEndpoint, nil)
	}

	// Drop the cached address so the next resolution verifies the new one.
	h.endpointCache.Invalidate()

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessAnnounceEndpoint)
}
