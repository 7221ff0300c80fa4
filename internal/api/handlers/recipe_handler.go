package handlers

import (
	"errors"

	"DishCraft-Backend/domain"
	"DishCraft-Backend/internal/api/presenters"
	"DishCraft-Backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GenerateRecipe(c *fiber.Ctx) error
		GenerateFromName(c *fiber.Ctx) error
		GetRecipeHistory(c *fiber.Ctx) error
		GetRecipeByID(c *fiber.Ctx) error
		ShareRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GenerateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateRecipe, domain.ErrNoIngredients)
	}

	res, err := h.recipeService.GenerateRecipe(c.Context(), *req, userID)
	if err != nil {
		return generationErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateRecipe)
}

func (h *recipeHandler) GenerateFromName(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateFromNameRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateRecipe, domain.ErrRecipeNameRequired)
	}

	res, err := h.recipeService.GenerateFromName(c.Context(), *req, userID)
	if err != nil {
		return generationErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerateRecipe)
}

func (h *recipeHandler) GetRecipeHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.recipeService.GetRecipeHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetHistory, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *recipeHandler) GetRecipeByID(c *fiber.Ctx) error {
	recipeID := c.Params("id")

	res, err := h.recipeService.GetRecipeByID(c.Context(), recipeID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipe, domain.ErrRecipeNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetRecipe, nil)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipe)
}

func (h *recipeHandler) ShareRecipe(c *fiber.Ctx) error {
	recipeID := c.Params("id")
	req := new(domain.ShareRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareRecipe, err)
	}

	if err := h.recipeService.ShareRecipe(c.Context(), recipeID, *req); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedShareRecipe, domain.ErrRecipeNotFound)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedShareRecipe, nil)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessShareRecipe)
}

// generationErrorResponse maps orchestrator failures: request problems are
// 400, anything upstream is a generic 500. Raw model payloads never reach the
// caller; they are logged server-side by the generation client.
func generationErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoIngredients),
		errors.Is(err, domain.ErrRecipeNameRequired),
		errors.Is(err, domain.ErrParseUUID):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerateRecipe, err)
	case errors.Is(err, domain.ErrUpstreamFormat), errors.Is(err, domain.ErrUpstreamSchema):
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateRecipe, err)
	default:
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGenerateRecipe, nil)
	}
}
