package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sproutly/domain/dto"
	"sproutly/domain/services"
	"sproutly/pkg/logger"
	"sproutly/pkg/utils"
)

type PlantHandler struct {
	plantService services.PlantService
}

func NewPlantHandler(plantService services.PlantService) *PlantHandler {
	return &PlantHandler{
		plantService: plantService,
	}
}

func (h *PlantHandler) CreatePlant(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	var req dto.CreatePlantRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	plant, err := h.plantService.CreatePlant(ctx, user.ID, &req)
	if err != nil {
		logger.WarnContext(ctx, "Plant creation failed", "user_id", user.ID, "error", err)
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.CreatedResponse(c, dto.PlantToPlantResponse(plant))
}

func (h *PlantHandler) GetPlant(c *fiber.Ctx) error {
	ctx := c.UserContext()

	plantID, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid plant ID")
	}

	plant, err := h.plantService.GetPlant(ctx, plantID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load plant", "plant_id", plantID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	if plant == nil {
		return utils.NotFoundResponse(c, "Plant not found")
	}

	return utils.SuccessResponse(c, dto.PlantToPlantResponse(plant))
}

func (h *PlantHandler) GetUserPlants(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	plants, err := h.plantService.GetUserPlants(ctx, user.ID)
	if err != nil {
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.PlantsToPlantResponses(plants))
}

func (h *PlantHandler) GetCurrentPlant(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	plant, err := h.plantService.GetCurrentPlant(ctx, user.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load current plant", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	if plant == nil {
		return utils.NotFoundResponse(c, "No plant in progress")
	}

	return utils.SuccessResponse(c, dto.PlantToPlantResponse(plant))
}

func (h *PlantHandler) UpdatePlant(c *fiber.Ctx) error {
	ctx := c.UserContext()

	plantID, err := parseIDParam(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid plant ID")
	}

	var req dto.UpdatePlantRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	plant, err := h.plantService.UpdatePlant(ctx, plantID, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Plant update failed", "plant_id", plantID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	if plant == nil {
		return utils.NotFoundResponse(c, "Plant not found")
	}

	return utils.SuccessResponse(c, dto.PlantToPlantResponse(plant))
}
