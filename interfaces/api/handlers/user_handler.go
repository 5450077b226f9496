package handlers

import (
	"github.com/gofiber/fiber/v2"

	"sproutly/domain/dto"
	"sproutly/domain/services"
	"sproutly/pkg/logger"
	"sproutly/pkg/utils"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		logger.WarnContext(ctx, "Registration failed", "username", req.Username, "error", err)
		return utils.ConflictResponse(c, err.Error())
	}

	token, err := h.userService.GenerateJWT(user)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to generate token", "user_id", user.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.UserToUserResponse(user),
	})
}

func (h *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	token, user, err := h.userService.Login(ctx, &req)
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, dto.AuthResponse{
		Token: token,
		User:  dto.UserToUserResponse(user),
	})
}

func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	userCtx, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userService.GetProfile(ctx, userCtx.ID)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load profile", "user_id", userCtx.ID, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	if user == nil {
		return utils.NotFoundResponse(c, "User not found")
	}

	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
