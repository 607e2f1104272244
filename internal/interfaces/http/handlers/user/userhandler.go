package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"guildesk/internal/application/user/usecases"
	"guildesk/internal/shared/authorization"
	"guildesk/internal/shared/constants"
	"guildesk/internal/shared/logger"
	"guildesk/internal/shared/utils"
)

type UpdateProfileRequest struct {
	Email        *string `json:"email" binding:"omitempty,email"`
	PseudoInGame *string `json:"pseudo_in_game" binding:"omitempty,max=100"`
	Role         *string `json:"role"`
	Core         *bool   `json:"core"`
	Regear       *bool   `json:"regear"`
}

type UserHandler struct {
	getProfileUC      usecases.GetProfileExecutor
	listUsersUC       usecases.ListUsersExecutor
	updateProfileUC   usecases.UpdateProfileExecutor
	promoteReviewerUC usecases.PromoteReviewerExecutor
	logger            logger.Interface
}

func NewUserHandler(
	getProfileUC usecases.GetProfileExecutor,
	listUsersUC usecases.ListUsersExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	promoteReviewerUC usecases.PromoteReviewerExecutor,
) *UserHandler {
	return &UserHandler{
		getProfileUC:      getProfileUC,
		listUsersUC:       listUsersUC,
		updateProfileUC:   updateProfileUC,
		promoteReviewerUC: promoteReviewerUC,
		logger:            logger.NewLogger(),
	}
}

func callerFromContext(c *gin.Context) (uint, authorization.Role) {
	return c.GetUint(constants.ContextKeyUserID),
		authorization.ParseRole(c.GetString(constants.ContextKeyUserRole))
}

// GetMe handles GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	callerID, _ := callerFromContext(c)

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: callerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetProfile handles GET /users/:id
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = constants.DefaultPage
	}

	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	query := usecases.ListUsersQuery{
		Role:     c.Query("role"),
		Page:     page,
		PageSize: pageSize,
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, page, pageSize)
}

// UpdateProfile handles PATCH /users/:id
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	callerID, callerRole := callerFromContext(c)
	cmd := usecases.UpdateProfileCommand{
		CallerID:     callerID,
		CallerRole:   callerRole,
		TargetID:     userID,
		Email:        req.Email,
		PseudoInGame: req.PseudoInGame,
		Role:         req.Role,
		Core:         req.Core,
		Regear:       req.Regear,
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

// PromoteReviewer handles POST /users/:id/promote
func (h *UserHandler) PromoteReviewer(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	callerID, callerRole := callerFromContext(c)
	cmd := usecases.PromoteReviewerCommand{
		CallerID:   callerID,
		CallerRole: callerRole,
		TargetID:   userID,
	}

	result, err := h.promoteReviewerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User promoted to Reviewer", result)
}
