package handler

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/account-system/internal/api/metrics"
	"github.com/userhub/account-system/internal/core/domain"
	"github.com/userhub/account-system/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create registers a new user account.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      createUserRequest  true  "User registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Create(c.Request().Context(), toCreateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Generate produces a downloadable JSON file of synthetic users.
//
// @Summary      Generate random users as a JSON download
// @Tags         users
// @Produce      json
// @Param        count  query     int  true  "Number of users to generate (1-1000)"
// @Success      200    {array}   ports.GeneratedUser
// @Failure      400    {object}  errorResponse
// @Router       /users/generate [get]
func (h *UserHandler) Generate(c echo.Context) error {
	count, err := strconv.Atoi(c.QueryParam("count"))
	if err != nil {
		return domain.NewValidationError("count must be an integer")
	}

	users, err := h.userService.Generate(c.Request().Context(), count)
	if err != nil {
		return err
	}

	metrics.UsersGeneratedTotal.Add(float64(count))

	filename := fmt.Sprintf("users-%d-%d.json", count, time.Now().UnixMilli())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))

	return c.JSON(http.StatusOK, users)
}

// Import ingests a JSON array of users with per-record failure isolation.
// The request succeeds with 201 as soon as per-record processing starts;
// individual failures are reported inside the result body.
//
// @Summary      Import users from a JSON payload
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      201  {object}  importResultResponse
// @Failure      400  {object}  errorResponse
// @Router       /users/batch [post]
func (h *UserHandler) Import(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable payload")
	}

	start := time.Now()
	result, err := h.userService.Import(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	metrics.ImportBatchesTotal.Inc()
	metrics.ImportBatchDuration.Observe(time.Since(start).Seconds())
	metrics.UsersImportedTotal.WithLabelValues("success").Add(float64(result.Success))
	metrics.UsersImportedTotal.WithLabelValues("failed").Add(float64(result.Failed))

	return c.JSON(http.StatusCreated, toImportResponse(result))
}

// Me returns the authenticated caller's own profile.
//
// @Summary      Get my profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	user, err := h.userService.MyProfile(c.Request().Context(), ctxIdentity(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetByUsername returns one user's profile, subject to access control:
// admins may view anyone, other callers only themselves.
//
// @Summary      Get a user profile by username
// @Tags         users
// @Produce      json
// @Param        username  path      string  true  "Target username"
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{username} [get]
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.userService.Profile(c.Request().Context(), c.Param("username"), ctxIdentity(c))
	if err != nil {
		if err == domain.ErrForbidden {
			metrics.ProfileAccessDeniedTotal.Inc()
		}
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// List returns all users, passwords excluded. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserListResponse(users))
}

// GetByID returns one user by repository id. Admin only.
//
// @Summary      Get a user by id
// @Tags         users
// @Produce      json
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/id/{id} [get]
func (h *UserHandler) GetByID(c echo.Context) error {
	user, err := h.userService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}
