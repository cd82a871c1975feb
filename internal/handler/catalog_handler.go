package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gymcrm/internal/service"
)

// CatalogHandler handles the fitness goal, exercise and diet type catalogs.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CatalogEntryRequest represents a new catalog entry.
type CatalogEntryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	MuscleGroup string `json:"muscle_group"` // exercises only
}

// ListGoals godoc
// @Summary List fitness goals
// @Tags catalogs
// @Produce json
// @Security SessionCookie
// @Success 200 {array} model.FitnessGoal
// @Router /catalogs/goals [get]
func (h *CatalogHandler) ListGoals(c echo.Context) error {
	goals, err := h.catalogService.ListGoals(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, goals)
}

// CreateGoal godoc
// @Summary Add a fitness goal
// @Tags catalogs
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CatalogEntryRequest true "Goal data"
// @Success 201 {object} model.FitnessGoal
// @Failure 409 {object} errors.ErrorResponse
// @Router /catalogs/goals [post]
func (h *CatalogHandler) CreateGoal(c echo.Context) error {
	var req CatalogEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	goal, err := h.catalogService.CreateGoal(c.Request().Context(), session(c), req.Name, req.Description)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, goal)
}

// DeleteGoal godoc
// @Summary Delete a fitness goal
// @Tags catalogs
// @Produce json
// @Security SessionCookie
// @Param id path string true "Goal ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /catalogs/goals/{id} [delete]
func (h *CatalogHandler) DeleteGoal(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteGoal(c.Request().Context(), session(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "goal deleted"})
}

// ListExercises godoc
// @Summary List exercises
// @Tags catalogs
// @Produce json
// @Security SessionCookie
// @Success 200 {array} model.Exercise
// @Router /catalogs/exercises [get]
func (h *CatalogHandler) ListExercises(c echo.Context) error {
	exercises, err := h.catalogService.ListExercises(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, exercises)
}

// CreateExercise godoc
// @Summary Add an exercise
// @Tags catalogs
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CatalogEntryRequest true "Exercise data"
// @Success 201 {object} model.Exercise
// @Failure 409 {object} errors.ErrorResponse
// @Router /catalogs/exercises [post]
func (h *CatalogHandler) CreateExercise(c echo.Context) error {
	var req CatalogEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	exercise, err := h.catalogService.CreateExercise(c.Request().Context(), session(c), req.Name, req.MuscleGroup, req.Description)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, exercise)
}

// DeleteExercise godoc
// @Summary Delete an exercise
// @Tags catalogs
// @Produce json
// @Security SessionCookie
// @Param id path string true "Exercise ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /catalogs/exercises/{id} [delete]
func (h *CatalogHandler) DeleteExercise(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteExercise(c.Request().Context(), session(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "exercise deleted"})
}

// ListDietTypes godoc
// @Summary List diet types
// @Tags catalogs
// @Produce json
// @Security SessionCookie
// @Success 200 {array} model.DietType
// @Router /catalogs/diet-types [get]
func (h *CatalogHandler) ListDietTypes(c echo.Context) error {
	dietTypes, err := h.catalogService.ListDietTypes(c.Request().Context())
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, dietTypes)
}

// CreateDietType godoc
// @Summary Add a diet type
// @Tags catalogs
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body CatalogEntryRequest true "Diet type data"
// @Success 201 {object} model.DietType
// @Failure 409 {object} errors.ErrorResponse
// @Router /catalogs/diet-types [post]
func (h *CatalogHandler) CreateDietType(c echo.Context) error {
	var req CatalogEntryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	dietType, err := h.catalogService.CreateDietType(c.Request().Context(), session(c), req.Name, req.Description)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, dietType)
}

// DeleteDietType godoc
// @Summary Delete a diet type
// @Tags catalogs
// @Produce json
// @Security SessionCookie
// @Param id path string true "Diet type ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /catalogs/diet-types/{id} [delete]
func (h *CatalogHandler) DeleteDietType(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteDietType(c.Request().Context(), session(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "diet type deleted"})
}
