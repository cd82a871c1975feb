package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"gymcrm/internal/model"
	"gymcrm/internal/service"
)

// WorkoutHandler handles workout plan endpoints.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new workout handler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// WorkoutRequest represents a workout plan create or update.
type WorkoutRequest struct {
	MemberID    string              `json:"member_id" validate:"required,uuid"`
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description"`
	Exercises   []model.ExerciseSet `json:"exercises"`
	Difficulty  string              `json:"difficulty" validate:"omitempty,oneof=BEGINNER INTERMEDIATE ADVANCED"`
	GoalID      string              `json:"goal_id" validate:"omitempty,uuid"`
	StartDate   *time.Time          `json:"start_date"`
	EndDate     *time.Time          `json:"end_date"`
}

func (r *WorkoutRequest) toInput() (service.WorkoutInput, error) {
	input := service.WorkoutInput{
		Name:        r.Name,
		Description: r.Description,
		Exercises:   r.Exercises,
		Difficulty:  r.Difficulty,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}
	var err error
	if input.MemberID, err = parseUUID(r.MemberID, "member_id"); err != nil {
		return input, err
	}
	if r.GoalID != "" {
		id, err := parseUUID(r.GoalID, "goal_id")
		if err != nil {
			return input, err
		}
		input.GoalID = &id
	}
	return input, nil
}

// Create godoc
// @Summary Create a workout plan
// @Tags workouts
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body WorkoutRequest true "Plan data"
// @Success 201 {object} model.WorkoutPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /workouts [post]
func (h *WorkoutHandler) Create(c echo.Context) error {
	var req WorkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	plan, err := h.workoutService.Create(c.Request().Context(), session(c), input)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// Update godoc
// @Summary Update a workout plan
// @Tags workouts
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Plan ID"
// @Param request body WorkoutRequest true "Plan data"
// @Success 200 {object} model.WorkoutPlan
// @Failure 404 {object} errors.ErrorResponse
// @Router /workouts/{id} [put]
func (h *WorkoutHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req WorkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	plan, err := h.workoutService.Update(c.Request().Context(), session(c), id, input)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plan)
}

// Delete godoc
// @Summary Delete a workout plan
// @Tags workouts
// @Produce json
// @Security SessionCookie
// @Param id path string true "Plan ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /workouts/{id} [delete]
func (h *WorkoutHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.workoutService.Delete(c.Request().Context(), session(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "workout plan deleted"})
}

// Get godoc
// @Summary Get a workout plan
// @Tags workouts
// @Produce json
// @Security SessionCookie
// @Param id path string true "Plan ID"
// @Success 200 {object} model.WorkoutPlan
// @Failure 404 {object} errors.ErrorResponse
// @Router /workouts/{id} [get]
func (h *WorkoutHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	plan, err := h.workoutService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plan)
}

// List godoc
// @Summary List workout plans
// @Tags workouts
// @Produce json
// @Security SessionCookie
// @Param member_id query string false "Filter by member"
// @Success 200 {array} model.WorkoutPlan
// @Router /workouts [get]
func (h *WorkoutHandler) List(c echo.Context) error {
	var memberID *uuid.UUID
	if raw := c.QueryParam("member_id"); raw != "" {
		id, err := parseUUID(raw, "member_id")
		if err != nil {
			return err
		}
		memberID = &id
	}

	plans, err := h.workoutService.List(c.Request().Context(), memberID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plans)
}

// DietHandler handles diet plan endpoints.
type DietHandler struct {
	dietService service.DietService
}

// NewDietHandler creates a new diet handler.
func NewDietHandler(dietService service.DietService) *DietHandler {
	return &DietHandler{dietService: dietService}
}

// DietRequest represents a diet plan create or update.
type DietRequest struct {
	MemberID       string       `json:"member_id" validate:"required,uuid"`
	Name           string       `json:"name" validate:"required"`
	DietTypeID     string       `json:"diet_type_id" validate:"omitempty,uuid"`
	Meals          []model.Meal `json:"meals"`
	TargetCalories int          `json:"target_calories"`
	Notes          string       `json:"notes"`
}

func (r *DietRequest) toInput() (service.DietInput, error) {
	input := service.DietInput{
		Name:           r.Name,
		Meals:          r.Meals,
		TargetCalories: r.TargetCalories,
		Notes:          r.Notes,
	}
	var err error
	if input.MemberID, err = parseUUID(r.MemberID, "member_id"); err != nil {
		return input, err
	}
	if r.DietTypeID != "" {
		id, err := parseUUID(r.DietTypeID, "diet_type_id")
		if err != nil {
			return input, err
		}
		input.DietTypeID = &id
	}
	return input, nil
}

// Create godoc
// @Summary Create a diet plan
// @Tags diets
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body DietRequest true "Plan data"
// @Success 201 {object} model.DietPlan
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /diets [post]
func (h *DietHandler) Create(c echo.Context) error {
	var req DietRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	plan, err := h.dietService.Create(c.Request().Context(), session(c), input)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, plan)
}

// Update godoc
// @Summary Update a diet plan
// @Tags diets
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param id path string true "Plan ID"
// @Param request body DietRequest true "Plan data"
// @Success 200 {object} model.DietPlan
// @Failure 404 {object} errors.ErrorResponse
// @Router /diets/{id} [put]
func (h *DietHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req DietRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	input, err := req.toInput()
	if err != nil {
		return err
	}

	plan, err := h.dietService.Update(c.Request().Context(), session(c), id, input)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plan)
}

// Delete godoc
// @Summary Delete a diet plan
// @Tags diets
// @Produce json
// @Security SessionCookie
// @Param id path string true "Plan ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /diets/{id} [delete]
func (h *DietHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.dietService.Delete(c.Request().Context(), session(c), id); err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "diet plan deleted"})
}

// Get godoc
// @Summary Get a diet plan
// @Tags diets
// @Produce json
// @Security SessionCookie
// @Param id path string true "Plan ID"
// @Success 200 {object} model.DietPlan
// @Failure 404 {object} errors.ErrorResponse
// @Router /diets/{id} [get]
func (h *DietHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	plan, err := h.dietService.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plan)
}

// List godoc
// @Summary List diet plans
// @Tags diets
// @Produce json
// @Security SessionCookie
// @Param member_id query string false "Filter by member"
// @Success 200 {array} model.DietPlan
// @Router /diets [get]
func (h *DietHandler) List(c echo.Context) error {
	var memberID *uuid.UUID
	if raw := c.QueryParam("member_id"); raw != "" {
		id, err := parseUUID(raw, "member_id")
		if err != nil {
			return err
		}
		memberID = &id
	}

	plans, err := h.dietService.List(c.Request().Context(), memberID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, plans)
}
