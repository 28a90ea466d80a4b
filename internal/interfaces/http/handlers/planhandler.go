package handlers

import (
	"github.com/gin-gonic/gin"

	"bookworm/internal/application/subscription/usecases"
	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// PlanHandler serves subscription plan management.
type PlanHandler struct {
	createPlanUC *usecases.CreatePlanUseCase
	updatePlanUC *usecases.UpdatePlanUseCase
	listPlansUC  *usecases.ListPlansUseCase
	deletePlanUC *usecases.DeletePlanUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC *usecases.CreatePlanUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	listPlansUC *usecases.ListPlansUseCase,
	deletePlanUC *usecases.DeletePlanUseCase,
	logger logger.Interface,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		updatePlanUC: updatePlanUC,
		listPlansUC:  listPlansUC,
		deletePlanUC: deletePlanUC,
		logger:       logger,
	}
}

type CreatePlanRequest struct {
	Name          string  `json:"name" binding:"required"`
	BooksPerMonth float64 `json:"booksPerMonth" binding:"required,gt=0"`
	PricePerMonth float64 `json:"pricePerMonth" binding:"required,gt=0"`
}

type UpdatePlanRequest struct {
	Name          *string  `json:"name"`
	BooksPerMonth *float64 `json:"booksPerMonth"`
	PricePerMonth *float64 `json:"pricePerMonth"`
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid subscription plan payload."))
		return
	}

	plan, err := h.createPlanUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:          req.Name,
		BooksPerMonth: req.BooksPerMonth,
		PricePerMonth: req.PricePerMonth,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, plan, "Subscription plan created")
}

func (h *PlanHandler) Update(c *gin.Context) {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "error", err)
		utils.ErrorResponse(c, 400, bindingErrorMessage(err, "Invalid subscription plan payload."))
		return
	}

	plan, err := h.updatePlanUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		PlanID:        planID,
		Name:          req.Name,
		BooksPerMonth: req.BooksPerMonth,
		PricePerMonth: req.PricePerMonth,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, plan)
}

func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, plans)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	planID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deletePlanUC.Execute(c.Request.Context(), planID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.NoContentResponse(c)
}
