package api

import (
	"errors"
	"net/http"

	"tastebite/internal/domain/basket"
	reqdto "tastebite/internal/handler/dto/request"
	resdto "tastebite/internal/handler/dto/response"
	"tastebite/internal/handler/middleware"
	"tastebite/internal/usecase/commands"
	"tastebite/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BasketHandler struct {
	basketCommands commands.BasketCommands
	basketQueries  queries.BasketQueries
}

func NewBasketHandler(basketCommands commands.BasketCommands, basketQueries queries.BasketQueries) *BasketHandler {
	return &BasketHandler{
		basketCommands: basketCommands,
		basketQueries:  basketQueries,
	}
}

// @Summary Get basket
// @Description List the caller's basket with effective prices and totals
// @Tags basket
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BasketResponse
// @Failure 401 {object} map[string]string
// @Router /basket [get]
func (h *BasketHandler) GetBasket(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.basketQueries.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBasketView(view))
}

// @Summary Add basket item
// @Description Add a menu item to the basket; an existing entry is merged
// @Tags basket
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddBasketItemRequest true "Item to add"
// @Success 201 {object} resdto.AddBasketItemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /basket/items [post]
func (h *BasketHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.AddBasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.basketCommands.AddItem(c.Request.Context(), userID, req.ItemName, req.Quantity)
	if err != nil {
		h.respondBasketError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.AddBasketItemResponse{
		EntryID:  result.EntryID,
		Quantity: result.Quantity,
		Merged:   result.Merged,
	})
}

// @Summary Update basket item
// @Description Replace the quantity of one basket entry
// @Tags basket
// @Accept json
// @Security BearerAuth
// @Param id path string true "Basket entry ID"
// @Param request body reqdto.UpdateBasketItemRequest true "New quantity"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /basket/items/{id} [patch]
func (h *BasketHandler) UpdateItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid basket entry ID format",
		})
		return
	}

	var req reqdto.UpdateBasketItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.basketCommands.UpdateQuantity(c.Request.Context(), userID, entryID, req.Quantity); err != nil {
		h.respondBasketError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Remove basket item
// @Description Remove one entry from the basket
// @Tags basket
// @Security BearerAuth
// @Param id path string true "Basket entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /basket/items/{id} [delete]
func (h *BasketHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid basket entry ID format",
		})
		return
	}

	if err := h.basketCommands.Remove(c.Request.Context(), userID, entryID); err != nil {
		h.respondBasketError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BasketHandler) respondBasketError(c *gin.Context, err error) {
	var capacityErr *basket.CapacityExceededError

	switch {
	case errors.As(err, &capacityErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": capacityErr.Error(),
			"detail": gin.H{
				"kind":    string(capacityErr.Kind),
				"overage": capacityErr.Overage,
			},
		})
	case errors.Is(err, commands.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Quantity must be a positive integer",
		})
	case errors.Is(err, commands.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Menu item not found",
		})
	case errors.Is(err, commands.ErrEntryNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Basket entry not found",
		})
	case errors.Is(err, commands.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Basket was modified concurrently, please retry",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
