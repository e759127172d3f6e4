package api

import (
	"errors"
	"net/http"

	reqdto "tastebite/internal/handler/dto/request"
	resdto "tastebite/internal/handler/dto/response"
	"tastebite/internal/usecase/commands"
	"tastebite/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
	catalogQueries  queries.CatalogQueries
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands, catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogCommands: catalogCommands,
		catalogQueries:  catalogQueries,
	}
}

// @Summary List menu
// @Description List active menu items with effective prices
// @Tags menu
// @Produce json
// @Success 200 {array} resdto.MenuItemResponse
// @Router /menu [get]
func (h *CatalogHandler) ListItems(c *gin.Context) {
	items, err := h.catalogQueries.ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuItemViews(items))
}

// @Summary Get menu item
// @Description Get an active menu item by its name
// @Tags menu
// @Produce json
// @Param name path string true "Menu item name"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 404 {object} map[string]string
// @Router /menu/{name} [get]
func (h *CatalogHandler) GetItemByName(c *gin.Context) {
	name := c.Param("name")

	item, err := h.catalogQueries.GetItemByName(c.Request.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Menu item not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuItemView(item))
}

// @Summary Create menu item
// @Description Add a menu item to the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/menu [post]
func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var req reqdto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateItem(c.Request.Context(), commands.CreateItemInput{
		Name:        req.Name,
		Weight:      req.Weight,
		Ingredients: req.Ingredients,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImagePath:   req.ImagePath,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidItemInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid menu item data",
			})
		case errors.Is(err, commands.ErrDuplicateItem):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Menu item with this name already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Archive menu item
// @Description Retire a menu item from the catalog
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /admin/menu/{id} [delete]
func (h *CatalogHandler) ArchiveItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid menu item ID format",
		})
		return
	}

	if err := h.catalogCommands.ArchiveItem(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Menu item not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create special offer
// @Description Attach a time-bounded percentage discount to a menu item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/offers [post]
func (h *CatalogHandler) CreateOffer(c *gin.Context) {
	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.catalogCommands.CreateOffer(c.Request.Context(), commands.CreateOfferInput{
		MenuItemID: req.MenuItemID,
		PercentOff: req.PercentOff,
		ExpiresAt:  req.ExpiresAt,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Menu item not found",
			})
		case errors.Is(err, commands.ErrInvalidOfferInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid offer data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}
