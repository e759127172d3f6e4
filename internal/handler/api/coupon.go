package api

import (
	"errors"
	"net/http"

	resdto "tastebite/internal/handler/dto/response"
	"tastebite/internal/handler/middleware"
	"tastebite/internal/pkg/ptr"
	"tastebite/internal/usecase/commands"
	"tastebite/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	checkoutCommands commands.CheckoutCommands
	couponQueries    queries.CouponQueries
}

func NewCouponHandler(checkoutCommands commands.CheckoutCommands, couponQueries queries.CouponQueries) *CouponHandler {
	return &CouponHandler{
		checkoutCommands: checkoutCommands,
		couponQueries:    couponQueries,
	}
}

// @Summary Checkout
// @Description Convert the basket into a coupon
// @Tags checkout
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.CouponResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /checkout [post]
func (h *CouponHandler) Checkout(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	coupon, err := h.checkoutCommands.Checkout(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyBasket):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Basket is empty",
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
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCouponView(coupon))
}

// @Summary List coupons
// @Description List the caller's coupons, newest first
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CouponResponse
// @Failure 401 {object} map[string]string
// @Router /coupons [get]
func (h *CouponHandler) ListCoupons(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	coupons, err := h.couponQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponViews(coupons))
}

// @Summary Get coupon
// @Description Get one of the caller's coupons; regenerates a missing QR code
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [get]
func (h *CouponHandler) GetCoupon(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon ID format",
		})
		return
	}

	coupon, err := h.couponQueries.GetByID(c.Request.Context(), userID, couponID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// A failed attachment at checkout is healed lazily here.
	if coupon.QRCodePath == nil {
		if path, err := h.checkoutCommands.EnsureArtifact(c.Request.Context(), userID, couponID); err == nil {
			coupon.QRCodePath = ptr.To(path)
		}
	}

	c.JSON(http.StatusOK, resdto.FromCouponView(coupon))
}
