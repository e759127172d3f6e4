//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"tastebite/internal/handler/api"
	resdto "tastebite/internal/handler/dto/response"
	"tastebite/internal/usecase/commands"
	"tastebite/internal/usecase/queries"
	"tastebite/tests/common/httptest"
	commandsmock "tastebite/tests/mock/commands"
	queriesmock "tastebite/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	handler := api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/menu", handler.ListItems)
	s.router.GET("/menu/:name", handler.GetItemByName)
	s.router.POST("/admin/menu", handler.CreateItem)
	s.router.DELETE("/admin/menu/:id", handler.ArchiveItem)
	s.router.POST("/admin/offers", handler.CreateOffer)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListItems() {
	s.Run("success: returns 200 OK with quoted prices", func() {
		offerID := uuid.New()
		items := []*queries.MenuItemView{
			{
				ID:                  uuid.New(),
				Name:                "Margherita",
				PriceCents:          10000,
				EffectivePriceCents: 8000,
				AppliedOfferID:      &offerID,
			},
			{
				ID:                  uuid.New(),
				Name:                "Caesar",
				PriceCents:          5000,
				EffectivePriceCents: 5000,
			},
		}
		s.mockQueries.EXPECT().ListItems(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu", nil, "")

		var response []*resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(int64(8000), response[0].EffectivePriceCents)
		s.Require().NotNil(response[0].AppliedOfferID)
		s.Equal(offerID, *response[0].AppliedOfferID)
		s.Nil(response[1].AppliedOfferID)
	})
}

func (s *CatalogHandlerTestSuite) TestGetItemByName() {
	s.Run("success: returns 200 OK", func() {
		view := &queries.MenuItemView{ID: uuid.New(), Name: "Margherita", PriceCents: 10000, EffectivePriceCents: 10000}
		s.mockQueries.EXPECT().GetItemByName(gomock.Any(), "Margherita").Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu/Margherita", nil, "")

		var response resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Margherita", response.Name)
	})

	s.Run("error: 404 Not Found for unknown item", func() {
		s.mockQueries.EXPECT().GetItemByName(gomock.Any(), "Hawaiian").
			Return(nil, queries.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menu/Hawaiian", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Menu item not found")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateItem() {
	url := "/admin/menu"
	reqBody := map[string]any{
		"name":        "Margherita",
		"weight":      "450g",
		"ingredients": "dough, tomato, mozzarella",
		"price_cents": 10000,
	}

	s.Run("success: returns 201 Created", func() {
		itemID := uuid.New()
		s.mockCommands.EXPECT().CreateItem(gomock.Any(), commands.CreateItemInput{
			Name:        "Margherita",
			Weight:      "450g",
			Ingredients: "dough, tomato, mozzarella",
			PriceCents:  10000,
		}).Return(itemID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(itemID, response.ID)
	})

	s.Run("error: 400 Bad Request when price is missing", func() {
		body := map[string]any{"name": "Margherita"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 Conflict for duplicate name", func() {
		s.mockCommands.EXPECT().CreateItem(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrDuplicateItem).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})
}

func (s *CatalogHandlerTestSuite) TestArchiveItem() {
	itemID := uuid.New()
	url := "/admin/menu/" + itemID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().ArchiveItem(gomock.Any(), itemID).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/menu/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid menu item ID")
	})

	s.Run("error: 404 Not Found for unknown item", func() {
		s.mockCommands.EXPECT().ArchiveItem(gomock.Any(), itemID).
			Return(commands.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Menu item not found")
	})
}

func (s *CatalogHandlerTestSuite) TestCreateOffer() {
	url := "/admin/offers"
	itemID := uuid.New()
	expiresAt := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	reqBody := map[string]any{
		"menu_item_id": itemID.String(),
		"percent_off":  20,
		"expires_at":   expiresAt.Format(time.RFC3339),
	}

	s.Run("success: returns 201 Created", func() {
		offerID := uuid.New()
		s.mockCommands.EXPECT().CreateOffer(gomock.Any(), commands.CreateOfferInput{
			MenuItemID: itemID,
			PercentOff: 20,
			ExpiresAt:  expiresAt,
		}).Return(offerID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(offerID, response.ID)
	})

	s.Run("error: 400 Bad Request for discount above 100", func() {
		body := map[string]any{
			"menu_item_id": itemID.String(),
			"percent_off":  120,
			"expires_at":   expiresAt.Format(time.RFC3339),
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 Not Found for unknown item", func() {
		s.mockCommands.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Menu item not found")
	})
}
