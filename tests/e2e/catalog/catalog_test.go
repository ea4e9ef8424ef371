//go:build e2e

package catalog_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"petstore-backend/internal/domain/promotion"
	"petstore-backend/internal/handler/dto/request"
	"petstore-backend/tests/common/authtest"
	"petstore-backend/tests/common/dbtest"
	"petstore-backend/tests/common/httptest"
	"petstore-backend/tests/e2e"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	categoriesURL = "/api/categories"
	productsURL   = "/api/products"
)

type catalogSuite struct {
	e2e.SharedSuite
	token string
}

func TestCatalogSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(catalogSuite))
}

func (s *catalogSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@petstore.com")
}

func (s *catalogSuite) TestCategoryLifecycle() {
	s.Run("create, read, update and delete", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, categoriesURL,
			request.CategoryRequest{CategoryName: "Dog Food", Description: "Food and treats for dogs"}, s.token)

		var created map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		require.Equal(s.T(), "Dog Food", created["categoryName"])
		id := int64(created["categoryId"].(float64))
		itemURL := fmt.Sprintf("%s/%d", categoriesURL, id)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPut, itemURL,
			request.CategoryRequest{CategoryName: "Dog Treats"}, s.token)
		var updated map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		require.Equal(s.T(), "Dog Treats", updated["categoryName"])

		// reads after a write must not serve the stale name
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemURL, nil, "")
		var got map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
		require.Equal(s.T(), "Dog Treats", got["categoryName"])

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, itemURL, nil, s.token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, itemURL, nil, "")
		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})

	s.Run("write without token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, categoriesURL,
			request.CategoryRequest{CategoryName: "Dog Food"}, "")

		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})

	s.Run("delete referenced category conflicts", func() {
		categoryID := dbtest.CreateTestCategory(s.T(), s.DB, "Dog Food", "")
		dbtest.CreateTestPromotion(s.T(), s.DB, dbtest.PromotionFixture{
			Name:       "Spring Sale",
			StartDate:  time.Now().UTC(),
			EndDate:    time.Now().UTC(),
			StatusName: promotion.StatusActive,
			CategoryID: &categoryID,
		})

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%d", categoriesURL, categoryID), nil, s.token)

		require.Equal(s.T(), http.StatusConflict, w.Code)
	})

	s.Run("delete missing category", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, categoriesURL+"/9999", nil, s.token)

		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}

func (s *catalogSuite) TestProductQueries() {
	seed := func() int64 {
		categoryID := dbtest.CreateTestCategory(s.T(), s.DB, "Dog Food", "")
		dbtest.CreateTestProduct(s.T(), s.DB, "Premium Kibble", "49.99", &categoryID, nil)
		dbtest.CreateTestProduct(s.T(), s.DB, "Puppy Kibble", "19.50", &categoryID, nil)
		dbtest.CreateTestProduct(s.T(), s.DB, "Chew Rope", "5.00", nil, nil)
		return categoryID
	}

	tests := []struct {
		name     string
		path     func(categoryID int64) string
		expected []string
	}{
		{
			name:     "list all",
			path:     func(int64) string { return productsURL },
			expected: []string{"Premium Kibble", "Puppy Kibble", "Chew Rope"},
		},
		{
			name:     "search is case-insensitive substring",
			path:     func(int64) string { return productsURL + "/search?name=kibble" },
			expected: []string{"Premium Kibble", "Puppy Kibble"},
		},
		{
			name:     "blank search lists everything",
			path:     func(int64) string { return productsURL + "/search?name=%20%20" },
			expected: []string{"Premium Kibble", "Puppy Kibble", "Chew Rope"},
		},
		{
			name:     "price range is inclusive",
			path:     func(int64) string { return productsURL + "/price-range?minPrice=5&maxPrice=19.50" },
			expected: []string{"Puppy Kibble", "Chew Rope"},
		},
		{
			name:     "by category",
			path:     func(id int64) string { return fmt.Sprintf("%s/category/%d", productsURL, id) },
			expected: []string{"Premium Kibble", "Puppy Kibble"},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			categoryID := seed()

			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, tt.path(categoryID), nil, "")

			var body []map[string]any
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
			got := make([]string, 0, len(body))
			for _, p := range body {
				got = append(got, p["productName"].(string))
			}
			require.ElementsMatch(s.T(), tt.expected, got)
		})
	}
}

func (s *catalogSuite) TestProductLifecycle() {
	s.Run("create links category and promotion", func() {
		categoryID := dbtest.CreateTestCategory(s.T(), s.DB, "Dog Food", "")
		promotionID := dbtest.CreateTestPromotion(s.T(), s.DB, dbtest.PromotionFixture{
			Name:       "Spring Sale",
			StartDate:  time.Now().UTC(),
			EndDate:    time.Now().UTC(),
			StatusName: promotion.StatusActive,
			CategoryID: &categoryID,
		})

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, productsURL, request.ProductRequest{
			ProductName: "Premium Kibble",
			BasePrice:   decimal.RequireFromString("49.99"),
			SKU:         100045,
			CategoryID:  &categoryID,
			PromotionID: &promotionID,
		}, s.token)

		var created map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		require.Equal(s.T(), 49.99, created["basePrice"])
		require.Equal(s.T(), float64(promotionID), created["promotionId"])
		require.Equal(s.T(), promotion.StatusActive, created["status"])
		require.Equal(s.T(), float64(categoryID), created["category"].(map[string]any)["categoryId"])

		id := int64(created["productId"].(float64))
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, fmt.Sprintf("%s/%d", productsURL, id), nil, s.token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)
	})

	s.Run("update missing product", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, productsURL+"/9999",
			request.ProductRequest{ProductName: "Ghost", BasePrice: decimal.NewFromInt(1)}, s.token)

		require.Equal(s.T(), http.StatusNotFound, w.Code)
	})
}
