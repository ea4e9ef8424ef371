//go:build e2e

package promotions_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"petstore-backend/internal/domain/promotion"
	"petstore-backend/internal/domain/user"
	"petstore-backend/tests/common/dbtest"
	"petstore-backend/tests/common/httptest"
	"petstore-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const promotionsURL = "/api/promotions"

type promotionSuite struct {
	e2e.SharedSuite
	categoryID int64
	userID     int64
	today      time.Time
}

func TestPromotionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(promotionSuite))
}

func (s *promotionSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.categoryID = dbtest.CreateTestCategory(s.T(), s.DB, "Dog Food", "Food and treats for dogs")
	s.userID = dbtest.CreateTestUser(s.T(), s.DB, "Marketing Admin", "admin@petstore.com", user.RoleMarketingAdmin)

	now := time.Now().UTC()
	s.today = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *promotionSuite) create(name, status string, start, end time.Time) int64 {
	return dbtest.CreateTestPromotion(s.T(), s.DB, dbtest.PromotionFixture{
		Name:          name,
		StartDate:     start,
		EndDate:       end,
		DiscountValue: 10,
		StatusName:    status,
		UserID:        &s.userID,
		CategoryID:    &s.categoryID,
	})
}

// seed creates one promotion per status/date combination the listings disagree on.
func (s *promotionSuite) seed() {
	day := 24 * time.Hour
	s.create("running", promotion.StatusActive, s.today.Add(-day), s.today.Add(day))
	s.create("flagged but over", promotion.StatusActive, s.today.Add(-10*day), s.today.Add(-5*day))
	s.create("flagged expired but running", promotion.StatusExpired, s.today.Add(-day), s.today.Add(day))
	s.create("upcoming", promotion.StatusScheduled, s.today.Add(5*day), s.today.Add(10*day))
	s.create("pending", promotion.StatusPending, s.today.Add(5*day), s.today.Add(10*day))
	s.create("single day", promotion.StatusActive, s.today, s.today)
}

func names(body []map[string]any) []string {
	out := make([]string, 0, len(body))
	for _, p := range body {
		out = append(out, p["promotionName"].(string))
	}
	return out
}

func (s *promotionSuite) TestListings() {
	tests := []struct {
		name     string
		path     string
		expected []string
	}{
		{
			name:     "active requires status and date range",
			path:     promotionsURL,
			expected: []string{"running", "single day"},
		},
		{
			name:     "valid ignores status",
			path:     promotionsURL + "/valid",
			expected: []string{"running", "flagged expired but running", "single day"},
		},
		{
			name: "all",
			path: promotionsURL + "/all",
			expected: []string{
				"running", "flagged but over", "flagged expired but running",
				"upcoming", "pending", "single day",
			},
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.seed()

			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, tt.path, nil, "")

			var body []map[string]any
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
			require.ElementsMatch(s.T(), tt.expected, names(body))
		})
	}
}

func (s *promotionSuite) TestProjection() {
	s.Run("dates widen to the bounds of their day", func() {
		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
		s.create("Spring Sale", promotion.StatusExpired, start, end)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, promotionsURL+"/all", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		require.Len(s.T(), body, 1)
		require.Equal(s.T(), "2024-03-01T00:00:00", body[0]["startDate"])
		require.Equal(s.T(), "2024-03-31T23:59:59", body[0]["endDate"])
		require.Equal(s.T(), float64(10), body[0]["discountPercentage"])
		require.Equal(s.T(), promotion.StatusExpired, body[0]["status"])
		require.Nil(s.T(), body[0]["product"])
		category := body[0]["category"].(map[string]any)
		require.Equal(s.T(), float64(s.categoryID), category["categoryId"])
	})
}

func (s *promotionSuite) TestListByCategory() {
	s.Run("filters by category", func() {
		s.seed()
		otherID := dbtest.CreateTestCategory(s.T(), s.DB, "Cat Toys", "")
		dbtest.CreateTestPromotion(s.T(), s.DB, dbtest.PromotionFixture{
			Name:       "cat only",
			StartDate:  s.today,
			EndDate:    s.today,
			StatusName: promotion.StatusActive,
			CategoryID: &otherID,
		})

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("%s/category/%d", promotionsURL, otherID), nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		require.Equal(s.T(), []string{"cat only"}, names(body))
	})

	s.Run("unknown category yields empty list", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, promotionsURL+"/category/9999", nil, "")

		var body []map[string]any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		require.Empty(s.T(), body)
	})

	s.Run("non-numeric id", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, promotionsURL+"/category/abc", nil, "")

		require.Equal(s.T(), http.StatusBadRequest, w.Code)
	})
}
