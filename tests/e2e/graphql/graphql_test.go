//go:build e2e

package graphql_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"petstore-backend/internal/domain/auth"
	"petstore-backend/internal/domain/promotion"
	"petstore-backend/tests/common/authtest"
	"petstore-backend/tests/common/dbtest"
	"petstore-backend/tests/common/httptest"
	"petstore-backend/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const graphqlURL = "/graphql"

type gqlResponse struct {
	Data   map[string]any `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type graphqlSuite struct {
	e2e.SharedSuite
	token      string
	categoryID int64
}

func TestGraphQLSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(graphqlSuite))
}

func (s *graphqlSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.token = authtest.CreateAndLogin(s.T(), s.DB, s.Router, "admin@petstore.com")
	s.categoryID = dbtest.CreateTestCategory(s.T(), s.DB, "Dog Food", "Food and treats for dogs")
}

func (s *graphqlSuite) exec(query, token string) gqlResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, graphqlURL, map[string]any{"query": query}, token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var resp gqlResponse
	require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &resp))
	return resp
}

func (s *graphqlSuite) TestPromotionLifecycle() {
	s.Run("create, query, update and delete", func() {
		resp := s.exec(fmt.Sprintf(`mutation { createPromotion(input: {
			promotionName: "Spring Sale", description: "Seasonal discount",
			startDate: "2024-03-01", endDate: "2024-03-31",
			discountPercentage: 15, categoryId: "%d"
		}) { promotionId promotionName status { statusName } user { email } category { categoryName } } }`, s.categoryID), s.token)

		require.Empty(s.T(), resp.Errors)
		created := resp.Data["createPromotion"].(map[string]any)
		require.Equal(s.T(), "Spring Sale", created["promotionName"])
		require.Equal(s.T(), promotion.StatusActive, created["status"].(map[string]any)["statusName"])
		require.Equal(s.T(), "admin@petstore.com", created["user"].(map[string]any)["email"])
		require.Equal(s.T(), "Dog Food", created["category"].(map[string]any)["categoryName"])
		id := created["promotionId"].(string)

		resp = s.exec(fmt.Sprintf(`mutation { updatePromotion(id: "%s", input: {discountPercentage: 25}) {
			promotionName discountValue startDate endDate isCurrentlyValid phase } }`, id), s.token)

		require.Empty(s.T(), resp.Errors)
		updated := resp.Data["updatePromotion"].(map[string]any)
		require.Equal(s.T(), "Spring Sale", updated["promotionName"])
		require.Equal(s.T(), float64(25), updated["discountValue"])
		require.Equal(s.T(), "2024-03-01", updated["startDate"])
		require.Equal(s.T(), "2024-03-31", updated["endDate"])
		require.Equal(s.T(), false, updated["isCurrentlyValid"])
		require.Equal(s.T(), promotion.PhaseExpired.String(), updated["phase"])

		resp = s.exec(fmt.Sprintf(`{ promotion(id: "%s") { promotionName } }`, id), "")
		require.Empty(s.T(), resp.Errors)
		require.Equal(s.T(), "Spring Sale", resp.Data["promotion"].(map[string]any)["promotionName"])

		resp = s.exec(fmt.Sprintf(`mutation { deletePromotion(id: "%s") }`, id), s.token)
		require.Empty(s.T(), resp.Errors)
		require.Equal(s.T(), true, resp.Data["deletePromotion"])

		resp = s.exec(fmt.Sprintf(`{ promotion(id: "%s") { promotionName } }`, id), "")
		require.Empty(s.T(), resp.Errors)
		require.Nil(s.T(), resp.Data["promotion"])
	})

	s.Run("delete missing promotion", func() {
		resp := s.exec(`mutation { deletePromotion(id: "9999") }`, s.token)

		require.Len(s.T(), resp.Errors, 1)
		require.Contains(s.T(), resp.Errors[0].Message, "Promotion not found with id: 9999")
	})

	s.Run("update missing promotion returns null", func() {
		resp := s.exec(`mutation { updatePromotion(id: "9999", input: {promotionName: "X"}) { promotionId } }`, s.token)

		require.Empty(s.T(), resp.Errors)
		require.Nil(s.T(), resp.Data["updatePromotion"])
	})

	s.Run("mutation without token is denied", func() {
		resp := s.exec(`mutation { deletePromotion(id: "1") }`, "")

		require.Len(s.T(), resp.Errors, 1)
		require.Equal(s.T(), auth.ErrAccessDenied.Error(), resp.Errors[0].Message)
	})
}

func (s *graphqlSuite) TestQueries() {
	s.Run("category resolves nested promotions and products", func() {
		promotionID := dbtest.CreateTestPromotion(s.T(), s.DB, dbtest.PromotionFixture{
			Name:          "Spring Sale",
			StartDate:     date(2024, 3, 1),
			EndDate:       date(2024, 3, 31),
			DiscountValue: 15,
			StatusName:    promotion.StatusScheduled,
			CategoryID:    &s.categoryID,
		})
		dbtest.CreateTestProduct(s.T(), s.DB, "Premium Kibble", "49.99", &s.categoryID, &promotionID)

		resp := s.exec(fmt.Sprintf(`{ category(id: "%d") {
			categoryName
			promotions { promotionName products { productName } }
			products { productName basePrice status }
		} }`, s.categoryID), "")

		require.Empty(s.T(), resp.Errors)
		got := resp.Data["category"].(map[string]any)
		require.Equal(s.T(), "Dog Food", got["categoryName"])
		promotions := got["promotions"].([]any)
		require.Len(s.T(), promotions, 1)
		nested := promotions[0].(map[string]any)["products"].([]any)
		require.Len(s.T(), nested, 1)
		products := got["products"].([]any)
		require.Len(s.T(), products, 1)
		require.Equal(s.T(), 49.99, products[0].(map[string]any)["basePrice"])
		require.Equal(s.T(), promotion.StatusScheduled, products[0].(map[string]any)["status"])
	})

	s.Run("scheduled includes pending", func() {
		for _, status := range []string{promotion.StatusScheduled, promotion.StatusPending, promotion.StatusExpired} {
			dbtest.CreateTestPromotion(s.T(), s.DB, dbtest.PromotionFixture{
				Name:       status,
				StartDate:  date(2030, 1, 1),
				EndDate:    date(2030, 1, 31),
				StatusName: status,
			})
		}

		resp := s.exec(`{ promotionsScheduled { promotionName } }`, "")

		require.Empty(s.T(), resp.Errors)
		require.ElementsMatch(s.T(), []any{
			map[string]any{"promotionName": promotion.StatusScheduled},
			map[string]any{"promotionName": promotion.StatusPending},
		}, resp.Data["promotionsScheduled"])
	})

	s.Run("login mutation", func() {
		resp := s.exec(`mutation { login(email: "admin@petstore.com", password: "`+dbtest.DefaultPassword+`") { success token role } }`, "")

		require.Empty(s.T(), resp.Errors)
		login := resp.Data["login"].(map[string]any)
		require.Equal(s.T(), true, login["success"])
		require.NotEmpty(s.T(), login["token"])
	})

	s.Run("currentUser with token", func() {
		resp := s.exec(`{ currentUser { email role { roleName } } }`, s.token)

		require.Empty(s.T(), resp.Errors)
		require.Equal(s.T(), "admin@petstore.com", resp.Data["currentUser"].(map[string]any)["email"])
	})
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
