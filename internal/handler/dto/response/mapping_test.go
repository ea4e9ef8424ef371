//go:build unit

package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"petstore-backend/internal/domain/user"
	"petstore-backend/internal/handler/dto/response"
	"petstore-backend/internal/usecase"
	"petstore-backend/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func TestFromPromotion(t *testing.T) {
	t.Run("widens dates to the bounds of their day", func(t *testing.T) {
		p := builder.NewPromotionBuilder().BuildDomain()

		got := response.FromPromotion(p)

		want := &response.PromotionDTO{
			PromotionID:        1,
			PromotionName:      "Spring Sale",
			Description:        p.Description,
			StartDate:          &response.DateTime{Time: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			EndDate:            &response.DateTime{Time: time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)},
			DiscountPercentage: response.NewDecimal(decimal.NewFromInt(15)),
			Status:             "ACTIVE",
			Category: &response.CategoryDTO{
				CategoryID:   5,
				CategoryName: "Dog Food",
				Description:  "Food and treats for dogs",
			},
		}
		if diff := cmp.Diff(want, got, decimalEqual); diff != "" {
			t.Errorf("FromPromotion() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("zero dates render as null", func(t *testing.T) {
		p := builder.NewPromotionBuilder().WithDates(time.Time{}, time.Time{}).BuildDomain()

		b, err := json.Marshal(response.FromPromotion(p))

		require.NoError(t, err)
		var body map[string]any
		require.NoError(t, json.Unmarshal(b, &body))
		assert.Nil(t, body["startDate"])
		assert.Nil(t, body["endDate"])
		assert.Contains(t, body, "product")
		assert.Nil(t, body["product"])
	})

	t.Run("nil promotion", func(t *testing.T) {
		assert.Nil(t, response.FromPromotion(nil))
	})

	t.Run("empty list stays non-nil", func(t *testing.T) {
		assert.NotNil(t, response.FromPromotions(nil))
		assert.Empty(t, response.FromPromotions(nil))
	})
}

func TestDateTimeJSON(t *testing.T) {
	in := response.DateTime{Time: time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-31T23:59:59"`, string(b))

	var out response.DateTime
	require.NoError(t, json.Unmarshal(b, &out))
	assert.True(t, in.Equal(out.Time))
}

func TestFromCategory(t *testing.T) {
	c := builder.NewCategoryBuilder().BuildDomain()

	got := response.FromCategory(c)

	want := &response.CategoryDTO{CategoryID: 5, CategoryName: "Dog Food", Description: "Food and treats for dogs"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FromCategory() mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, response.FromCategory(nil))
}

func TestFromProduct(t *testing.T) {
	p := builder.NewProductBuilder().BuildDomain()

	b, err := json.Marshal(response.FromProduct(p))

	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(b, &body))
	assert.Equal(t, 49.99, body["basePrice"])
	assert.Equal(t, float64(100045), body["sku"])
	assert.NotContains(t, body, "status")
}

func TestDecimal_JSON(t *testing.T) {
	t.Run("renders as a bare number", func(t *testing.T) {
		b, err := json.Marshal(response.NewDecimal(decimal.RequireFromString("19.50")))

		require.NoError(t, err)
		assert.Equal(t, "19.5", string(b))
	})

	t.Run("plain decimals keep their quoted encoding", func(t *testing.T) {
		_ = response.FromProduct(builder.NewProductBuilder().BuildDomain())

		b, err := json.Marshal(decimal.RequireFromString("49.99"))

		require.NoError(t, err)
		assert.Equal(t, `"49.99"`, string(b))
		assert.False(t, decimal.MarshalJSONWithoutQuotes)
	})

	t.Run("decodes both forms", func(t *testing.T) {
		var got struct {
			A response.Decimal `json:"a"`
			B response.Decimal `json:"b"`
		}

		require.NoError(t, json.Unmarshal([]byte(`{"a":12.5,"b":"12.5"}`), &got))
		assert.True(t, got.A.Equal(decimal.RequireFromString("12.5")))
		assert.True(t, got.B.Equal(decimal.RequireFromString("12.5")))
	})
}

func TestFromUser(t *testing.T) {
	tests := []struct {
		name string
		in   *user.User
		want *response.UserDTO
	}{
		{
			name: "maps renamed fields and role name",
			in:   builder.NewUserBuilder().BuildDomain(),
			want: &response.UserDTO{UserID: 1, UserName: "Marketing Admin", Email: "admin@petstore.com", Role: user.RoleMarketingAdmin},
		},
		{
			name: "missing role renders empty",
			in:   builder.NewUserBuilder().WithoutRole().BuildDomain(),
			want: &response.UserDTO{UserID: 1, UserName: "Marketing Admin", Email: "admin@petstore.com"},
		},
		{
			name: "nil user",
			in:   nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := response.FromUser(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FromUser() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoginResponses(t *testing.T) {
	t.Run("success carries the user", func(t *testing.T) {
		u := builder.NewUserBuilder().BuildDomain()

		got := response.FromLoginResult(&usecase.LoginResult{Token: "jwt", User: u})

		assert.True(t, got.Success)
		assert.Equal(t, "jwt", got.Token)
		assert.Equal(t, int64(1), got.UserID)
		assert.Equal(t, user.RoleMarketingAdmin, got.Role)
		assert.Equal(t, response.LoginSucceededMessage, got.Message)
	})

	t.Run("failure omits identity fields", func(t *testing.T) {
		b, err := json.Marshal(response.LoginFailed())

		require.NoError(t, err)
		assert.JSONEq(t, `{"success":false,"message":"`+response.LoginFailedMessage+`"}`, string(b))
	})
}
