//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"petstore-backend/internal/domain/promotion"
	"petstore-backend/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestIsCurrentlyValid(t *testing.T) {
	march := builder.NewPromotionBuilder().
		WithDates(builder.Date(2024, time.March, 1), builder.Date(2024, time.March, 31)).
		BuildDomain()
	singleDay := builder.NewPromotionBuilder().
		WithDates(builder.Date(2024, time.May, 10), builder.Date(2024, time.May, 10)).
		BuildDomain()

	tests := []struct {
		name string
		p    *promotion.Promotion
		ref  time.Time
		want bool
	}{
		{name: "inside range", p: march, ref: builder.Date(2024, time.March, 15), want: true},
		{name: "first day is inclusive", p: march, ref: builder.Date(2024, time.March, 1), want: true},
		{name: "last day is inclusive", p: march, ref: builder.Date(2024, time.March, 31), want: true},
		{name: "last day late evening still valid", p: march, ref: time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC), want: true},
		{name: "day before start", p: march, ref: builder.Date(2024, time.February, 29), want: false},
		{name: "day after end", p: march, ref: builder.Date(2024, time.April, 1), want: false},
		{name: "single-day promotion on its day", p: singleDay, ref: builder.Date(2024, time.May, 10), want: true},
		{name: "single-day promotion the day after", p: singleDay, ref: builder.Date(2024, time.May, 11), want: false},
		{name: "nil promotion", p: nil, ref: builder.Date(2024, time.March, 15), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, promotion.IsCurrentlyValid(tt.p, tt.ref))
		})
	}
}

func TestIsCurrentlyValid_IgnoresStatus(t *testing.T) {
	expired := builder.NewPromotionBuilder().
		WithStatus(2, promotion.StatusExpired).
		WithDates(builder.Date(2024, time.March, 1), builder.Date(2024, time.March, 31)).
		BuildDomain()

	assert.True(t, promotion.IsCurrentlyValid(expired, builder.Date(2024, time.March, 10)))
}

func TestClassifyActive(t *testing.T) {
	ref := builder.Date(2024, time.March, 15)
	current := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) { b.ID = 1 }).BuildDomain()
	past := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
		b.ID = 2
		b.StartDate = builder.Date(2024, time.January, 1)
		b.EndDate = builder.Date(2024, time.January, 31)
	}).BuildDomain()
	future := builder.NewPromotionBuilder().With(func(b *builder.PromotionBuilder) {
		b.ID = 3
		b.StartDate = builder.Date(2024, time.June, 1)
		b.EndDate = builder.Date(2024, time.June, 30)
	}).BuildDomain()

	t.Run("keeps only promotions whose window contains the day", func(t *testing.T) {
		got := promotion.ClassifyActive([]*promotion.Promotion{past, current, future}, ref)
		if diff := cmp.Diff([]*promotion.Promotion{current}, got); diff != "" {
			t.Errorf("ClassifyActive mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty input yields empty non-nil list", func(t *testing.T) {
		got := promotion.ClassifyActive(nil, ref)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestPhaseOf(t *testing.T) {
	p := builder.NewPromotionBuilder().BuildDomain()

	assert.Equal(t, promotion.PhaseScheduled, promotion.PhaseOf(p, builder.Date(2024, time.February, 1)))
	assert.Equal(t, promotion.PhaseActive, promotion.PhaseOf(p, builder.Date(2024, time.March, 1)))
	assert.Equal(t, promotion.PhaseActive, promotion.PhaseOf(p, builder.Date(2024, time.March, 31)))
	assert.Equal(t, promotion.PhaseExpired, promotion.PhaseOf(p, builder.Date(2024, time.April, 1)))
}

func TestDateOf(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	got := promotion.DateOf(time.Date(2024, time.March, 5, 23, 30, 0, 0, tokyo))
	assert.Equal(t, builder.Date(2024, time.March, 5), got)
}
