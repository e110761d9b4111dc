package impl

import (
	"context"
	"testing"

	"careadmin/internal/domain/entity"
	domainerrors "careadmin/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPackage(name string, price int64, features ...string) *entity.CarePackage {
	return &entity.CarePackage{
		ID:           uuid.New(),
		PackageType:  "family",
		Name:         name,
		PriceMonthly: price,
		Currency:     "USD",
		Features:     features,
		IsActive:     true,
	}
}

func int64Ptr(v int64) *int64 {
	return &v
}

func TestRecommend(t *testing.T) {
	basic := testPackage("Basic", 1000, "alerts")
	plus := testPackage("Plus", 2500, "alerts", "reports")
	pro := testPackage("Pro", 4000, "alerts", "reports", "gps")
	top := testPackage("Max", 6000, "alerts", "reports", "gps", "concierge")
	candidates := []*entity.CarePackage{basic, plus, pro, top}

	tests := []struct {
		name        string
		req         *entity.PackageRecommendationRequest
		want        *entity.CarePackage
		wantAltsLen int
	}{
		{
			name:        "cheapest by default",
			req:         &entity.PackageRecommendationRequest{UserType: "family"},
			want:        basic,
			wantAltsLen: 3,
		},
		{
			name:        "budget below every price keeps the cheapest",
			req:         &entity.PackageRecommendationRequest{UserType: "family", BudgetMonthly: int64Ptr(500)},
			want:        basic,
			wantAltsLen: 3,
		},
		{
			name: "features pick the first package that has them all",
			req: &entity.PackageRecommendationRequest{
				UserType:         "family",
				RequiredFeatures: []string{"gps", "reports"},
			},
			want:        pro,
			wantAltsLen: 3,
		},
		{
			name: "features win over budget",
			req: &entity.PackageRecommendationRequest{
				UserType:         "family",
				BudgetMonthly:    int64Ptr(3000),
				RequiredFeatures: []string{"concierge"},
			},
			want:        top,
			wantAltsLen: 3,
		},
		{
			name: "unmatched features fall back to the budget pick",
			req: &entity.PackageRecommendationRequest{
				UserType:         "family",
				BudgetMonthly:    int64Ptr(3000),
				RequiredFeatures: []string{"teleport"},
			},
			want:        basic,
			wantAltsLen: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recommend(tt.req, candidates)
			require.NotNil(t, got.Recommended)
			assert.Equal(t, tt.want.ID, got.Recommended.ID)
			assert.Len(t, got.Alternatives, tt.wantAltsLen)
			for _, alt := range got.Alternatives {
				assert.NotEqual(t, got.Recommended.ID, alt.ID)
			}
			assert.NotEmpty(t, got.Reasoning)
		})
	}
}

func TestRecommend_NoCandidates(t *testing.T) {
	got := recommend(&entity.PackageRecommendationRequest{UserType: "facility"}, nil)

	assert.Nil(t, got.Recommended)
	assert.Empty(t, got.Alternatives)
	assert.Contains(t, got.Reasoning, "no packages available")
}

func TestRecommend_AlternativesCapped(t *testing.T) {
	candidates := []*entity.CarePackage{
		testPackage("A", 100), testPackage("B", 200), testPackage("C", 300),
		testPackage("D", 400), testPackage("E", 500), testPackage("F", 600),
	}

	got := recommend(&entity.PackageRecommendationRequest{UserType: "family", BudgetMonthly: int64Ptr(100)}, candidates)

	assert.Equal(t, "A", got.Recommended.Name)
	require.Len(t, got.Alternatives, maxAlternatives)
	assert.Equal(t, "B", got.Alternatives[0].Name)
}

func TestPackageService(t *testing.T) {
	srv := NewPackageService(newOwnedParams(t))
	ctx := context.Background()

	for _, pkg := range []*entity.CarePackage{
		testPackage("Premium", 5000, "alerts", "gps"),
		testPackage("Starter", 1500, "alerts"),
	} {
		_, err := srv.Create(ctx, pkg)
		require.NoError(t, err)
	}
	facility := testPackage("Facility", 900)
	facility.PackageType = "facility"
	_, err := srv.Create(ctx, facility)
	require.NoError(t, err)

	_, err = srv.Create(ctx, testPackage("Starter", 1200))
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicate))

	_, err = srv.Create(ctx, &entity.CarePackage{Name: "No type", Currency: "USD"})
	assert.True(t, domainerrors.IsValidation(err))

	family, err := srv.ListActive(ctx, "family")
	require.NoError(t, err)
	require.Len(t, family, 2)
	assert.Equal(t, "Starter", family[0].Name)

	rec, err := srv.Recommend(ctx, &entity.PackageRecommendationRequest{
		UserType:         "family",
		RequiredFeatures: []string{"gps"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Premium", rec.Recommended.Name)
	require.Len(t, rec.Alternatives, 1)

	require.NoError(t, srv.Deactivate(ctx, rec.Recommended.ID))
	family, err = srv.ListActive(ctx, "family")
	require.NoError(t, err)
	assert.Len(t, family, 1)

	_, err = srv.Recommend(ctx, &entity.PackageRecommendationRequest{})
	assert.True(t, domainerrors.IsValidation(err))

	_, err = srv.Get(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrPackageNotFound))
}
