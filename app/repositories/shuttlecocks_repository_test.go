package repositories

import (
	"context"
	"testing"

	"github.com/TheCodister/badminton-shop-api/app/models"
	"github.com/stretchr/testify/require"
)

func seedShuttlecocks(t *testing.T, repo ShuttlecockRepositoryImpl) {
	t.Helper()

	entries := []struct {
		name        string
		brand       string
		price       int64
		shuttleType string
		speed       int
	}{
		{"Aerosensa 50", models.BrandYonex, 960_000, "Feather", 77},
		{"Aerosensa 30", models.BrandYonex, 720_000, "Feather", 76},
		{"Mavis 350", models.BrandYonex, 240_000, "Nylon", 77},
		{"D8 Champion", models.BrandLining, 600_000, "Feather", 78},
	}

	for _, e := range entries {
		product := models.Product{
			ProductName: e.name,
			Price:       e.price,
			Brand:       e.brand,
			Stock:       50,
			Shuttlecock: &models.Shuttlecock{
				ShuttleType: e.shuttleType,
				Speed:       e.speed,
				NoPerTube:   12,
			},
		}
		require.NoError(t, repo.Create(context.Background(), &product))
	}
}

func TestShuttlecockListSpeedFilter(t *testing.T) {
	repo := NewShuttlecockRepository(setupTestDB(t))
	seedShuttlecocks(t, repo)

	shuttlecocks, total, err := repo.List(context.Background(), ShuttlecockFilter{
		Speeds: []int{77, 78},
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	for _, s := range shuttlecocks {
		require.Contains(t, []int{77, 78}, s.Speed)
	}
}

func TestShuttlecockListTypeSubstring(t *testing.T) {
	repo := NewShuttlecockRepository(setupTestDB(t))
	seedShuttlecocks(t, repo)

	shuttlecocks, total, err := repo.List(context.Background(), ShuttlecockFilter{
		ShuttleTypes: []string{"feath"},
	})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	for _, s := range shuttlecocks {
		require.Equal(t, "Feather", s.ShuttleType)
	}
}
