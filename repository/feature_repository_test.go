package repository

import (
	"context"
	"testing"

	"opsmetrics/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeatureRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewFeatureRepository(testDB.DB)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		feature, err := repo.GetByCode(ctx, "F-MISSING")
		require.NoError(t, err)
		assert.Nil(t, feature)
	})

	t.Run("round trip", func(t *testing.T) {
		original := testutil.CreateTestFeatureInModule("F-PAY", "payments")
		require.NoError(t, repo.Create(ctx, original))

		feature, err := repo.GetByCode(ctx, "F-PAY")
		require.NoError(t, err)
		require.NotNil(t, feature)

		assert.Equal(t, original.Name, feature.Name)
		assert.Equal(t, "payments", feature.Module)
		assert.Equal(t, 4.0, feature.TargetSLAHours)
	})

	t.Run("code unique", func(t *testing.T) {
		duplicate := testutil.CreateTestFeature("F-PAY")
		err := repo.Create(ctx, duplicate)
		assert.Error(t, err)
	})

	t.Run("get all ordered by code", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, testutil.CreateTestFeature("F-B")))
		require.NoError(t, repo.Create(ctx, testutil.CreateTestFeature("F-A")))

		features, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, features, 3)
		assert.Equal(t, "F-A", features[0].Code)
		assert.Equal(t, "F-B", features[1].Code)
		assert.Equal(t, "F-PAY", features[2].Code)
	})
}

func TestUserRepository(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	repo := NewUserRepository(testDB.DB)
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		user, err := repo.GetByID(ctx, "u-missing")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("round trip", func(t *testing.T) {
		original := testutil.CreateTestUserIn("u-01", "APAC", "Support")
		require.NoError(t, repo.Create(ctx, original))

		user, err := repo.GetByID(ctx, "u-01")
		require.NoError(t, err)
		require.NotNil(t, user)

		assert.Equal(t, "APAC", user.Region)
		assert.Equal(t, "Support", user.Department)
		assert.True(t, user.Active)
	})

	t.Run("get active excludes inactive users", func(t *testing.T) {
		inactive := testutil.CreateTestUser("u-02")
		inactive.Active = false
		require.NoError(t, repo.Create(ctx, inactive))

		active, err := repo.GetActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, "u-01", active[0].ID)

		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}
