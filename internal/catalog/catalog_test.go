package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shenikar/speed_violation_analytics/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_BuiltinCatalog(t *testing.T) {
	// Действие
	cat, err := Load("")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 4, cat.Len())

	light, ok := cat.Get("light")
	require.True(t, ok)
	assert.Equal(t, models.ClassLight, light.Class)
	assert.Equal(t, 50.0, light.Limits[models.RoadUrban])

	emergency, ok := cat.Get("emergency")
	require.True(t, ok)
	assert.Equal(t, models.ClassEmergency, emergency.Class)
	assert.Equal(t, 50.0, emergency.Limits[models.RoadUrban])
	assert.Equal(t, 80.0, emergency.OverrideLimits[models.RoadUrban])
}

func TestLoad_BuiltinCatalog_OverridesNotBelowNormal(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	emergency, ok := cat.Get("emergency")
	require.True(t, ok)
	for _, road := range models.AllRoadTypes {
		assert.GreaterOrEqual(t, emergency.OverrideLimits[road], emergency.Limits[road],
			"override limit must not be below normal limit for road type %s", road)
	}
}

func TestLoad_FromFile(t *testing.T) {
	// Подготовка
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[
		{
			"id": "taxi",
			"class": "light",
			"limits": {"urban": 50, "interurban": 90, "highway": 100}
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// Действие
	cat, err := Load(path)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
	taxi, ok := cat.Get("taxi")
	require.True(t, ok)
	assert.Equal(t, 100.0, taxi.Limits[models.RoadHighway])
}

func TestLoad_MissingRoadType(t *testing.T) {
	// Каталог без лимита для highway должен быть отвергнут при старте
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[
		{
			"id": "taxi",
			"class": "light",
			"limits": {"urban": 50, "interurban": 90}
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cat, err := Load(path)

	require.Error(t, err)
	assert.Nil(t, cat)
	assert.ErrorContains(t, err, "no limit for road type")
}

func TestLoad_EmergencyWithoutOverrideLimits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[
		{
			"id": "ambulance",
			"class": "emergency",
			"limits": {"urban": 50, "interurban": 90, "highway": 120}
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cat, err := Load(path)

	require.Error(t, err)
	assert.Nil(t, cat)
	assert.ErrorContains(t, err, "no override limit")
}

func TestLoad_EmergencyOverrideBelowNormal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[
		{
			"id": "ambulance",
			"class": "emergency",
			"limits": {"urban": 50, "interurban": 90, "highway": 120},
			"override_limits": {"urban": 40, "interurban": 120, "highway": 150}
		}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cat, err := Load(path)

	require.Error(t, err)
	assert.Nil(t, cat)
	assert.ErrorContains(t, err, "override limit below normal limit")
}

func TestLoad_DuplicateCategory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	content := `[
		{"id": "taxi", "class": "light", "limits": {"urban": 50, "interurban": 90, "highway": 100}},
		{"id": "taxi", "class": "light", "limits": {"urban": 50, "interurban": 90, "highway": 100}}
	]`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cat, err := Load(path)

	require.Error(t, err)
	assert.Nil(t, cat)
	assert.ErrorContains(t, err, "duplicate category id")
}

func TestGet_UnknownCategory(t *testing.T) {
	cat, err := Load("")
	require.NoError(t, err)

	// Отсутствие категории выражается явно, без скрытого дефолта
	unknown, ok := cat.Get("spaceship")
	assert.False(t, ok)
	assert.Nil(t, unknown)
}
