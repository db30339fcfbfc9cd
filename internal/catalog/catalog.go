package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shenikar/speed_violation_analytics/internal/models"
)

// Catalog - каталог категорий транспортных средств с таблицами ограничений скорости.
// Загружается один раз при старте и далее доступен только на чтение.
type Catalog struct {
	categories map[string]*models.VehicleCategory
}

// defaultCategories - встроенный каталог по умолчанию.
// Используется, когда путь к файлу каталога не задан в конфигурации.
func defaultCategories() []*models.VehicleCategory {
	return []*models.VehicleCategory{
		{
			ID:    "light",
			Class: models.ClassLight,
			Limits: map[models.RoadType]float64{
				models.RoadUrban:      50,
				models.RoadInterurban: 90,
				models.RoadHighway:    120,
			},
		},
		{
			ID:    "heavy",
			Class: models.ClassHeavy,
			Limits: map[models.RoadType]float64{
				models.RoadUrban:      40,
				models.RoadInterurban: 80,
				models.RoadHighway:    90,
			},
		},
		{
			ID:    "bus",
			Class: models.ClassBus,
			Limits: map[models.RoadType]float64{
				models.RoadUrban:      50,
				models.RoadInterurban: 80,
				models.RoadHighway:    100,
			},
		},
		{
			ID:    "emergency",
			Class: models.ClassEmergency,
			Limits: map[models.RoadType]float64{
				models.RoadUrban:      50,
				models.RoadInterurban: 90,
				models.RoadHighway:    120,
			},
			OverrideLimits: map[models.RoadType]float64{
				models.RoadUrban:      80,
				models.RoadInterurban: 120,
				models.RoadHighway:    150,
			},
		},
	}
}

// Load загружает каталог категорий. Если path пустой, используется встроенный каталог.
// Каталог валидируется на полноту: ошибка здесь фатальна для запуска приложения.
func Load(path string) (*Catalog, error) {
	categories := defaultCategories()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("catalog: failed to read catalog file %s: %w", path, err)
		}
		categories = nil
		if err := json.Unmarshal(data, &categories); err != nil {
			return nil, fmt.Errorf("catalog: failed to parse catalog file %s: %w", path, err)
		}
	}

	c := &Catalog{categories: make(map[string]*models.VehicleCategory, len(categories))}
	for _, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("catalog: category with empty id")
		}
		if _, exists := c.categories[cat.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate category id %q", cat.ID)
		}
		c.categories[cat.ID] = cat
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// validate проверяет полноту каталога: каждая категория должна иметь лимит
// для каждого типа дороги, а экстренные категории - еще и таблицу повышенных
// лимитов, не меньших обычных.
func (c *Catalog) validate() error {
	if len(c.categories) == 0 {
		return fmt.Errorf("catalog: no categories declared")
	}
	for id, cat := range c.categories {
		for _, road := range models.AllRoadTypes {
			limit, ok := cat.Limits[road]
			if !ok {
				return fmt.Errorf("catalog: category %q has no limit for road type %q", id, road)
			}
			if limit <= 0 {
				return fmt.Errorf("catalog: category %q has non-positive limit for road type %q", id, road)
			}
			if cat.Class != models.ClassEmergency {
				continue
			}
			override, ok := cat.OverrideLimits[road]
			if !ok {
				return fmt.Errorf("catalog: emergency category %q has no override limit for road type %q", id, road)
			}
			if override < limit {
				return fmt.Errorf("catalog: emergency category %q has override limit below normal limit for road type %q", id, road)
			}
		}
	}
	return nil
}

// Get возвращает категорию по идентификатору.
// Отсутствие категории выражается явно вторым значением, без скрытого дефолта.
func (c *Catalog) Get(id string) (*models.VehicleCategory, bool) {
	cat, ok := c.categories[id]
	return cat, ok
}

// Len возвращает число категорий в каталоге
func (c *Catalog) Len() int {
	return len(c.categories)
}
