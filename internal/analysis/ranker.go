package analysis

import (
	"fmt"
	"sort"

	"github.com/shenikar/speed_violation_analytics/internal/models"
)

// Веса степеней для разрешения ничьих при ранжировании.
// Презентационные атрибуты (цвета) живут на уровне handler, не здесь.
var severityWeights = map[models.Severity]int{
	models.SeveritySevere:  3,
	models.SeverityMinor:   2,
	models.SeverityCorrect: 1,
}

// SeverityWeight возвращает вес степени для составного ключа сортировки
func SeverityWeight(s models.Severity) int {
	return severityWeights[s]
}

// RankClusters возвращает новый срез кластеров, упорядоченный по убыванию
// числа нарушений; при равенстве - по весу доминирующей степени; дальнейшие
// ничьи сохраняют исходный порядок (сортировка стабильная).
func RankClusters(clusters []*models.Cluster) []*models.Cluster {
	ranked := make([]*models.Cluster, len(clusters))
	copy(ranked, clusters)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].MemberCount != ranked[j].MemberCount {
			return ranked[i].MemberCount > ranked[j].MemberCount
		}
		return SeverityWeight(ranked[i].DominantSeverity()) > SeverityWeight(ranked[j].DominantSeverity())
	})
	return ranked
}

// RankViolations возвращает новый срез нарушений, упорядоченный по убыванию
// частоты точки (число нарушений с теми же координатами в переданном наборе);
// при равенстве - по весу степени; дальнейшие ничьи сохраняют исходный порядок.
func RankViolations(events []*models.ViolationEvent) []*models.ViolationEvent {
	freq := make(map[string]int, len(events))
	for _, e := range events {
		freq[coordKey(e.Latitude, e.Longitude)]++
	}

	ranked := make([]*models.ViolationEvent, len(events))
	copy(ranked, events)
	sort.SliceStable(ranked, func(i, j int) bool {
		fi := freq[coordKey(ranked[i].Latitude, ranked[i].Longitude)]
		fj := freq[coordKey(ranked[j].Latitude, ranked[j].Longitude)]
		if fi != fj {
			return fi > fj
		}
		return SeverityWeight(ranked[i].Severity) > SeverityWeight(ranked[j].Severity)
	})
	return ranked
}

// coordKey - ключ точки с округлением до шестого знака (~0.1 м),
// чтобы повторные замеры одной точки считались одной локацией
func coordKey(lat, lng float64) string {
	return fmt.Sprintf("%.6f:%.6f", lat, lng)
}
