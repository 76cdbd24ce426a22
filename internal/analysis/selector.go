package analysis

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// InsightCandidate — структурированный факт для будущего инсайта.
// Текст формулирует внешний слой, здесь только данные.
type InsightCandidate struct {
	Key      string            `json:"key"`
	Label    string            `json:"label"`
	Domains  []Domain          `json:"domains"`
	Priority Priority          `json:"priority"`
	Result   CorrelationResult `json:"result"`
}

// SelectInsights превращает отранжированные корреляции в кандидатов,
// пропуская пары, которые пользователю уже показывали.
// Пустой вход — пустой выход: «мало данных» не ошибка.
func SelectInsights(results []CorrelationResult, surfaced map[string]struct{}) []InsightCandidate {
	var candidates []InsightCandidate

	for _, res := range results {
		if _, seen := surfaced[res.Pair.Key]; seen {
			continue
		}
		candidates = append(candidates, InsightCandidate{
			Key:      res.Pair.Key,
			Label:    res.Pair.Label,
			Domains:  []Domain{res.Pair.DomainA, res.Pair.DomainB},
			Priority: priorityFor(res.Strength),
			Result:   res,
		})
	}

	return candidates
}

func priorityFor(s Strength) Priority {
	switch s {
	case StrengthStrong:
		return PriorityHigh
	case StrengthModerate:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
