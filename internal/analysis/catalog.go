package analysis

// Metric — путь к числовой метрике внутри DayRecord
type Metric string

const (
	MetricSleepQuality    Metric = "sleep_quality"
	MetricTotalCalories   Metric = "total_calories"
	MetricMealCount       Metric = "meal_count"
	MetricExerciseCount   Metric = "exercise_count"
	MetricTrainingVolume  Metric = "training_volume"
	MetricMoodIntensity   Metric = "mood_intensity"
	MetricHabitsCompleted Metric = "habits_completed"
	MetricWaterTotal      Metric = "water_total"
)

// MetricValue возвращает значение метрики за день и признак её наличия.
// Для незалогированной сферы значение отсутствует, а не равно нулю.
func MetricValue(r DayRecord, m Metric) (float64, bool) {
	switch m {
	case MetricSleepQuality:
		return r.Sleep.QualityScore, r.Sleep.Logged
	case MetricTotalCalories:
		return r.Nutrition.TotalCalories, r.Nutrition.Logged
	case MetricMealCount:
		return float64(r.Nutrition.MealCount), r.Nutrition.Logged
	case MetricExerciseCount:
		return float64(r.Fitness.ExerciseCount), r.Fitness.Logged
	case MetricTrainingVolume:
		return r.Fitness.TotalVolume, r.Fitness.Logged
	case MetricMoodIntensity:
		return r.Mood.AverageIntensity, r.Mood.Logged
	case MetricHabitsCompleted:
		return float64(r.Habits.CompletedCount), r.Habits.Logged
	case MetricWaterTotal:
		return r.Hydration.TotalMl, r.Hydration.Logged
	}
	return 0, false
}

// Pair — пара метрик из фиксированного каталога
type Pair struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	DomainA Domain `json:"domain_a"`
	DomainB Domain `json:"domain_b"`
	MetricA Metric `json:"metric_a"`
	MetricB Metric `json:"metric_b"`
}

// Catalog — фиксированный каталог пар. Порядок важен: при равных |r|
// результаты сохраняют порядок каталога.
var Catalog = []Pair{
	{
		Key:     "sleep_quality_vs_mood",
		Label:   "😴 Качество сна ↔ 🙂 Настроение",
		DomainA: Sleep, DomainB: Mood,
		MetricA: MetricSleepQuality, MetricB: MetricMoodIntensity,
	},
	{
		Key:     "exercise_vs_sleep_quality",
		Label:   "🏃 Тренировки ↔ 😴 Качество сна",
		DomainA: Fitness, DomainB: Sleep,
		MetricA: MetricExerciseCount, MetricB: MetricSleepQuality,
	},
	{
		Key:     "water_vs_sleep_quality",
		Label:   "💧 Вода ↔ 😴 Качество сна",
		DomainA: Hydration, DomainB: Sleep,
		MetricA: MetricWaterTotal, MetricB: MetricSleepQuality,
	},
	{
		Key:     "habits_vs_mood",
		Label:   "✅ Привычки ↔ 🙂 Настроение",
		DomainA: Habits, DomainB: Mood,
		MetricA: MetricHabitsCompleted, MetricB: MetricMoodIntensity,
	},
	{
		Key:     "water_vs_mood",
		Label:   "💧 Вода ↔ 🙂 Настроение",
		DomainA: Hydration, DomainB: Mood,
		MetricA: MetricWaterTotal, MetricB: MetricMoodIntensity,
	},
	{
		Key:     "meals_vs_mood",
		Label:   "🍽 Приёмы пищи ↔ 🙂 Настроение",
		DomainA: Nutrition, DomainB: Mood,
		MetricA: MetricMealCount, MetricB: MetricMoodIntensity,
	},
}
