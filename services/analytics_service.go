package services

import (
	"time"

	"github.com/matheuarenivas/Hygieia/config"
	"github.com/matheuarenivas/Hygieia/models"
	"github.com/matheuarenivas/Hygieia/utils"
)

// ---------- Weekly summary ----------

type DaySummary struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Meals    int     `json:"meals"`
}

type WeightPoint struct {
	Date string  `json:"date"`
	Kg   float64 `json:"kg"`
}

type WeeklySummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Days        []DaySummary       `json:"days"`
	Averages    models.MacroTotals `json:"averages"` // over the 7 days
	WeightTrend []WeightPoint      `json:"weight_trend"`
}

func avg(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// GetWeeklySummary builds the home dashboard charts: seven days of macro
// totals ending on endDate, plus the weight trend over the same window.
// Days with no meals count as zeros.
func GetWeeklySummary(userID uint, endDate string) (*WeeklySummary, error) {
	end, err := time.ParseInLocation("2006-01-02", endDate, time.Local)
	if err != nil {
		end = time.Now()
	}
	start := end.AddDate(0, 0, -6)

	out := &WeeklySummary{}
	out.Range.From = start.Format("2006-01-02")
	out.Range.To = end.Format("2006-01-02")

	var sums models.MacroTotals
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")

		meals := []models.Meal{}
		if err := config.DB.
			Where("user_id = ? AND date = ?", userID, date).
			Find(&meals).Error; err != nil {
			return nil, err
		}
		totals := utils.DayTotals(meals)

		out.Days = append(out.Days, DaySummary{
			Date:     date,
			Calories: totals.Calories,
			Protein:  totals.Protein,
			Carbs:    totals.Carbs,
			Fat:      totals.Fat,
			Meals:    len(meals),
		})

		sums.Calories += totals.Calories
		sums.Protein += totals.Protein
		sums.Carbs += totals.Carbs
		sums.Fat += totals.Fat
	}

	n := len(out.Days)
	out.Averages = models.MacroTotals{
		Calories: avg(sums.Calories, n),
		Protein:  avg(sums.Protein, n),
		Carbs:    avg(sums.Carbs, n),
		Fat:      avg(sums.Fat, n),
	}

	var weights []models.WeightLog
	if err := config.DB.
		Where("user_id = ? AND recorded_at >= ? AND recorded_at < ?", userID, start, end.Add(24*time.Hour)).
		Order("recorded_at").
		Find(&weights).Error; err != nil {
		return nil, err
	}
	for _, w := range weights {
		out.WeightTrend = append(out.WeightTrend, WeightPoint{
			Date: w.RecordedAt.Format("2006-01-02"),
			Kg:   w.Kg,
		})
	}

	return out, nil
}
