// services/vitals_service.go
package services

import (
	"errors"
	"time"

	"github.com/matheuarenivas/Hygieia/config"
	"github.com/matheuarenivas/Hygieia/models"
	"gorm.io/gorm"
)

// ---------- Water ----------

// AddWater appends one drink and returns the day's new total.
func AddWater(userID uint, date string, liters float64) (float64, error) {
	if liters <= 0 {
		return 0, errors.New("liters must be positive")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return 0, errors.New("date must be YYYY-MM-DD")
	}

	log := models.WaterLog{UserID: userID, Date: date, Liters: liters}
	if err := config.DB.Create(&log).Error; err != nil {
		return 0, err
	}

	if _, err := RecomputeDailyProgress(userID, date); err != nil {
		return 0, err
	}
	return WaterForDate(userID, date)
}

// WaterForDate sums the day's drinks; no rows means 0, not an error.
func WaterForDate(userID uint, date string) (float64, error) {
	var total float64
	err := config.DB.Model(&models.WaterLog{}).
		Where("user_id = ? AND date = ?", userID, date).
		Select("COALESCE(SUM(liters), 0)").
		Scan(&total).Error
	return total, err
}

// ---------- Weight ----------

func AddWeight(userID uint, kg float64, at time.Time) (*models.WeightLog, error) {
	if kg <= 0 {
		return nil, errors.New("weight must be positive")
	}
	if at.IsZero() {
		at = time.Now()
	}
	log := models.WeightLog{UserID: userID, Kg: kg, RecordedAt: at}
	if err := config.DB.Create(&log).Error; err != nil {
		return nil, err
	}

	// Keep the profile's current weight in step with the newest reading.
	config.DB.Model(&models.User{}).Where("id = ?", userID).Update("weight", kg)
	return &log, nil
}

// WeightHistory feeds the weight line chart, oldest first.
func WeightHistory(userID uint, limit int) ([]models.WeightLog, error) {
	if limit <= 0 {
		limit = 30
	}
	var logs []models.WeightLog
	err := config.DB.
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	// reverse to chronological order for the chart
	for i, j := 0, len(logs)-1; i < j; i, j = i+1, j-1 {
		logs[i], logs[j] = logs[j], logs[i]
	}
	return logs, nil
}

// ---------- Sleep ----------

// UpsertSleep records one night's stage breakdown, one row per user per date.
func UpsertSleep(userID uint, date string, deep, light, rem, awake, score int) (*models.SleepSession, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	session := models.SleepSession{
		UserID: userID, Date: date,
		DeepMin: deep, LightMin: light, RemMin: rem, AwakeMin: awake,
		Score: score,
	}
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		Assign(session).
		FirstOrCreate(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func SleepForDate(userID uint, date string) (*models.SleepSession, error) {
	var session models.SleepSession
	err := config.DB.
		Where("user_id = ? AND date = ?", userID, date).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// ---------- Heart rate ----------

type HeartRateStats struct {
	Avg     float64 `json:"avg"`
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Samples int     `json:"samples"`
}

func AddHeartRate(userID uint, bpm int, at time.Time) (*models.HeartRateSample, error) {
	if bpm <= 0 {
		return nil, errors.New("bpm must be positive")
	}
	if at.IsZero() {
		at = time.Now()
	}
	sample := models.HeartRateSample{UserID: userID, BPM: bpm, TakenAt: at}
	if err := config.DB.Create(&sample).Error; err != nil {
		return nil, err
	}
	return &sample, nil
}

// HeartRateForDate aggregates the day's samples for the vitals chart.
func HeartRateForDate(userID uint, date string) (*HeartRateStats, error) {
	day, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}
	from := day
	to := day.Add(24 * time.Hour)

	var samples []models.HeartRateSample
	if err := config.DB.
		Where("user_id = ? AND taken_at >= ? AND taken_at < ?", userID, from, to).
		Order("taken_at").
		Find(&samples).Error; err != nil {
		return nil, err
	}

	stats := &HeartRateStats{Samples: len(samples)}
	if len(samples) == 0 {
		return stats, nil
	}

	sum := 0
	stats.Min = samples[0].BPM
	stats.Max = samples[0].BPM
	for _, s := range samples {
		sum += s.BPM
		if s.BPM < stats.Min {
			stats.Min = s.BPM
		}
		if s.BPM > stats.Max {
			stats.Max = s.BPM
		}
	}
	stats.Avg = float64(sum) / float64(len(samples))
	return stats, nil
}
