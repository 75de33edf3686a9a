package controllers

import (
	"net/http"
	"time"

	"github.com/matheuarenivas/Hygieia/services"

	"github.com/gin-gonic/gin"
)

type VitalsController struct {
	Sessions *services.SessionHub
}

func NewVitalsController(sessions *services.SessionHub) *VitalsController {
	return &VitalsController{Sessions: sessions}
}

func (vc *VitalsController) dateOrActive(c *gin.Context, date string) string {
	if date != "" {
		return date
	}
	return vc.Sessions.Get(c.GetUint("userID")).ActiveDate
}

// POST /vitals/water {"liters": 0.25, "date": "..."}
func (vc *VitalsController) AddWater(c *gin.Context) {
	var body struct {
		Liters float64 `json:"liters" binding:"required"`
		Date   string  `json:"date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	total, err := services.AddWater(userID, vc.dateOrActive(c, body.Date), body.Liters)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"total_liters": total})
}

// GET /vitals/water?date=
func (vc *VitalsController) GetWater(c *gin.Context) {
	userID := c.GetUint("userID")
	total, err := services.WaterForDate(userID, vc.dateOrActive(c, c.Query("date")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total_liters": total})
}

// POST /vitals/weight {"kg": 82.5}
func (vc *VitalsController) AddWeight(c *gin.Context) {
	var body struct {
		Kg float64 `json:"kg" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := services.AddWeight(c.GetUint("userID"), body.Kg, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

// GET /vitals/weight
func (vc *VitalsController) WeightHistory(c *gin.Context) {
	logs, err := services.WeightHistory(c.GetUint("userID"), 30)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// PUT /vitals/sleep
func (vc *VitalsController) UpsertSleep(c *gin.Context) {
	var body struct {
		Date     string `json:"date"`
		DeepMin  int    `json:"deep_min"`
		LightMin int    `json:"light_min"`
		RemMin   int    `json:"rem_min"`
		AwakeMin int    `json:"awake_min"`
		Score    int    `json:"score"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	session, err := services.UpsertSleep(userID, vc.dateOrActive(c, body.Date),
		body.DeepMin, body.LightMin, body.RemMin, body.AwakeMin, body.Score)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GET /vitals/sleep?date=
func (vc *VitalsController) GetSleep(c *gin.Context) {
	userID := c.GetUint("userID")
	session, err := services.SleepForDate(userID, vc.dateOrActive(c, c.Query("date")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if session == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, session)
}

// POST /vitals/heart-rate {"bpm": 72}
func (vc *VitalsController) AddHeartRate(c *gin.Context) {
	var body struct {
		BPM int `json:"bpm" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sample, err := services.AddHeartRate(c.GetUint("userID"), body.BPM, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, sample)
}

// GET /vitals/heart-rate?date=
func (vc *VitalsController) GetHeartRate(c *gin.Context) {
	userID := c.GetUint("userID")
	stats, err := services.HeartRateForDate(userID, vc.dateOrActive(c, c.Query("date")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
