package routes

import (
	"github.com/matheuarenivas/Hygieia/controllers"
	"github.com/matheuarenivas/Hygieia/middlewares"
	"github.com/matheuarenivas/Hygieia/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries the shared service instances the handlers close over.
type Deps struct {
	RT       *services.RealtimeHub
	Sessions *services.SessionHub
	Store    *services.CompositionStore
	Meals    *services.MealService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	mealCtl := controllers.NewMealController(d.Meals, d.Sessions)
	compCtl := controllers.NewCompositionController(d.Store, d.Meals, d.Sessions)
	goalCtl := controllers.NewGoalProgressController(d.Sessions)
	sessCtl := controllers.NewSessionController(d.Sessions)
	vitalCtl := controllers.NewVitalsController(d.Sessions)
	rtCtl := controllers.NewRealtimeController(d.RT)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Everything below requires a valid token
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())

	user := api.Group("/user")
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
		user.POST("/avatar", controllers.UploadAvatar)
		user.DELETE("", controllers.DeleteAccount)
	}

	foods := api.Group("/foods")
	{
		foods.GET("", controllers.ListFoods)
		foods.GET("/search", controllers.SearchFoods)
		foods.GET("/:id", controllers.GetFood)
	}

	meals := api.Group("/meals")
	{
		meals.POST("", mealCtl.LogMeal)
		meals.GET("", mealCtl.ListMeals)
		meals.GET("/recent", mealCtl.ListRecentMeals)
		meals.GET("/:id", mealCtl.GetMeal)
		meals.PUT("/:id", mealCtl.UpdateMeal)
		meals.DELETE("/:id", mealCtl.RemoveMeal)
		meals.POST("/:id/retry", mealCtl.RetryMeal)
	}

	comp := api.Group("/composition")
	{
		comp.GET("", compCtl.Get)
		comp.PUT("/type", compCtl.SetMealType)
		comp.POST("/foods", compCtl.AddFood)
		comp.DELETE("/foods/:foodID", compCtl.RemoveFood)
		comp.POST("/foods/:foodID/increment", compCtl.Increment)
		comp.POST("/foods/:foodID/decrement", compCtl.Decrement)
		comp.PUT("/foods/:foodID/quantity", compCtl.SetQuantity)
		comp.DELETE("", compCtl.Clear)
		comp.POST("/save", compCtl.Save)
	}

	goals := api.Group("/goals")
	{
		goals.GET("", goalCtl.GetGoals)
		goals.PUT("", goalCtl.UpdateGoals)
		goals.GET("/history", goalCtl.GetDailyProgressHistory)
		goals.GET("/tags", controllers.GetGoalTags)
		goals.POST("/tags/toggle", controllers.ToggleGoalTag)
	}

	session := api.Group("/session")
	{
		session.GET("", sessCtl.Get)
		session.PUT("/date", sessCtl.SelectDate)
		session.PUT("/menu", sessCtl.SetMenuVisible)
	}

	vitals := api.Group("/vitals")
	{
		vitals.POST("/water", vitalCtl.AddWater)
		vitals.GET("/water", vitalCtl.GetWater)
		vitals.POST("/weight", vitalCtl.AddWeight)
		vitals.GET("/weight", vitalCtl.WeightHistory)
		vitals.PUT("/sleep", vitalCtl.UpsertSleep)
		vitals.GET("/sleep", vitalCtl.GetSleep)
		vitals.POST("/heart-rate", vitalCtl.AddHeartRate)
		vitals.GET("/heart-rate", vitalCtl.GetHeartRate)
	}

	api.GET("/analytics/weekly", controllers.GetWeeklySummary)

	assistant := api.Group("/assistant")
	{
		assistant.GET("", controllers.AssistantGreeting)
		assistant.POST("/chat", controllers.AssistantChat)
	}

	alerts := api.Group("/alerts")
	{
		alerts.GET("", controllers.ListAlerts)
		alerts.POST("/:id/read", controllers.MarkAlertRead)
	}

	api.GET("/ws", rtCtl.EventsWS)

	return r
}
