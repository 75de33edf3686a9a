package main

import (
	"log"

	"github.com/matheuarenivas/Hygieia/config"
	"github.com/matheuarenivas/Hygieia/routes"
	"github.com/matheuarenivas/Hygieia/services"
	"github.com/matheuarenivas/Hygieia/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	if err := services.SeedCatalog(); err != nil {
		log.Fatalf("seeding food catalog: %v", err)
	}

	rt := services.NewRealtimeHub()
	sessions := services.NewSessionHub()
	store := services.NewCompositionStore()
	meals := services.NewMealService(rt)

	services.InitAlertDeps(config.DB, rt)

	// push day/menu changes to connected clients
	sessions.Subscribe(func(userID uint, s services.Session) {
		rt.Broadcast(userID, "session.updated", s)
	})

	r := routes.SetupRouter(routes.Deps{
		RT:       rt,
		Sessions: sessions,
		Store:    store,
		Meals:    meals,
	})

	if err := r.Run(":8080"); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
