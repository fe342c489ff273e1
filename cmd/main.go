package main

import (
	"github.com/gregorycarnegie/body-fat-calculator/config"
	"github.com/gregorycarnegie/body-fat-calculator/routes"
	"github.com/gregorycarnegie/body-fat-calculator/services"
	"github.com/gregorycarnegie/body-fat-calculator/utils"
)

func main() {
	config.InitDB()
	utils.InitSES()

	hub := services.NewRealtimeHub()
	r := routes.SetupRouter(config.DB, hub)
	r.Run(":8080")
}
