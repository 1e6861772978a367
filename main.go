package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/api"
	"os-scheduler/config"
)

func main() {
	cfg := config.GetSchedulerConfig()

	app := fiber.New()
	api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(cfg))

	log.Println("scheduler api listening on port", cfg.Port, "with default timeQuantum =", cfg.RoundRobinTimeQuantum)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
