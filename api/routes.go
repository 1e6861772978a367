package api

import "github.com/gofiber/fiber/v2"

// RegisterRoutes mounts the scheduler endpoints on app.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/irr", handler.ImprovedRoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}

	// single endpoint used by the web form
	app.Post("/run-scheduler", handler.RunScheduler)
}
