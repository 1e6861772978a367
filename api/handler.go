package api

import (
	"bytes"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
	"os-scheduler/internal/report"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ImprovedRoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	RunScheduler(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "fcfs")
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "sjf")
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "priority")
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "rr")
}

func (s *SchedulerHandlerImpl) ImprovedRoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "irr")
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	response, err := schedulers.ScheduleAll(
		request.Processes(),
		request.Quantum(s.config.RoundRobinTimeQuantum),
		s.config.Options(),
		s.config.Parallel,
	)
	if err != nil {
		return scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

// RunScheduler serves the web form: camelCase fields that may hold numeric
// strings in, the plain text report out.
func (s *SchedulerHandlerImpl) RunScheduler(ctx *fiber.Ctx) error {
	var request requests.FormRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	response, err := schedulers.ScheduleAll(
		request.Processes(),
		request.Quantum(s.config.RoundRobinTimeQuantum),
		s.config.Options(),
		s.config.Parallel,
	)
	if err != nil {
		return scheduleError(ctx, err)
	}

	var buf bytes.Buffer
	report.Render(&buf, response)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return ctx.SendString(buf.String())
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, key string) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	scheduler, err := schedulers.ByKey(key, s.config.Options())
	if err != nil {
		return scheduleError(ctx, err)
	}
	response, err := scheduler.Schedule(request.Processes(), request.Quantum(s.config.RoundRobinTimeQuantum))
	if err != nil {
		return scheduleError(ctx, err)
	}
	return ctx.JSON(response)
}

func invalidRequestFormat(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func scheduleError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, schedulers.ErrEmptyInput),
		errors.Is(err, schedulers.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrInvalidBurst),
		errors.Is(err, schedulers.ErrInvalidArrival):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, schedulers.ErrUnknownAlgorithm):
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	log.Println("can not proccess request:", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not proccess request"})
}
