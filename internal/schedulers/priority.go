package schedulers

import (
	"log"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

// SchedulePriority is non-preemptive; a lower priority value wins.
func SchedulePriority(processes []core.Process, options Options) (responses.ScheduleResponse, error) {
	log.Println("running priority algorithm ...")
	if err := validateProcesses(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}

	cpu, completed := scheduleNonPreemptive(processes, func(a, b *core.ProcessRun) bool {
		return a.Priority < b.Priority
	})
	return generateResponse(PriorityName, "priority", completed, cpu, options.Horizon)
}
