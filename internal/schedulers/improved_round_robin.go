package schedulers

import (
	"log"
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

// ScheduleImprovedRoundRobin runs a round robin phase and then finishes any
// leftover work shortest-remaining-time first without preemption. Without a
// round cap the first phase completes everything and the second is empty.
func ScheduleImprovedRoundRobin(processes []core.Process, timeQuantum int, options Options) (responses.ScheduleResponse, error) {
	log.Println("running improved roundRobin algorithm with timeQuantum = ", timeQuantum, ", rounds = ", options.ImprovedRoundRobinRounds)
	if err := Validate(processes, timeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}

	proccesses := sortByArrival(core.NewRuns(processes))
	cpu := core.NewCpu()
	roundRobin(cpu, proccesses, timeQuantum, options.ImprovedRoundRobinRounds)

	remaining := make([]*core.ProcessRun, 0)
	for _, proccess := range proccesses {
		if !proccess.Completed() {
			remaining = append(remaining, proccess)
		}
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].RemainingTime < remaining[j].RemainingTime
	})
	for _, proccess := range remaining {
		cpu.RunToCompletion(proccess)
	}

	return generateResponse(ImprovedRoundRobinName, "irr", proccesses, cpu, options.Horizon)
}
