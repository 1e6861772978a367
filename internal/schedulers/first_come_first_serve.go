package schedulers

import (
	"log"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
func ScheduleFirstComeFirstServe(processes []core.Process, options Options) (responses.ScheduleResponse, error) {
	log.Println("running fcfs algorithm ...")
	if err := validateProcesses(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}

	// sort jobs by arrival time
	proccesses := sortByArrival(core.NewRuns(processes))

	cpu := core.NewCpu()
	for _, proccess := range proccesses {
		cpu.RunToCompletion(proccess)
	}

	// arrival order is completion order here
	return generateResponse(FirstComeFirstServeName, "fcfs", proccesses, cpu, options.Horizon)
}
