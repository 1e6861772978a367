package schedulers

import (
	"log"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

func ScheduleRoundRobin(processes []core.Process, timeQuantum int, options Options) (responses.ScheduleResponse, error) {
	log.Println("running roundRobin algorithm with timeQuantum = ", timeQuantum)
	if err := Validate(processes, timeQuantum); err != nil {
		return responses.ScheduleResponse{}, err
	}

	proccesses := sortByArrival(core.NewRuns(processes))
	cpu := core.NewCpu()
	roundRobin(cpu, proccesses, timeQuantum, 0)

	// metrics follow arrival order, not completion order
	return generateResponse(RoundRobinName, "rr", proccesses, cpu, options.Horizon)
}

// roundRobin queues every process up front in the given order and serves the
// queue in quantum sized slices. With rounds > 0 a process leaves the queue
// after that many slices even if unfinished.
func roundRobin(cpu *core.Cpu, proccesses []*core.ProcessRun, timeQuantum, rounds int) {
	roundRobinQueue := make([]*core.ProcessRun, 0, len(proccesses))
	roundRobinQueue = append(roundRobinQueue, proccesses...)

	for len(roundRobinQueue) > 0 {
		proccess := roundRobinQueue[0]
		roundRobinQueue = roundRobinQueue[1:]

		cpu.Execute(proccess, timeQuantum)
		if proccess.Completed() {
			continue
		}
		if rounds > 0 && proccess.Slices() >= rounds {
			log.Println("pid:", proccess.ID, "leaves roundRobin queue with remaining time", proccess.RemainingTime)
			continue
		}
		roundRobinQueue = append(roundRobinQueue, proccess)
	}
}
