package schedulers

import (
	"log"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

// ScheduleShortestJobFirst is non-preemptive: among arrived processes the one
// with the smallest burst runs to completion.
func ScheduleShortestJobFirst(processes []core.Process, options Options) (responses.ScheduleResponse, error) {
	log.Println("running sjf algorithm ...")
	if err := validateProcesses(processes); err != nil {
		return responses.ScheduleResponse{}, err
	}

	cpu, completed := scheduleNonPreemptive(processes, func(a, b *core.ProcessRun) bool {
		return a.BurstTime < b.BurstTime
	})
	return generateResponse(ShortestJobFirstName, "sjf", completed, cpu, options.Horizon)
}

// scheduleNonPreemptive admits processes by arrival into a ready queue and
// repeatedly runs the first ready process no other ready process is less than.
// Completed runs are returned in completion order.
func scheduleNonPreemptive(processes []core.Process, less func(a, b *core.ProcessRun) bool) (*core.Cpu, []*core.ProcessRun) {
	pending := sortByArrival(core.NewRuns(processes))
	readyQueue := make([]*core.ProcessRun, 0, len(pending))
	completed := make([]*core.ProcessRun, 0, len(pending))
	cpu := core.NewCpu()

	for len(pending) > 0 || len(readyQueue) > 0 {
		for len(pending) > 0 && pending[0].ArrivalTime <= cpu.Clock {
			readyQueue = append(readyQueue, pending[0])
			pending = pending[1:]
		}
		if len(readyQueue) == 0 {
			cpu.IdleUntil(pending[0].ArrivalTime)
			continue
		}

		selected := 0
		for i := 1; i < len(readyQueue); i++ {
			if less(readyQueue[i], readyQueue[selected]) {
				selected = i
			}
		}
		proccess := readyQueue[selected]
		cpu.RunToCompletion(proccess)
		completed = append(completed, proccess)
		readyQueue = append(readyQueue[:selected], readyQueue[selected+1:]...)
	}
	return cpu, completed
}
