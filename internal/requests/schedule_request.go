package requests

import (
	"github.com/markphelps/optional"

	"os-scheduler/internal/core"
)

type Job struct {
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"processes"`
	// QuantumTime falls back to the configured round robin quantum when absent.
	QuantumTime optional.Int `json:"quantum_time"`
}

// Processes numbers the jobs 1..n in request order.
func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.Process{
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		})
	}
	return core.NewProcesses(processes)
}

func (r *ScheduleRequests) Quantum(defaultQuantum int) int {
	return r.QuantumTime.OrElse(defaultQuantum)
}
