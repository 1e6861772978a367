package core

import (
	"log"
)

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single simulated processor driven by a discrete clock.
type Cpu struct {
	Clock int
	Gantt []GanttEntry
	busy  int
}

func NewCpu() *Cpu {
	return &Cpu{Gantt: make([]GanttEntry, 0)}
}

// IdleUntil advances the clock to t without emitting a gantt entry.
func (c *Cpu) IdleUntil(t int) {
	if c.Clock < t {
		c.Clock = t
	}
}

// Execute dispatches the process for at most slice time units and returns
// the time actually spent. The clock never runs ahead of the process arrival.
func (c *Cpu) Execute(proccess *ProcessRun, slice int) int {
	c.IdleUntil(proccess.ArrivalTime)
	executionTime := slice
	if proccess.RemainingTime < executionTime {
		executionTime = proccess.RemainingTime
	}
	if executionTime <= 0 {
		return 0
	}

	if proccess.FirstRunTime < 0 {
		proccess.FirstRunTime = c.Clock
	}
	proccess.slices++
	c.Gantt = append(c.Gantt, GanttEntry{
		ProcessID: proccess.ID,
		Start:     c.Clock,
		End:       c.Clock + executionTime,
	})
	c.Clock += executionTime
	c.busy += executionTime
	proccess.RemainingTime -= executionTime

	if proccess.RemainingTime == 0 {
		proccess.CompletionTime = c.Clock
		log.Println("pid:", proccess.ID, "proccess completed at", c.Clock)
	}
	return executionTime
}

// RunToCompletion executes the whole remaining burst in one slice.
func (c *Cpu) RunToCompletion(proccess *ProcessRun) int {
	return c.Execute(proccess, proccess.RemainingTime)
}

// Metric reports busy and idle time against the given horizon.
func (c *Cpu) Metric(horizon int) CpuMetric {
	return CpuMetric{
		TotalTime:       horizon,
		UtilizationTime: c.busy,
		IdleTime:        horizon - c.busy,
	}
}
