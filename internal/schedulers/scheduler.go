package schedulers

import (
	"fmt"
	"sort"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

const (
	FirstComeFirstServeName = "First-Come, First-Served (FCFS) Scheduling"
	ShortestJobFirstName    = "Shortest Job First (SJF) Scheduling"
	PriorityName            = "Priority Scheduling"
	RoundRobinName          = "Round Robin (RR) Scheduling"
	ImprovedRoundRobinName  = "Improved Round Robin (IRR) Scheduling"
)

// Horizon selects the time span CPU utilization is measured against.
type Horizon string

const (
	// HorizonMax uses the latest completion time of any process.
	HorizonMax Horizon = "max"
	// HorizonLast uses the completion time of the last process in metrics
	// order, which for RR and IRR is arrival order rather than completion order.
	HorizonLast Horizon = "last"
)

func ParseHorizon(s string) (Horizon, error) {
	switch Horizon(s) {
	case "", HorizonMax:
		return HorizonMax, nil
	case HorizonLast:
		return HorizonLast, nil
	}
	return "", fmt.Errorf("unknown utilization horizon %q", s)
}

type Options struct {
	Horizon Horizon
	// ImprovedRoundRobinRounds caps the slices a process gets in the round
	// robin phase of IRR. 0 means no cap.
	ImprovedRoundRobinRounds int
}

func DefaultOptions() Options {
	return Options{Horizon: HorizonMax}
}

// Scheduler is one CPU scheduling policy. Quantum is ignored by the
// non-preemptive policies.
type Scheduler interface {
	Name() string
	Key() string
	Schedule(processes []core.Process, quantum int) (responses.ScheduleResponse, error)
}

type FirstComeFirstServe struct{ Options Options }

func (FirstComeFirstServe) Name() string { return FirstComeFirstServeName }
func (FirstComeFirstServe) Key() string  { return "fcfs" }
func (s FirstComeFirstServe) Schedule(processes []core.Process, _ int) (responses.ScheduleResponse, error) {
	return ScheduleFirstComeFirstServe(processes, s.Options)
}

type ShortestJobFirst struct{ Options Options }

func (ShortestJobFirst) Name() string { return ShortestJobFirstName }
func (ShortestJobFirst) Key() string  { return "sjf" }
func (s ShortestJobFirst) Schedule(processes []core.Process, _ int) (responses.ScheduleResponse, error) {
	return ScheduleShortestJobFirst(processes, s.Options)
}

type Priority struct{ Options Options }

func (Priority) Name() string { return PriorityName }
func (Priority) Key() string  { return "priority" }
func (s Priority) Schedule(processes []core.Process, _ int) (responses.ScheduleResponse, error) {
	return SchedulePriority(processes, s.Options)
}

type RoundRobin struct{ Options Options }

func (RoundRobin) Name() string { return RoundRobinName }
func (RoundRobin) Key() string  { return "rr" }
func (s RoundRobin) Schedule(processes []core.Process, quantum int) (responses.ScheduleResponse, error) {
	return ScheduleRoundRobin(processes, quantum, s.Options)
}

type ImprovedRoundRobin struct{ Options Options }

func (ImprovedRoundRobin) Name() string { return ImprovedRoundRobinName }
func (ImprovedRoundRobin) Key() string  { return "irr" }
func (s ImprovedRoundRobin) Schedule(processes []core.Process, quantum int) (responses.ScheduleResponse, error) {
	return ScheduleImprovedRoundRobin(processes, quantum, s.Options)
}

// All returns the five policies in comparison order.
func All(options Options) []Scheduler {
	return []Scheduler{
		FirstComeFirstServe{options},
		ShortestJobFirst{options},
		Priority{options},
		RoundRobin{options},
		ImprovedRoundRobin{options},
	}
}

func ByKey(key string, options Options) (Scheduler, error) {
	for _, s := range All(options) {
		if s.Key() == key {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, key)
}

// sortByArrival orders runs by arrival time, keeping input order on ties.
func sortByArrival(runs []*core.ProcessRun) []*core.ProcessRun {
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].ArrivalTime < runs[j].ArrivalTime
	})
	return runs
}
