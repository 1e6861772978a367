package core

// Process is the immutable input record of one simulated process.
// Lower Priority values mean higher priority.
type Process struct {
	ID          int `json:"id" yaml:"id"`
	ArrivalTime int `json:"arrival_time" yaml:"arrival"`
	BurstTime   int `json:"burst_time" yaml:"burst"`
	Priority    int `json:"priority" yaml:"priority"`
}

// NewProcesses assigns ids 1..n by position.
func NewProcesses(processes []Process) []Process {
	numbered := make([]Process, len(processes))
	for i, p := range processes {
		p.ID = i + 1
		numbered[i] = p
	}
	return numbered
}

// ProcessRun is the working state of a process during one policy execution.
type ProcessRun struct {
	Process
	RemainingTime  int
	CompletionTime int
	// FirstRunTime is the clock value of the first dispatch, -1 until then.
	FirstRunTime int
	slices       int
}

func (p *ProcessRun) TurnaroundTime() int {
	return p.CompletionTime - p.ArrivalTime
}

func (p *ProcessRun) WaitingTime() int {
	return p.TurnaroundTime() - p.BurstTime
}

func (p *ProcessRun) ResponseTime() int {
	return p.FirstRunTime - p.ArrivalTime
}

func (p *ProcessRun) Completed() bool {
	return p.RemainingTime == 0
}

// Slices reports how many times the process has been dispatched.
func (p *ProcessRun) Slices() int {
	return p.slices
}

// NewRuns returns a private working copy of processes, one run per process.
func NewRuns(processes []Process) []*ProcessRun {
	runs := make([]*ProcessRun, 0, len(processes))
	for _, p := range processes {
		runs = append(runs, &ProcessRun{
			Process:       p,
			RemainingTime: p.BurstTime,
			FirstRunTime:  -1,
		})
	}
	return runs
}

// GanttEntry is one contiguous execution interval [Start, End).
type GanttEntry struct {
	ProcessID int `json:"process_id"`
	Start     int `json:"start"`
	End       int `json:"end"`
}

func (g GanttEntry) Duration() int {
	return g.End - g.Start
}
