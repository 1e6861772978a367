package responses

import "os-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int `json:"process_id"`
	ArrivalTime    int `json:"arrival_time"`
	BurstTime      int `json:"burst_time"`
	Priority       int `json:"priority"`
	CompletionTime int `json:"completion_time"`
	ResponseTime   int `json:"response_time"`
	TurnAroundTime int `json:"turn_around_time"`
	WaitingTime    int `json:"waiting_time"`
}

// ScheduleResponse is the outcome of one policy. Details keep the order the
// metrics were computed in, which is not necessarily process id order.
type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Key                   string            `json:"key"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	WaitingTimeStdDev     float64           `json:"waiting_time_std_dev"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	GanttChart            []core.GanttEntry `json:"gantt_chart"`
	Details               []ProcessResponse `json:"details"`
}

// Detail returns the details row of the given process.
func (s ScheduleResponse) Detail(processId int) (ProcessResponse, bool) {
	for _, d := range s.Details {
		if d.ProcessId == processId {
			return d, true
		}
	}
	return ProcessResponse{}, false
}

type ComparisonResponse struct {
	BestAlgorithm               string  `json:"best_algorithm"`
	BestIndex                   int     `json:"best_index"`
	LowestAverageWaitingTime    float64 `json:"lowest_average_waiting_time"`
	LowestAverageTurnAroundTime float64 `json:"lowest_average_turn_around_time"`
	// winners of each criterion on its own; they may differ from BestAlgorithm
	LowestWaitingTimeAlgorithm    string `json:"lowest_waiting_time_algorithm"`
	LowestTurnAroundTimeAlgorithm string `json:"lowest_turn_around_time_algorithm"`
}

type AllAlgorithmsResponse struct {
	QuantumTime int                `json:"quantum_time"`
	Results     []ScheduleResponse `json:"results"`
	Comparison  ComparisonResponse `json:"comparison"`
}
