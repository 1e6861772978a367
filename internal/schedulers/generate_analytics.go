package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

// generateResponse derives per-process and aggregate metrics from completed
// runs. Runs are reported in the order given; under HorizonLast that order
// also decides the utilization denominator.
func generateResponse(name, key string, runs []*core.ProcessRun, cpu *core.Cpu, horizon Horizon) (responses.ScheduleResponse, error) {
	if len(runs) == 0 {
		return responses.ScheduleResponse{}, ErrEmptyInput
	}

	var (
		proccessDetails = make([]responses.ProcessResponse, 0, len(runs))
		waitingTimes    = make([]int, 0, len(runs))
		turnAroundTimes = make([]int, 0, len(runs))
		responseTimes   = make([]int, 0, len(runs))
		completionTimes = make([]int, 0, len(runs))
		burstTimes      = make([]int, 0, len(runs))
	)
	for _, run := range runs {
		details := generateProcessDetails(run)
		proccessDetails = append(proccessDetails, details)
		waitingTimes = append(waitingTimes, details.WaitingTime)
		turnAroundTimes = append(turnAroundTimes, details.TurnAroundTime)
		responseTimes = append(responseTimes, details.ResponseTime)
		completionTimes = append(completionTimes, run.CompletionTime)
		burstTimes = append(burstTimes, run.BurstTime)
	}

	totalTime := util.Max(completionTimes)
	if horizon == HorizonLast {
		totalTime = runs[len(runs)-1].CompletionTime
	}
	if totalTime <= 0 {
		return responses.ScheduleResponse{}, ErrEmptyInput
	}

	cpuMetric := cpu.Metric(totalTime)
	idleTime := cpuMetric.IdleTime
	if idleTime < 0 {
		idleTime = 0
	}

	var response = responses.ScheduleResponse{
		Algorithm:             name,
		Key:                   key,
		TotalTime:             float64(totalTime),
		IdleTime:              float64(idleTime),
		AverageWaitingTime:    util.Average(waitingTimes),
		AverageResponseTime:   util.Average(responseTimes),
		AverageTurnAroundTime: util.Average(turnAroundTimes),
		WaitingTimeStdDev:     util.StdDev(waitingTimes),
		CpuUtilization:        100 * float64(util.Sum(burstTimes)) / float64(totalTime),
		CpuThroughput:         float64(len(runs)) / float64(totalTime),
		GanttChart:            cpu.Gantt,
		Details:               proccessDetails,
	}
	return response, nil
}

func generateProcessDetails(process *core.ProcessRun) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.ResponseTime(),
		TurnAroundTime: process.TurnaroundTime(),
		WaitingTime:    process.WaitingTime(),
	}
}
