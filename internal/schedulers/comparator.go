package schedulers

import (
	"os-scheduler/internal/responses"
)

// Compare picks the best result. Each index that strictly lowers either the
// running waiting time minimum or the running turnaround minimum becomes the
// best, the turnaround check last, so the reported best can differ from both
// individual winners when they disagree.
func Compare(results []responses.ScheduleResponse) (responses.ComparisonResponse, error) {
	if len(results) == 0 {
		return responses.ComparisonResponse{}, ErrEmptyInput
	}

	var (
		bestIndex                   = 0
		waitingIndex                = 0
		turnAroundIndex             = 0
		lowestAverageWaitingTime    = results[0].AverageWaitingTime
		lowestAverageTurnAroundTime = results[0].AverageTurnAroundTime
	)
	for i := 1; i < len(results); i++ {
		if results[i].AverageWaitingTime < lowestAverageWaitingTime {
			lowestAverageWaitingTime = results[i].AverageWaitingTime
			waitingIndex = i
			bestIndex = i
		}
		if results[i].AverageTurnAroundTime < lowestAverageTurnAroundTime {
			lowestAverageTurnAroundTime = results[i].AverageTurnAroundTime
			turnAroundIndex = i
			bestIndex = i
		}
	}

	return responses.ComparisonResponse{
		BestAlgorithm:                 results[bestIndex].Algorithm,
		BestIndex:                     bestIndex,
		LowestAverageWaitingTime:      lowestAverageWaitingTime,
		LowestAverageTurnAroundTime:   lowestAverageTurnAroundTime,
		LowestWaitingTimeAlgorithm:    results[waitingIndex].Algorithm,
		LowestTurnAroundTimeAlgorithm: results[turnAroundIndex].Algorithm,
	}, nil
}
