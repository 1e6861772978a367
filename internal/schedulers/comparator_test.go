package schedulers

import (
	"errors"
	"testing"

	"os-scheduler/internal/responses"
)

func results(waiting, turnAround []float64) []responses.ScheduleResponse {
	names := []string{FirstComeFirstServeName, ShortestJobFirstName, PriorityName, RoundRobinName, ImprovedRoundRobinName}
	out := make([]responses.ScheduleResponse, len(waiting))
	for i := range waiting {
		out[i] = responses.ScheduleResponse{
			Algorithm:             names[i],
			AverageWaitingTime:    waiting[i],
			AverageTurnAroundTime: turnAround[i],
		}
	}
	return out
}

func TestCompare_SameWinnerForBothCriteria(t *testing.T) {
	got, err := Compare(results([]float64{9, 7, 8, 3, 5}, []float64{14, 12, 13, 8, 10}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BestIndex != 3 || got.BestAlgorithm != RoundRobinName {
		t.Errorf("expected RR to win, got %+v", got)
	}
	if got.LowestAverageWaitingTime != 3 || got.LowestAverageTurnAroundTime != 8 {
		t.Errorf("unexpected minima %+v", got)
	}
}

func TestCompare_TurnaroundCheckOverwritesWaitingWinner(t *testing.T) {
	got, err := Compare(results([]float64{5, 2, 4, 4, 4}, []float64{9, 9, 8, 9, 9}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BestIndex != 2 || got.BestAlgorithm != PriorityName {
		t.Errorf("expected Priority as best, got %+v", got)
	}
	if got.LowestAverageWaitingTime != 2 || got.LowestWaitingTimeAlgorithm != ShortestJobFirstName {
		t.Errorf("expected SJF to hold the lowest waiting time, got %+v", got)
	}
	if got.LowestAverageTurnAroundTime != 8 || got.LowestTurnAroundTimeAlgorithm != PriorityName {
		t.Errorf("expected Priority to hold the lowest turnaround time, got %+v", got)
	}
}

func TestCompare_TiesKeepEarlierResult(t *testing.T) {
	got, err := Compare(results([]float64{3, 3, 3, 3, 3}, []float64{8, 8, 8, 8, 8}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BestIndex != 0 {
		t.Errorf("expected first result to win ties, got %d", got.BestIndex)
	}
}

func TestCompare_Empty(t *testing.T) {
	if _, err := Compare(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}
