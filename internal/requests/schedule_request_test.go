package requests

import (
	"encoding/json"
	"testing"
)

func TestScheduleRequests_QuantumFallback(t *testing.T) {
	var withQuantum ScheduleRequests
	if err := json.Unmarshal([]byte(`{"processes":[{"arrival_time":0,"burst_time":5,"priority":2}],"quantum_time":4}`), &withQuantum); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := withQuantum.Quantum(2); got != 4 {
		t.Errorf("expected quantum 4, got %d", got)
	}

	var withoutQuantum ScheduleRequests
	if err := json.Unmarshal([]byte(`{"processes":[{"arrival_time":0,"burst_time":5,"priority":2}]}`), &withoutQuantum); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := withoutQuantum.Quantum(2); got != 2 {
		t.Errorf("expected default quantum 2, got %d", got)
	}
}

func TestScheduleRequests_Processes(t *testing.T) {
	request := ScheduleRequests{Jobs: []Job{
		{ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ArrivalTime: 1, BurstTime: 3, Priority: 1},
	}}
	processes := request.Processes()
	if len(processes) != 2 {
		t.Fatalf("expected 2 processes, got %d", len(processes))
	}
	if processes[1].ID != 2 || processes[1].BurstTime != 3 || processes[1].Priority != 1 {
		t.Errorf("unexpected second process %+v", processes[1])
	}
}
