package requests

import (
	"encoding/json"
	"testing"

	"os-scheduler/internal/core"
)

func TestFormRequest_StringAndNumberValues(t *testing.T) {
	var request FormRequest
	body := `{"processes":[
		{"arrivalTime":"0","burstTime":"5","priority":"2"},
		{"arrivalTime":1,"burstTime":3,"priority":1},
		{"arrivalTime":" 2 ","burstTime":"8","priority":"3"}
	],"quantumTime":"2"}`
	if err := json.Unmarshal([]byte(body), &request); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []core.Process{
		{ID: 1, ArrivalTime: 0, BurstTime: 5, Priority: 2},
		{ID: 2, ArrivalTime: 1, BurstTime: 3, Priority: 1},
		{ID: 3, ArrivalTime: 2, BurstTime: 8, Priority: 3},
	}
	processes := request.Processes()
	if len(processes) != len(want) {
		t.Fatalf("expected %d processes, got %d", len(want), len(processes))
	}
	for i := range want {
		if processes[i] != want[i] {
			t.Errorf("process %d: expected %+v, got %+v", i, want[i], processes[i])
		}
	}
	if got := request.Quantum(9); got != 2 {
		t.Errorf("expected quantum 2, got %d", got)
	}
}

func TestFormRequest_BlankQuantumFallsBack(t *testing.T) {
	var request FormRequest
	if err := json.Unmarshal([]byte(`{"processes":[],"quantumTime":""}`), &request); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := request.Quantum(4); got != 4 {
		t.Errorf("expected default quantum 4, got %d", got)
	}
}

func TestFormRequest_NonNumeric(t *testing.T) {
	var request FormRequest
	if err := json.Unmarshal([]byte(`{"processes":[{"arrivalTime":"soon","burstTime":"5"}]}`), &request); err == nil {
		t.Error("expected an error for a non-numeric arrival time")
	}
}
