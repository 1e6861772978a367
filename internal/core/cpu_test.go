package core

import "testing"

func TestNewProcesses_AssignsIdsByPosition(t *testing.T) {
	processes := NewProcesses([]Process{
		{ID: 42, ArrivalTime: 3, BurstTime: 1},
		{ArrivalTime: 0, BurstTime: 2},
	})
	for i, p := range processes {
		if p.ID != i+1 {
			t.Errorf("expected id %d, got %d", i+1, p.ID)
		}
	}
	if processes[0].ArrivalTime != 3 {
		t.Errorf("expected arrival 3 to be kept, got %d", processes[0].ArrivalTime)
	}
}

func TestNewRuns_PrivateCopy(t *testing.T) {
	processes := []Process{{ID: 1, BurstTime: 4}}
	runs := NewRuns(processes)
	runs[0].BurstTime = 99
	runs[0].RemainingTime = 0

	if processes[0].BurstTime != 4 {
		t.Fatalf("input process was mutated: %+v", processes[0])
	}
	again := NewRuns(processes)
	if again[0].RemainingTime != 4 || again[0].FirstRunTime != -1 {
		t.Errorf("expected fresh run, got %+v", again[0])
	}
}

func TestCpu_ExecuteSlices(t *testing.T) {
	cpu := NewCpu()
	run := NewRuns([]Process{{ID: 1, ArrivalTime: 2, BurstTime: 5}})[0]

	if got := cpu.Execute(run, 3); got != 3 {
		t.Fatalf("expected 3 units executed, got %d", got)
	}
	if run.Completed() {
		t.Fatal("process should not be complete after first slice")
	}
	if run.FirstRunTime != 2 {
		t.Errorf("expected first run at 2, got %d", run.FirstRunTime)
	}
	if got := cpu.Execute(run, 3); got != 2 {
		t.Fatalf("expected 2 units executed, got %d", got)
	}
	if !run.Completed() || run.CompletionTime != 7 {
		t.Errorf("expected completion at 7, got %+v", run)
	}
	if run.TurnaroundTime() != 5 || run.WaitingTime() != 0 || run.ResponseTime() != 0 {
		t.Errorf("unexpected derived times: tat=%d wt=%d rt=%d", run.TurnaroundTime(), run.WaitingTime(), run.ResponseTime())
	}
	if run.Slices() != 2 {
		t.Errorf("expected 2 slices, got %d", run.Slices())
	}

	want := []GanttEntry{{1, 2, 5}, {1, 5, 7}}
	if len(cpu.Gantt) != len(want) {
		t.Fatalf("expected %d gantt entries, got %d", len(want), len(cpu.Gantt))
	}
	for i := range want {
		if cpu.Gantt[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], cpu.Gantt[i])
		}
	}

	metric := cpu.Metric(cpu.Clock)
	if metric.UtilizationTime != 5 || metric.IdleTime != 2 || metric.TotalTime != 7 {
		t.Errorf("unexpected metric %+v", metric)
	}
}

func TestCpu_ExecuteFinishedProcessIsNoop(t *testing.T) {
	cpu := NewCpu()
	run := NewRuns([]Process{{ID: 1, BurstTime: 1}})[0]
	cpu.RunToCompletion(run)
	if got := cpu.Execute(run, 4); got != 0 {
		t.Errorf("expected no work on a finished process, got %d", got)
	}
	if len(cpu.Gantt) != 1 {
		t.Errorf("expected a single gantt entry, got %d", len(cpu.Gantt))
	}
}
