package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/responses"
)

// Render writes every policy result followed by the comparison verdict.
func Render(w io.Writer, all responses.AllAlgorithmsResponse) {
	for _, result := range all.Results {
		RenderSchedule(w, result)
	}
	RenderComparison(w, all.Comparison)
}

func RenderSchedule(w io.Writer, result responses.ScheduleResponse) {
	outputTitle(w, result.Algorithm)
	outputGantt(w, result)
	outputSchedule(w, result)
	_, _ = fmt.Fprintf(w, "Average Waiting Time: %.2f ms\n", result.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "Average Turnaround Time: %.2f ms\n", result.AverageTurnAroundTime)
	_, _ = fmt.Fprintf(w, "CPU Utilization: %.2f %%\n\n", result.CpuUtilization)
}

func RenderComparison(w io.Writer, comparison responses.ComparisonResponse) {
	_, _ = fmt.Fprintln(w, "The best scheduling algorithm is:", comparison.BestAlgorithm)
	_, _ = fmt.Fprintf(w, "With the lowest average waiting time of: %.2f ms (%s)\n",
		comparison.LowestAverageWaitingTime, comparison.LowestWaitingTimeAlgorithm)
	_, _ = fmt.Fprintf(w, "And the lowest average turnaround time of: %.2f ms (%s)\n",
		comparison.LowestAverageTurnAroundTime, comparison.LowestTurnAroundTimeAlgorithm)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
}

func outputGantt(w io.Writer, result responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Gantt chart")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Start", "End"})
	for _, entry := range result.GanttChart {
		table.Append([]string{
			fmt.Sprintf("P%d", entry.ProcessID),
			fmt.Sprint(entry.Start),
			fmt.Sprint(entry.End),
		})
	}
	table.Render()
}

func outputSchedule(w io.Writer, result responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(result.Details))
	for _, d := range result.Details {
		rows = append(rows, []string{
			fmt.Sprintf("P%d", d.ProcessId),
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", result.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", result.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", result.CpuThroughput)})
	table.Render()
}
