package requests

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/markphelps/optional"

	"os-scheduler/internal/core"
)

// FormNumber is an integer the web form sends either as a JSON number or as
// a numeric string. An empty string or null leaves it absent.
type FormNumber struct {
	optional.Int
}

func (n *FormNumber) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(raw); err == nil {
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			return nil
		}
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%s is not an integer", string(data))
	}
	n.Int = optional.NewInt(value)
	return nil
}

type FormJob struct {
	ArrivalTime FormNumber `json:"arrivalTime"`
	BurstTime   FormNumber `json:"burstTime"`
	Priority    FormNumber `json:"priority"`
}

// FormRequest is the body posted by the web form to /run-scheduler.
type FormRequest struct {
	Jobs        []FormJob  `json:"processes"`
	QuantumTime FormNumber `json:"quantumTime"`
}

// Processes numbers the jobs 1..n in form order. Blank fields read as 0 and
// are left to scheduler validation.
func (r *FormRequest) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.Process{
			ArrivalTime: job.ArrivalTime.OrElse(0),
			BurstTime:   job.BurstTime.OrElse(0),
			Priority:    job.Priority.OrElse(0),
		})
	}
	return core.NewProcesses(processes)
}

func (r *FormRequest) Quantum(defaultQuantum int) int {
	return r.QuantumTime.OrElse(defaultQuantum)
}
