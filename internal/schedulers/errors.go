package schedulers

import (
	"errors"
	"fmt"

	"os-scheduler/internal/core"
)

var (
	ErrEmptyInput       = errors.New("no processes to schedule")
	ErrInvalidQuantum   = errors.New("time quantum must be positive")
	ErrInvalidBurst     = errors.New("burst time must be positive")
	ErrInvalidArrival   = errors.New("arrival time must not be negative")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)

// validateProcesses rejects input the policies cannot make progress on.
func validateProcesses(processes []core.Process) error {
	if len(processes) == 0 {
		return ErrEmptyInput
	}
	for _, p := range processes {
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %d has burst time %d", ErrInvalidBurst, p.ID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %d has arrival time %d", ErrInvalidArrival, p.ID, p.ArrivalTime)
		}
	}
	return nil
}

func validateQuantum(quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantum, quantum)
	}
	return nil
}

// Validate checks a workload for every policy, quantum included.
func Validate(processes []core.Process, quantum int) error {
	if err := validateProcesses(processes); err != nil {
		return err
	}
	return validateQuantum(quantum)
}
