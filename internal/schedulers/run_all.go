package schedulers

import (
	"log"
	"sync"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

// ScheduleAll runs every policy on its own copy of processes and compares the
// results. With parallel set each policy runs in its own goroutine; results
// keep the order of All either way.
func ScheduleAll(processes []core.Process, timeQuantum int, options Options, parallel bool) (responses.AllAlgorithmsResponse, error) {
	if err := Validate(processes, timeQuantum); err != nil {
		return responses.AllAlgorithmsResponse{}, err
	}

	schedulers := All(options)
	results := make([]responses.ScheduleResponse, len(schedulers))
	errs := make([]error, len(schedulers))

	run := func(i int) {
		results[i], errs[i] = schedulers[i].Schedule(processes, timeQuantum)
	}

	if parallel {
		var wg sync.WaitGroup
		wg.Add(len(schedulers))
		for i := range schedulers {
			go func(i int) {
				defer wg.Done()
				run(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := range schedulers {
			run(i)
		}
	}

	for _, err := range errs {
		if err != nil {
			return responses.AllAlgorithmsResponse{}, err
		}
	}

	comparison, err := Compare(results)
	if err != nil {
		return responses.AllAlgorithmsResponse{}, err
	}
	log.Println("best scheduling algorithm is", comparison.BestAlgorithm)

	return responses.AllAlgorithmsResponse{
		QuantumTime: timeQuantum,
		Results:     results,
		Comparison:  comparison,
	}, nil
}
