package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/markphelps/optional"
	"gopkg.in/yaml.v3"

	"os-scheduler/internal/core"
)

var ErrMalformed = errors.New("malformed workload")

// Workload is a parsed process set. QuantumTime is absent when the source
// did not give one.
type Workload struct {
	Processes   []core.Process
	QuantumTime optional.Int
}

// ReadText parses the line oriented format: a process count n, n lines of
// "arrival burst priority", then the quantum. Whitespace between values is
// not significant.
func ReadText(r io.Reader) (Workload, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (int, bool, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, false, fmt.Errorf("reading %s: %w", what, err)
			}
			return 0, false, nil
		}
		value, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, false, fmt.Errorf("%w: %s %q is not an integer", ErrMalformed, what, scanner.Text())
		}
		return value, true, nil
	}

	count, ok, err := next("process count")
	if err != nil {
		return Workload{}, err
	}
	if !ok || count < 0 {
		return Workload{}, fmt.Errorf("%w: missing process count", ErrMalformed)
	}

	processes := make([]core.Process, 0, count)
	for i := 0; i < count; i++ {
		var values [3]int
		for j, what := range []string{"arrival time", "burst time", "priority"} {
			value, ok, err := next(what)
			if err != nil {
				return Workload{}, err
			}
			if !ok {
				return Workload{}, fmt.Errorf("%w: process %d is missing its %s", ErrMalformed, i+1, what)
			}
			values[j] = value
		}
		processes = append(processes, core.Process{
			ArrivalTime: values[0],
			BurstTime:   values[1],
			Priority:    values[2],
		})
	}

	workload := Workload{Processes: core.NewProcesses(processes)}
	quantum, ok, err := next("quantum")
	if err != nil {
		return Workload{}, err
	}
	if ok {
		workload.QuantumTime = optional.NewInt(quantum)
	}
	return workload, nil
}

type yamlWorkload struct {
	Quantum   *int           `yaml:"quantum"`
	Processes []core.Process `yaml:"processes"`
}

// ReadYAML parses a workload document such as
//
//	quantum: 2
//	processes:
//	  - {arrival: 0, burst: 5, priority: 2}
func ReadYAML(r io.Reader) (Workload, error) {
	var doc yamlWorkload
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Workload{}, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return Workload{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	workload := Workload{Processes: core.NewProcesses(doc.Processes)}
	if doc.Quantum != nil {
		workload.QuantumTime = optional.NewInt(*doc.Quantum)
	}
	return workload, nil
}

// Load reads a workload file, choosing the format by extension.
func Load(path string) (Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return Workload{}, fmt.Errorf("opening workload file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ReadYAML(f)
	}
	return ReadText(f)
}
