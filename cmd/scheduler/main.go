package main

import (
	"flag"
	"log"
	"os"

	"os-scheduler/config"
	"os-scheduler/internal/report"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/workload"
)

func main() {
	path := flag.String("f", "", "workload file (.yaml/.yml or the plain text format); stdin when empty")
	flag.Parse()

	cfg := config.GetSchedulerConfig()

	var (
		w   workload.Workload
		err error
	)
	if *path != "" {
		w, err = workload.Load(*path)
	} else {
		w, err = workload.ReadText(os.Stdin)
	}
	if err != nil {
		log.Fatalln(err)
	}

	all, err := schedulers.ScheduleAll(w.Processes, w.QuantumTime.OrElse(cfg.RoundRobinTimeQuantum), cfg.Options(), cfg.Parallel)
	if err != nil {
		log.Fatalln(err)
	}
	report.Render(os.Stdout, all)
}
