package session

import (
	"github.com/shirou/gopsutil/v4/process"

	"lodestone/internal/config/logger"
)

// Probe decides whether an instance's game process is currently running,
// which picks live-tail mode over static viewing
type Probe interface {
	Alive(inst Instance) bool
}

type processProbe struct {
	log logger.Logger
}

// NewProbe creates a process liveness probe
func NewProbe(log logger.Logger) Probe {
	return &processProbe{log: log.WithComponent("PROBE")}
}

// Alive returns true when the instance has a recorded pid and that process
// still exists
func (p *processProbe) Alive(inst Instance) bool {
	pid, ok := inst.PID()
	if !ok {
		return false
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return false
	}

	running, err := proc.IsRunning()
	if err != nil {
		p.log.Debug().Err(err).Msgf("Liveness check failed for instance '%s'", inst.Name)

		return false
	}

	return running
}
