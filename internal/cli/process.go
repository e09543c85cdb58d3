package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/streak/internal/constants"
	"github.com/julianstephens/streak/internal/logger"
)

var listProcessesFunc = ps.Processes

// OtherInstances returns the PIDs of other running streak processes
func OtherInstances() ([]int, error) {
	procs, err := listProcessesFunc()
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	var pids []int
	for _, p := range procs {
		if p.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(p.Executable()), ".exe")
		if name == constants.AppName {
			pids = append(pids, p.Pid())
		}
	}
	return pids, nil
}

// warnConcurrentInstances logs a warning when another process may write the same store
func warnConcurrentInstances() {
	pids, err := OtherInstances()
	if err != nil {
		logger.Debug("Failed to list processes", "error", err)
		return
	}
	if len(pids) > 0 {
		logger.Warn("Another streak process is running; concurrent writes may be lost", "pids", pids)
	}
}
