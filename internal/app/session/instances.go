package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"lodestone/internal/app/errors"
)

// DefaultPIDFile is where the launcher backend records the game process id
// inside an instance directory
const DefaultPIDFile = "game.pid"

// Instance describes one launcher instance known to the viewer
type Instance struct {
	Name    string `yaml:"-"`
	Dir     string `yaml:"dir"`
	PIDFile string `yaml:"pid_file"`
}

// registryFile is the on-disk shape of the instances file
type registryFile struct {
	Instances map[string]Instance `yaml:"instances"`
}

// LoadInstances reads the instance registry; a missing file yields an empty
// registry since file-mode viewing needs no instances at all
func LoadInstances(path string) (map[string]Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Instance{}, nil
		}

		return nil, fmt.Errorf("%w: %w", errors.ErrInstancesFileUnreadable, err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInstancesFileMalformed, err)
	}

	instances := make(map[string]Instance, len(file.Instances))

	for name, inst := range file.Instances {
		inst.Name = name

		if inst.PIDFile == "" {
			inst.PIDFile = DefaultPIDFile
		}

		instances[name] = inst
	}

	return instances, nil
}

// LookupInstance finds a named instance in the registry
func LookupInstance(instances map[string]Instance, name string) (Instance, error) {
	inst, ok := instances[name]
	if !ok {
		return Instance{}, fmt.Errorf("%w: '%s'", errors.ErrInstanceNotFound, name)
	}

	return inst, nil
}

// LogPath returns the path of the instance's current game log
func (i Instance) LogPath() string {
	return filepath.Join(i.Dir, "logs", "latest.log")
}

// PID reads the recorded game process id; false when no process has been
// recorded or the file does not hold a number
func (i Instance) PID() (int, bool) {
	data, err := os.ReadFile(filepath.Join(i.Dir, i.PIDFile))
	if err != nil {
		return 0, false
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, false
	}

	return pid, true
}
