package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minGuardPort = 20000
	maxGuardPort = 39999
)

// InstanceGuard keeps a second desktop timer from starting alongside the
// first by holding a localhost port derived from the app name.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds the app's guard port.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	listener, err := net.Listen("tcp", guardAddress(appName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, err)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the single instance lock.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	return guard.listener.Close()
}

func guardAddress(appName string) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := uint32(maxGuardPort - minGuardPort + 1)
	return fmt.Sprintf("127.0.0.1:%d", minGuardPort+int(hash.Sum32()%rangeSize))
}
