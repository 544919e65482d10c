package platform

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"

	"github.com/rhasspy/phonetisaurus-go/internal/domain"
)

// Machine names match the bundled bin/<machine> and lib/<machine>
// directory layout.
const (
	MachineX8664 = "x86_64"
	MachineARMv6 = "armv6l"
	MachineARMv7 = "armv7l"
	MachineARMv8 = "armv8"
)

// SupportedMachines lists the machine types binaries are bundled for.
func SupportedMachines() []string {
	return []string{MachineX8664, MachineARMv6, MachineARMv7, MachineARMv8}
}

// DetectMachine reports the bundled-binary machine name for the host CPU.
func DetectMachine() (string, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		// Fall back to the compile-time architecture.
		return NormalizeMachine(runtime.GOARCH)
	}
	return NormalizeMachine(unix.ByteSliceToString(uts.Machine[:]))
}

// NormalizeMachine maps a uname -m (or GOARCH) value onto a supported
// machine name.
func NormalizeMachine(raw string) (string, error) {
	switch raw {
	case MachineX8664, "amd64":
		return MachineX8664, nil
	case MachineARMv6:
		return MachineARMv6, nil
	case MachineARMv7:
		return MachineARMv7, nil
	case MachineARMv8, "aarch64", "arm64":
		return MachineARMv8, nil
	}

	return "", &domain.OpError{
		Op:   "platform.detect",
		Kind: domain.KindUnsupportedPlatform,
		Err:  fmt.Errorf("no bundled binaries for machine %q: %w", raw, domain.ErrUnsupportedPlatform),
	}
}
