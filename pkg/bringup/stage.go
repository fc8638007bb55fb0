package bringup

import (
	"errors"
	"fmt"

	"github.com/noos-go/iio-demo/pkg/status"
)

// Stage identifies one step of the bring-up sequence.
type Stage uint8

// Stages in execution order.
const (
	StagePower Stage = iota + 1
	StageIRQInit
	StageIRQEnable
	StageTransport
	StageServer
	StageOutputDevice
	StageInputDevice
	StageRun
)

// Stages lists every stage in execution order.
var Stages = []Stage{
	StagePower,
	StageIRQInit,
	StageIRQEnable,
	StageTransport,
	StageServer,
	StageOutputDevice,
	StageInputDevice,
	StageRun,
}

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StagePower:
		return "power"
	case StageIRQInit:
		return "irq_init"
	case StageIRQEnable:
		return "irq_enable"
	case StageTransport:
		return "uart_init"
	case StageServer:
		return "iio_app_init"
	case StageOutputDevice:
		return "output_device"
	case StageInputDevice:
		return "input_device"
	case StageRun:
		return "run"
	default:
		return fmt.Sprintf("stage(%d)", uint8(s))
	}
}

// ErrNoDescriptor is reported when a collaborator returns neither a
// descriptor nor an error.
var ErrNoDescriptor = errors.New("collaborator returned no descriptor")

// Failure is the error returned for the first failing stage.
type Failure struct {
	Stage Stage

	// Code is the negative status code the process exits with.
	Code int32

	Err error
}

func newFailure(stage Stage, err error) *Failure {
	return &Failure{Stage: stage, Code: status.Code(err), Err: err}
}

// Error implements the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("bring-up failed at %s (status %d): %v", f.Stage, f.Code, f.Err)
}

// Unwrap returns the collaborator's error.
func (f *Failure) Unwrap() error {
	return f.Err
}

// ExitStatus maps a Boot error to the process status: 0 for nil, the
// failing stage's code for a Failure, status.Code otherwise.
func ExitStatus(err error) int {
	if err == nil {
		return int(status.Success)
	}
	var f *Failure
	if errors.As(err, &f) {
		return int(f.Code)
	}
	return int(status.Code(err))
}
