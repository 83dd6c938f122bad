package executor

import "os/exec"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Command
type Command interface {
	SetDir(dir string)
	CombinedOutput() ([]byte, error)
}

//counterfeiter:generate . Executor
type Executor interface {
	Command(name string, args ...string) Command
}

var _ Executor = BinaryFileExecutor{}

// BinaryFileExecutor runs real binaries on the host.
type BinaryFileExecutor struct{}

func (BinaryFileExecutor) Command(name string, args ...string) Command {
	return &binaryCommand{cmd: exec.Command(name, args...)}
}

type binaryCommand struct {
	cmd *exec.Cmd
}

func (b *binaryCommand) SetDir(dir string) {
	b.cmd.Dir = dir
}

func (b *binaryCommand) CombinedOutput() ([]byte, error) {
	return b.cmd.CombinedOutput()
}
