package dummy

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/veedubyou/stem-curator/src/shared/lib/executor"
)

var _ executor.Executor = &SoxExecutor{}

func NewSoxExecutor() *SoxExecutor {
	return &SoxExecutor{
		Unavailable: false,
		FailFor:     map[string]bool{},
	}
}

// SoxExecutor stands in for the sox binary. Silence removal writes the
// source contents prefixed with "silenced:", trimming writes them prefixed
// with "trimmed <length>:". Sources named in FailFor fail without writing.
// Each run takes Delay, and the most runs seen at once is kept.
type SoxExecutor struct {
	Unavailable bool
	FailFor     map[string]bool
	Delay       time.Duration

	mutex    sync.Mutex
	calls    [][]string
	inFlight int
	peak     int
}

func (s *SoxExecutor) Command(name string, args ...string) executor.Command {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	call := append([]string{name}, args...)
	s.calls = append(s.calls, call)

	return &soxCommand{
		owner:       s,
		args:        args,
		unavailable: s.Unavailable,
		fail:        len(args) > 0 && s.FailFor[filepath.Base(args[0])],
	}
}

// PeakInFlight is the largest number of commands that were running at the
// same time.
func (s *SoxExecutor) PeakInFlight() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.peak
}

func (s *SoxExecutor) enter() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.inFlight++
	if s.inFlight > s.peak {
		s.peak = s.inFlight
	}
}

func (s *SoxExecutor) leave() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.inFlight--
}

// Calls returns every command line seen so far, binary first.
func (s *SoxExecutor) Calls() [][]string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	calls := make([][]string, len(s.calls))
	copy(calls, s.calls)
	return calls
}

type soxCommand struct {
	owner       *SoxExecutor
	args        []string
	dir         string
	unavailable bool
	fail        bool
}

func (c *soxCommand) SetDir(dir string) {
	c.dir = dir
}

func (c *soxCommand) CombinedOutput() ([]byte, error) {
	c.owner.enter()
	defer c.owner.leave()

	if c.owner.Delay > 0 {
		time.Sleep(c.owner.Delay)
	}

	if c.unavailable || c.fail {
		return []byte("sox FAIL formats: can't open input file"), ToolCrashed
	}

	src, dst, prefix, ok := c.parse()
	if !ok {
		return []byte("sox FAIL: unrecognized arguments"), ToolCrashed
	}

	contents, err := os.ReadFile(src)
	if err != nil {
		return []byte(err.Error()), ToolCrashed
	}

	if err := os.WriteFile(dst, append([]byte(prefix), contents...), 0o644); err != nil {
		return []byte(err.Error()), ToolCrashed
	}

	return nil, nil
}

func (c *soxCommand) parse() (src string, dst string, prefix string, ok bool) {
	switch {
	case len(c.args) >= 5 && c.args[2] == "trim":
		return c.args[0], c.args[1], "trimmed " + c.args[4] + ":", true
	case len(c.args) >= 5 && c.args[1] == "-c" && c.args[4] == "silence":
		return c.args[0], c.args[3], "silenced:", true
	default:
		return "", "", "", false
	}
}
