// Package report collects per-unit outcomes of a curation run. A unit is
// whatever the command treats as independently failable: a stem, a category
// or a file.
package report

import (
	"sort"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
)

type Status string

const (
	StatusOK      Status = "ok"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

type Unit struct {
	Name   string
	Status Status
	Files  int
	Err    error
}

type Counts struct {
	OK      int
	Failed  int
	Skipped int
	Files   int
}

// Summary is safe for concurrent use.
type Summary struct {
	operation string
	startedAt time.Time

	mutex sync.Mutex
	units []Unit
}

func NewSummary(operation string) *Summary {
	return &Summary{
		operation: operation,
		startedAt: time.Now(),
	}
}

func (s *Summary) Add(unit Unit) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.units = append(s.units, unit)
}

func (s *Summary) OK(name string, files int) {
	s.Add(Unit{Name: name, Status: StatusOK, Files: files})
}

func (s *Summary) Fail(name string, err error) {
	s.Add(Unit{Name: name, Status: StatusFailed, Err: err})
}

func (s *Summary) Skip(name string) {
	s.Add(Unit{Name: name, Status: StatusSkipped})
}

// Units returns every unit ordered by name.
func (s *Summary) Units() []Unit {
	s.mutex.Lock()
	units := make([]Unit, len(s.units))
	copy(units, s.units)
	s.mutex.Unlock()

	sort.SliceStable(units, func(i, j int) bool {
		return units[i].Name < units[j].Name
	})

	return units
}

func (s *Summary) Failed() []Unit {
	failed := []Unit{}
	for _, unit := range s.Units() {
		if unit.Status == StatusFailed {
			failed = append(failed, unit)
		}
	}

	return failed
}

func (s *Summary) Counts() Counts {
	counts := Counts{}
	for _, unit := range s.Units() {
		switch unit.Status {
		case StatusOK:
			counts.OK++
		case StatusFailed:
			counts.Failed++
		case StatusSkipped:
			counts.Skipped++
		}
		counts.Files += unit.Files
	}

	return counts
}

// Err is nil when no unit failed. Otherwise it wraps the first failure by
// name and carries the remaining ones as secondary errors.
func (s *Summary) Err() error {
	failed := s.Failed()
	if len(failed) == 0 {
		return nil
	}

	first := failed[0]
	err := cerr.Fields(cerr.F{
		"operation": s.operation,
		"unit":      first.Name,
		"failed":    len(failed),
	}).Wrap(first.Err).Error(s.operation + " failed")

	for _, unit := range failed[1:] {
		err = errors.WithSecondaryError(err, cerr.Field("unit", unit.Name).Wrap(unit.Err).Error("Unit failed"))
	}

	return err
}

func (s *Summary) Log() {
	for _, unit := range s.Failed() {
		fields := cerr.CollectFields(unit.Err)
		fields["unit"] = unit.Name

		log.WithFields(log.Fields(fields)).
			WithError(unit.Err).
			Error("Unit failed")
	}

	counts := s.Counts()
	logger := log.WithFields(log.Fields{
		"operation": s.operation,
		"ok":        counts.OK,
		"failed":    counts.Failed,
		"skipped":   counts.Skipped,
		"files":     counts.Files,
		"elapsed":   time.Since(s.startedAt).Round(time.Millisecond).String(),
	})

	if counts.Failed > 0 {
		logger.Warn("Finished with failures")
		return
	}

	logger.Info("Finished")
}
