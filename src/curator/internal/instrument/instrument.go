// Package instrument decides which instrument labels are worth extracting.
package instrument

import (
	"sort"

	"github.com/apex/log"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
	"github.com/veedubyou/stem-curator/src/shared/track/entity"
)

// Set is a set of instrument labels.
type Set map[string]bool

func NewSet(labels ...string) Set {
	set := Set{}
	for _, label := range labels {
		set[label] = true
	}

	return set
}

func (s Set) Contains(label string) bool {
	return s[label]
}

func (s Set) Sorted() []string {
	labels := make([]string, 0, len(s))
	for label := range s {
		labels = append(labels, label)
	}

	sort.Strings(labels)
	return labels
}

// Counts maps each label to the number of bleed-free tracks containing it.
// A track with the same instrument on several stems counts once.
func Counts(tracks []trackentity.Track) map[string]int {
	counts := map[string]int{}
	for _, track := range trackentity.CleanTracks(tracks) {
		for _, label := range track.Instruments() {
			counts[label]++
		}
	}

	return counts
}

// Select returns the labels found in at least minSources bleed-free tracks.
func Select(tracks []trackentity.Track, minSources int) Set {
	counts := Counts(tracks)

	log.WithFields(log.Fields{
		"counts": counts,
	}).Debug("Counted instrument sources")

	selected := Set{}
	for label, count := range counts {
		if count >= minSources {
			selected[label] = true
		}
	}

	return selected
}

// Selection is either Derive or Explicit.
type Selection interface {
	selection()
}

var _ Selection = Derive{}

// Derive picks every instrument with at least MinSources bleed-free tracks.
type Derive struct {
	MinSources int
}

func (Derive) selection() {}

var _ Selection = Explicit{}

// Explicit uses Instruments as given, whether or not the metadata knows them.
type Explicit struct {
	Instruments []string
}

func (Explicit) selection() {}

// Resolve turns a selection into the set of labels to extract.
func Resolve(selection Selection, tracks []trackentity.Track) (Set, error) {
	switch t := selection.(type) {
	case Explicit:
		return NewSet(t.Instruments...), nil

	case Derive:
		if t.MinSources < 1 {
			return nil, mark.Messagef(InvalidThreshold, "Minimum source count must be at least 1, got %d", t.MinSources)
		}
		return Select(tracks, t.MinSources), nil

	default:
		return nil, mark.Message(InvalidThreshold, "Unrecognized instrument selection")
	}
}
