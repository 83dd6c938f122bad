package instrument_test

import (
	"math/rand"

	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-curator/src/curator/internal/instrument"
	. "github.com/veedubyou/stem-curator/src/shared/testing"
	"github.com/veedubyou/stem-curator/src/shared/track/entity"
)

func track(id string, bleed bool, instruments ...string) trackentity.Track {
	stems := []trackentity.Stem{}
	for i, label := range instruments {
		stems = append(stems, trackentity.Stem{
			Instrument: label,
			FilePath:   id + "/" + label + string(rune('0'+i)) + ".wav",
		})
	}

	return trackentity.Track{ID: id, HasBleed: bleed, Stems: stems}
}

var _ = Describe("Instrument selection", func() {
	var tracks []trackentity.Track

	BeforeEach(func() {
		tracks = []trackentity.Track{
			track("T1", false, "guitar"),
			track("T2", false, "guitar", "vocal"),
			track("T3", true, "vocal"),
		}
	})

	Describe("Select", func() {
		It("keeps only instruments with enough bleed-free tracks", func() {
			Expect(instrument.Select(tracks, 2)).To(Equal(instrument.NewSet("guitar")))
		})

		It("returns everything seen at a threshold of one", func() {
			Expect(instrument.Select(tracks, 1).Sorted()).To(Equal([]string{"guitar", "vocal"}))
		})

		It("returns an empty set when the threshold is above every count", func() {
			Expect(instrument.Select(tracks, 3)).To(BeEmpty())
		})

		It("never selects an instrument that only appears in bleeding tracks", func() {
			tracks = append(tracks, track("T4", true, "theremin"), track("T5", true, "theremin"))
			Expect(instrument.Select(tracks, 1).Contains("theremin")).To(BeFalse())
		})
	})

	Describe("Counts", func() {
		It("counts a repeated instrument once per track", func() {
			counts := instrument.Counts([]trackentity.Track{track("T1", false, "A", "A", "B")})
			Expect(counts).To(Equal(map[string]int{"A": 1, "B": 1}))
		})

		It("ignores bleeding tracks entirely", func() {
			counts := instrument.Counts([]trackentity.Track{track("T1", true, "A", "B")})
			Expect(counts).To(BeEmpty())
		})

		It("agrees with Select for every threshold", func() {
			rng := rand.New(rand.NewSource(7))
			labels := []string{"bass", "drums", "flute", "piano", "violin"}

			generated := []trackentity.Track{}
			for i := 0; i < 40; i++ {
				instruments := []string{}
				for j := rng.Intn(5); j >= 0; j-- {
					instruments = append(instruments, labels[rng.Intn(len(labels))])
				}
				generated = append(generated, track(string(rune('a'+i%26))+string(rune('0'+i/26)), rng.Intn(4) == 0, instruments...))
			}

			counts := map[string]int{}
			for _, t := range generated {
				if t.HasBleed {
					continue
				}
				seen := map[string]bool{}
				for _, stem := range t.Stems {
					if !seen[stem.Instrument] {
						seen[stem.Instrument] = true
						counts[stem.Instrument]++
					}
				}
			}
			Expect(instrument.Counts(generated)).To(Equal(counts))

			for m := 1; m <= 40; m++ {
				selected := instrument.Select(generated, m)
				for _, label := range labels {
					Expect(selected.Contains(label)).To(Equal(counts[label] >= m), "label %s at threshold %d", label, m)
				}
			}
		})
	})

	Describe("Resolve", func() {
		It("derives the set from the tracks", func() {
			set := ExpectSuccess(instrument.Resolve(instrument.Derive{MinSources: 2}, tracks))
			Expect(set.Sorted()).To(Equal([]string{"guitar"}))
		})

		It("passes an explicit list through without checking the metadata", func() {
			set := ExpectSuccess(instrument.Resolve(instrument.Explicit{Instruments: []string{"kazoo", "vocal"}}, tracks))
			Expect(set.Sorted()).To(Equal([]string{"kazoo", "vocal"}))
		})

		It("rejects a threshold below one", func() {
			_, err := instrument.Resolve(instrument.Derive{MinSources: 0}, tracks)
			Expect(markers.Is(err, instrument.InvalidThreshold)).To(BeTrue())
		})
	})
})
