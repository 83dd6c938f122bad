package trackentity_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/veedubyou/stem-curator/src/shared/track/entity"
)

var _ = Describe("Track", func() {
	Describe("Instruments", func() {
		It("lists each label once in stem order", func() {
			track := trackentity.Track{
				ID: "T1",
				Stems: []trackentity.Stem{
					{Instrument: "guitar", FilePath: "a.wav"},
					{Instrument: "bass", FilePath: "b.wav"},
					{Instrument: "guitar", FilePath: "c.wav"},
				},
			}

			Expect(track.Instruments()).To(Equal([]string{"guitar", "bass"}))
		})

		It("is empty for a track without stems", func() {
			Expect(trackentity.Track{ID: "T1"}.Instruments()).To(BeEmpty())
		})
	})

	Describe("CleanTracks", func() {
		It("drops bleeding tracks and keeps order", func() {
			tracks := []trackentity.Track{
				{ID: "T1"},
				{ID: "T2", HasBleed: true},
				{ID: "T3"},
			}

			clean := trackentity.CleanTracks(tracks)
			Expect(clean).To(HaveLen(2))
			Expect(clean[0].ID).To(Equal("T1"))
			Expect(clean[1].ID).To(Equal("T3"))
		})
	})
})
