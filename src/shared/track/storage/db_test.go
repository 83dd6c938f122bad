package trackstorage_test

import (
	"context"

	"github.com/cockroachdb/errors/markers"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/veedubyou/stem-curator/src/shared/testing"
	"github.com/veedubyou/stem-curator/src/shared/track/entity"
	"github.com/veedubyou/stem-curator/src/shared/track/storage"
)

var _ = Describe("Track DB", func() {
	var (
		trackDB trackstorage.DB
		ctx     context.Context
	)

	BeforeEach(func() {
		if !dynamoSet {
			Skip("DYNAMO_TEST_HOST is not set")
		}

		ResetDB(db)
		trackDB = trackstorage.NewDB(db, "")
		ctx = context.Background()
	})

	Describe("With tracks in the catalog", func() {
		BeforeEach(func() {
			By("Putting tracks out of order")
			Expect(trackDB.PutTrack(ctx, trackentity.Track{
				ID:       "T2",
				HasBleed: false,
				Stems: []trackentity.Stem{
					{Instrument: "guitar", FilePath: "/audio/T2/guitar.wav"},
					{Instrument: "vocal", FilePath: "/audio/T2/vocal.wav"},
				},
			})).To(Succeed())

			Expect(trackDB.PutTrack(ctx, trackentity.Track{
				ID:       "T1",
				HasBleed: true,
				Stems:    []trackentity.Stem{},
			})).To(Succeed())
		})

		It("lists them ordered by ID", func() {
			tracks := ExpectSuccess(trackDB.ListTracks(ctx))
			Expect(tracks).To(HaveLen(2))
			Expect(tracks[0].ID).To(Equal("T1"))
			Expect(tracks[0].HasBleed).To(BeTrue())
			Expect(tracks[0].Stems).To(BeEmpty())

			Expect(tracks[1]).To(Equal(trackentity.Track{
				ID:       "T2",
				HasBleed: false,
				Stems: []trackentity.Stem{
					{Instrument: "guitar", FilePath: "/audio/T2/guitar.wav"},
					{Instrument: "vocal", FilePath: "/audio/T2/vocal.wav"},
				},
			}))
		})
	})

	Describe("PutTrack", func() {
		It("rejects a track without an ID", func() {
			err := trackDB.PutTrack(ctx, trackentity.Track{})
			Expect(markers.Is(err, trackstorage.UnmarshalMark)).To(BeTrue())
		})
	})

	Describe("Without the table", func() {
		BeforeEach(func() {
			DeleteAllTables(db)
		})

		It("returns a marked error", func() {
			_, err := trackDB.ListTracks(ctx)
			Expect(err).To(HaveOccurred())
			Expect(markers.Is(err, trackstorage.MetadataUnreadable)).To(BeTrue())
		})
	})
})
