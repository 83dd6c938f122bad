package trackstorage

import (
	"context"
	"sort"

	"github.com/apex/log"
	"github.com/cockroachdb/errors/markers"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
	"github.com/veedubyou/stem-curator/src/shared/lib/dynamo"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
	"github.com/veedubyou/stem-curator/src/shared/track/entity"
)

const (
	DefaultTracksTable = "Tracks"
)

var _ trackentity.Source = DB{}

// DB reads the track catalog out of a DynamoDB table keyed by track_id.
type DB struct {
	dynamoDB  dynamolib.DynamoDBWrapper
	tableName string
}

func NewDB(dynamoDB dynamolib.DynamoDBWrapper, tableName string) DB {
	if tableName == "" {
		tableName = DefaultTracksTable
	}

	return DB{
		dynamoDB:  dynamoDB,
		tableName: tableName,
	}
}

func (d DB) ListTracks(ctx context.Context) ([]trackentity.Track, error) {
	errctx := cerr.Field("table", d.tableName)

	values := []dbTrack{}
	err := d.dynamoDB.Table(d.tableName).
		Scan().
		AllWithContext(ctx, &values)

	if err != nil {
		if markers.Is(err, UnmarshalMark) {
			return nil, mark.Wrap(errctx.Wrap(err).Error("Failed to read track catalog"),
				MetadataUnreadable, "A catalog item is malformed")
		}

		return nil, mark.Wrap(errctx.Wrap(err).Error("Failed to scan track catalog"),
			MetadataUnreadable, "Track catalog is unreadable")
	}

	sort.Slice(values, func(i, j int) bool {
		return values[i].TrackID < values[j].TrackID
	})

	tracks := make([]trackentity.Track, 0, len(values))
	for _, value := range values {
		tracks = append(tracks, value.toEntity())
	}

	log.WithFields(log.Fields{
		"table":  d.tableName,
		"tracks": len(tracks),
	}).Debug("Loaded track catalog")

	return tracks, nil
}

// PutTrack writes one track into the catalog, replacing any item with the
// same ID.
func (d DB) PutTrack(ctx context.Context, track trackentity.Track) error {
	if track.ID == "" {
		return mark.Message(UnmarshalMark, "Track ID is not defined")
	}

	err := d.dynamoDB.Table(d.tableName).Put(fromEntity(track)).RunWithContext(ctx)
	if err != nil {
		return mark.Wrap(cerr.Field("track_id", track.ID).Wrap(err).Error("Failed to put the track in the DB"),
			DefaultErrorMark, "Failed to write track catalog")
	}

	return nil
}
