package trackstorage

import (
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
	"github.com/veedubyou/stem-curator/src/shared/lib/dynamo"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
	"github.com/veedubyou/stem-curator/src/shared/track/entity"
)

const (
	idKey = "track_id"
)

var _ dynamo.ItemUnmarshaler = &dbTrack{}

type dbTrack struct {
	TrackID  string   `dynamo:"track_id,hash"`
	HasBleed bool     `dynamo:"has_bleed"`
	Stems    []dbStem `dynamo:"stems"`
}

type dbStem struct {
	Instrument string `dynamo:"instrument"`
	FilePath   string `dynamo:"file_path"`
}

// plainTrack has no unmarshal hook so decoding into it does not recurse
type plainTrack dbTrack

func (d *dbTrack) UnmarshalDynamoItem(dynamoItem map[string]*dynamodb.AttributeValue) error {
	if err := dynamolib.ValidateStringField(dynamoItem, idKey); err != nil {
		return mark.Wrap(err, UnmarshalMark, "Failed to validate id field")
	}

	plain := plainTrack{}
	err := dynamo.UnmarshalItem(dynamoItem, &plain)
	if err != nil {
		return mark.Wrap(err, UnmarshalMark, "Failed to unmarshal dynamo item")
	}

	*d = dbTrack(plain)

	return nil
}

func (d dbTrack) toEntity() trackentity.Track {
	stems := make([]trackentity.Stem, 0, len(d.Stems))
	for _, stem := range d.Stems {
		stems = append(stems, trackentity.Stem{
			Instrument: stem.Instrument,
			FilePath:   stem.FilePath,
		})
	}

	return trackentity.Track{
		ID:       d.TrackID,
		HasBleed: d.HasBleed,
		Stems:    stems,
	}
}

func fromEntity(track trackentity.Track) map[string]any {
	stems := make([]any, 0, len(track.Stems))
	for _, stem := range track.Stems {
		stems = append(stems, map[string]any{
			"instrument": stem.Instrument,
			"file_path":  stem.FilePath,
		})
	}

	return map[string]any{
		idKey:       track.ID,
		"has_bleed": track.HasBleed,
		"stems":     stems,
	}
}
