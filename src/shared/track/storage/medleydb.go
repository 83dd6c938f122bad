package trackstorage

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/apex/log"
	"github.com/cockroachdb/errors"
	"github.com/veedubyou/stem-curator/src/shared/lib/cerr"
	"github.com/veedubyou/stem-curator/src/shared/lib/errors/mark"
	"github.com/veedubyou/stem-curator/src/shared/track/entity"
	"gopkg.in/yaml.v3"
)

const (
	metadataDir    = "Metadata"
	audioDir       = "Audio"
	metadataSuffix = "_METADATA.yaml"
	stemsDirSuffix = "_STEMS"
)

var _ trackentity.Source = MedleyDB{}

// MedleyDB reads tracks from a MedleyDB checkout: one metadata file per track
// under Metadata/ and stems under Audio/<track>/<track>_STEMS/.
type MedleyDB struct {
	root string
}

func NewMedleyDB(root string) MedleyDB {
	return MedleyDB{root: root}
}

type medleyMetadata struct {
	HasBleed yesNo                     `yaml:"has_bleed"`
	StemDir  string                    `yaml:"stem_dir"`
	Stems    map[string]medleyStemInfo `yaml:"stems"`
}

type medleyStemInfo struct {
	Instrument string `yaml:"instrument"`
	Filename   string `yaml:"filename"`
}

// yesNo accepts both YAML booleans and the yes/no strings the dataset uses.
type yesNo bool

func (y *yesNo) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Newf("expected a scalar for yes/no value, got kind %d", value.Kind)
	}

	switch strings.ToLower(strings.TrimSpace(value.Value)) {
	case "yes", "true", "y":
		*y = true
	case "no", "false", "n", "":
		*y = false
	default:
		return errors.Newf("unrecognized yes/no value %q", value.Value)
	}

	return nil
}

func (m MedleyDB) ListTracks(ctx context.Context) ([]trackentity.Track, error) {
	dir := filepath.Join(m.root, metadataDir)
	paths, err := filepath.Glob(filepath.Join(dir, "*"+metadataSuffix))
	if err != nil {
		return nil, mark.Wrap(err, MetadataUnreadable, "Failed to list metadata files")
	}

	if len(paths) == 0 {
		_, statErr := os.Stat(dir)
		if statErr != nil {
			return nil, mark.Wrap(cerr.Field("dir", dir).Wrap(statErr).Error("Failed to open metadata directory"),
				MetadataUnreadable, "MedleyDB metadata is unreadable")
		}
	}

	sort.Strings(paths)

	tracks := make([]trackentity.Track, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "Stopped reading metadata")
		}

		track, err := m.readTrack(path)
		if err != nil {
			return nil, mark.Wrap(err, MetadataUnreadable, "MedleyDB metadata is unreadable")
		}

		tracks = append(tracks, track)
	}

	log.WithFields(log.Fields{
		"root":   m.root,
		"tracks": len(tracks),
	}).Debug("Loaded MedleyDB metadata")

	return tracks, nil
}

func (m MedleyDB) readTrack(path string) (trackentity.Track, error) {
	errctx := cerr.Field("metadata_file", path)

	contents, err := os.ReadFile(path)
	if err != nil {
		return trackentity.Track{}, errctx.Wrap(err).Error("Failed to read metadata file")
	}

	metadata := medleyMetadata{}
	if err := yaml.Unmarshal(contents, &metadata); err != nil {
		return trackentity.Track{}, mark.Wrap(errctx.Wrap(err).Error("Failed to parse metadata file"),
			UnmarshalMark, "Metadata file is malformed")
	}

	trackID := strings.TrimSuffix(filepath.Base(path), metadataSuffix)

	stemDir := metadata.StemDir
	if stemDir == "" {
		stemDir = trackID + stemsDirSuffix
	}
	stemRoot := filepath.Join(m.root, audioDir, trackID, stemDir)

	keys := make([]string, 0, len(metadata.Stems))
	for key := range metadata.Stems {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	stems := make([]trackentity.Stem, 0, len(keys))
	for _, key := range keys {
		info := metadata.Stems[key]
		if info.Filename == "" {
			return trackentity.Track{}, mark.Wrap(errctx.Field("stem", key).Error("Stem has no filename"),
				UnmarshalMark, "Metadata file is malformed")
		}

		stems = append(stems, trackentity.Stem{
			Instrument: info.Instrument,
			FilePath:   filepath.Join(stemRoot, info.Filename),
		})
	}

	return trackentity.Track{
		ID:       trackID,
		HasBleed: bool(metadata.HasBleed),
		Stems:    stems,
	}, nil
}
