package trackentity

// Track is one multitrack recording as described by the metadata source.
// HasBleed marks recordings whose stems leak into each other.
type Track struct {
	ID       string
	HasBleed bool
	Stems    []Stem
}

// Stem is the single-instrument component of a track.
type Stem struct {
	Instrument string
	FilePath   string
}

// CleanTracks drops every track with bleed, keeping order.
func CleanTracks(tracks []Track) []Track {
	clean := make([]Track, 0, len(tracks))
	for _, track := range tracks {
		if !track.HasBleed {
			clean = append(clean, track)
		}
	}

	return clean
}

// Instruments lists the distinct instrument labels of the track in stem order.
func (t Track) Instruments() []string {
	seen := map[string]bool{}
	instruments := []string{}

	for _, stem := range t.Stems {
		if seen[stem.Instrument] {
			continue
		}

		seen[stem.Instrument] = true
		instruments = append(instruments, stem.Instrument)
	}

	return instruments
}
