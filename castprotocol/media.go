package castprotocol

// PlayerState is the media player state reported in a MEDIA_STATUS message.
type PlayerState string

const (
	PlayerStateIdle      PlayerState = "IDLE"
	PlayerStatePaused    PlayerState = "PAUSED"
	PlayerStateBuffering PlayerState = "BUFFERING"
	PlayerStatePlaying   PlayerState = "PLAYING"
)

// MediaStatus is a point-in-time MEDIA_STATUS snapshot pushed by the device.
// Media may be nil while the receiver is between tracks.
type MediaStatus struct {
	PlayerState PlayerState `json:"playerState"`
	CurrentTime float32     `json:"currentTime"` // playback position in seconds
	Media       *Media      `json:"media,omitempty"`
}

// Media describes the currently loaded item. Duration is nil when a new
// track is about to play - that is a valid transient state, not an error.
// Metadata is the free-form key-value payload describing the item.
type Media struct {
	ContentID   string         `json:"contentId,omitempty"`
	ContentType string         `json:"contentType,omitempty"`
	StreamType  string         `json:"streamType,omitempty"`
	Duration    *float32       `json:"duration,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// MetadataType is the enumerated media category carried in the metadata
// payload under the "metadataType" key.
type MetadataType int

const (
	MetadataGeneric MetadataType = iota
	MetadataMovie
	MetadataTVShow
	MetadataMusicTrack
	MetadataPhoto
)

var metadataTypeNames = map[MetadataType]string{
	MetadataGeneric:    "GENERIC",
	MetadataMovie:      "MOVIE",
	MetadataTVShow:     "TV_SHOW",
	MetadataMusicTrack: "MUSIC_TRACK",
	MetadataPhoto:      "PHOTO",
}

func (t MetadataType) String() string {
	if name, ok := metadataTypeNames[t]; ok {
		return name
	}
	return metadataTypeNames[MetadataGeneric]
}

// MetadataKind returns the media category, defaulting to GENERIC when the
// media or its metadata payload is absent or carries no recognizable type.
func (m *Media) MetadataKind() MetadataType {
	if m == nil || m.Metadata == nil {
		return MetadataGeneric
	}

	switch v := m.Metadata["metadataType"].(type) {
	case float64:
		// JSON numbers decode as float64.
		return metadataTypeFromInt(int(v))
	case int:
		return metadataTypeFromInt(v)
	default:
		return MetadataGeneric
	}
}

func metadataTypeFromInt(v int) MetadataType {
	t := MetadataType(v)
	if _, ok := metadataTypeNames[t]; !ok {
		return MetadataGeneric
	}
	return t
}
