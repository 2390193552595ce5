package caststate

// Channel identifiers produced by the status updater. The names are stable,
// external sinks key their slots off them.
const (
	ChannelAppName    = "appName"
	ChannelAppID      = "appId"
	ChannelStatusText = "statusText"
	ChannelIdling     = "idling"

	ChannelVolume = "volume"
	ChannelMute   = "mute"

	ChannelControl      = "control"
	ChannelCurrentTime  = "currentTime"
	ChannelDuration     = "duration"
	ChannelMetadataType = "metadataType"

	ChannelLocation = "location"
	ChannelImage    = "image"
	ChannelImageSrc = "imageSrc"

	ChannelAlbumArtist   = "albumArtist"
	ChannelAlbumName     = "albumName"
	ChannelArtist        = "artist"
	ChannelBroadcastDate = "broadcastDate"
	ChannelComposer      = "composer"
	ChannelCreationDate  = "creationDate"
	ChannelDiscNumber    = "discNumber"
	ChannelEpisodeNumber = "episodeNumber"
	ChannelLocationName  = "locationName"
	ChannelReleaseDate   = "releaseDate"
	ChannelSeasonNumber  = "seasonNumber"
	ChannelSeriesTitle   = "seriesTitle"
	ChannelStudio        = "studio"
	ChannelSubtitle      = "subtitle"
	ChannelTitle         = "title"
	ChannelTrackNumber   = "trackNumber"
)

// Metadata keys that feed special-cased channels. The location keys are
// combined into the single location channel and the images key feeds both
// image channels, so their names differ from the channels they drive.
const (
	metadataKeyLatitude  = "latitude"
	metadataKeyLongitude = "longitude"
	metadataKeyImages    = "images"
)

// simpleMetadataChannels are projected straight from the metadata payload,
// keyed by their own channel identifier.
var simpleMetadataChannels = map[string]struct{}{
	ChannelAlbumArtist:   {},
	ChannelAlbumName:     {},
	ChannelArtist:        {},
	ChannelBroadcastDate: {},
	ChannelComposer:      {},
	ChannelCreationDate:  {},
	ChannelDiscNumber:    {},
	ChannelEpisodeNumber: {},
	ChannelLocationName:  {},
	ChannelReleaseDate:   {},
	ChannelSeasonNumber:  {},
	ChannelSeriesTitle:   {},
	ChannelStudio:        {},
	ChannelSubtitle:      {},
	ChannelTitle:         {},
	ChannelTrackNumber:   {},
}

// IsSimpleMetadataChannel reports whether the channel belongs to the
// generically projected metadata set.
func IsSimpleMetadataChannel(channel string) bool {
	_, ok := simpleMetadataChannels[channel]
	return ok
}

func isDateChannel(channel string) bool {
	return channel == ChannelBroadcastDate || channel == ChannelReleaseDate || channel == ChannelCreationDate
}
