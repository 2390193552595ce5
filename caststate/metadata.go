package caststate

import (
	"time"

	"github.com/castbridge/castbridge/castprotocol"
	"github.com/go-viper/mapstructure/v2"
)

// updateMediaInfo projects the media item onto the duration and
// metadata-type channels and hands its metadata payload to the sub-mappers.
// A nil media clears everything metadata-derived.
func (u *StatusUpdater) updateMediaInfo(media *castprotocol.Media) {
	duration := Undef
	metadataType := castprotocol.MetadataGeneric

	if media != nil {
		metadataType = media.MetadataKind()

		// Duration is missing while the next track is being prepared.
		if media.Duration != nil {
			duration = DecimalState(*media.Duration)
		}
	}

	u.sink.UpdateState(ChannelDuration, duration)
	u.sink.UpdateState(ChannelMetadataType, StringState(metadataType.String()))

	metadata := map[string]any{}
	if media != nil && media.Metadata != nil {
		metadata = media.Metadata
	}

	u.updateMetadata(metadata)
}

func (u *StatusUpdater) updateMetadata(metadata map[string]any) {
	u.updateLocation(metadata)
	u.updateImage(metadata)

	for _, channel := range u.sink.Channels() {
		if !IsSimpleMetadataChannel(channel) {
			continue
		}
		u.updateSimpleChannel(channel, metadata)
	}
}

// The two coordinate keys collapse into the single location channel, the
// one many-to-one projection in the model.
func (u *StatusUpdater) updateLocation(metadata map[string]any) {
	if !u.sink.IsLinked(ChannelLocation) {
		return
	}

	lat, latOK := metadata[metadataKeyLatitude].(float64)
	lon, lonOK := metadata[metadataKeyLongitude].(float64)

	if !latOK || !lonOK {
		u.sink.UpdateState(ChannelLocation, Undef)
		return
	}

	u.sink.UpdateState(ChannelLocation, PointState{Lat: lat, Lon: lon})
}

type imageRef struct {
	URL string `mapstructure:"url"`
}

// firstImageURL picks the first usable source out of the "images" metadata
// entry, or "" when the list is absent, empty or has no url field anywhere.
func (u *StatusUpdater) firstImageURL(metadata map[string]any) string {
	images, ok := metadata[metadataKeyImages]
	if !ok || images == nil {
		return ""
	}

	var refs []imageRef
	if err := mapstructure.Decode(images, &refs); err != nil {
		u.Log().Debug().Str("Method", "firstImageURL").Err(err).Msg("unusable images metadata entry")
		return ""
	}

	for _, ref := range refs {
		if ref.URL != "" {
			return ref.URL
		}
	}

	return ""
}

// updateImage feeds both image channels off the "images" metadata key
// (whose name matches neither channel).
func (u *StatusUpdater) updateImage(metadata map[string]any) {
	if !u.sink.IsLinked(ChannelImage) && !u.sink.IsLinked(ChannelImageSrc) {
		return
	}

	src := u.firstImageURL(metadata)

	// Same source as last time, nothing to do. The cache is keyed on the
	// URL alone, ignoring linked-state changes in between.
	if src == u.imageSrc {
		return
	}
	u.imageSrc = src

	if u.sink.IsLinked(ChannelImageSrc) {
		if src == "" {
			u.sink.UpdateState(ChannelImageSrc, Undef)
		} else {
			u.sink.UpdateState(ChannelImageSrc, StringState(src))
		}
	}

	if u.sink.IsLinked(ChannelImage) {
		u.sink.UpdateState(ChannelImage, u.resolveImage(src))
	}
}

func (u *StatusUpdater) resolveImage(src string) State {
	if src == "" {
		return Undef
	}

	if u.fetcher == nil {
		u.Log().Debug().Str("Method", "resolveImage").Str("URL", src).Msg("no image fetcher configured")
		return Undef
	}

	img, err := u.fetcher.Fetch(src)
	if err != nil {
		u.Log().Warn().Str("Method", "resolveImage").Str("URL", src).Err(err).Msg("image fetch failed")
		return Undef
	}

	return ImageState(*img)
}

func (u *StatusUpdater) updateSimpleChannel(channel string, metadata map[string]any) {
	if !u.sink.IsLinked(channel) {
		return
	}

	u.sink.UpdateState(channel, u.coerce(channel, u.metadataValue(channel, metadata)))
}

// metadataValue looks a channel's value up by its own identifier. The three
// date channels carry ISO-8601 instants as strings and are converted to the
// configured zone before coercion; a malformed date degrades to absent with
// a diagnostic rather than failing the update.
func (u *StatusUpdater) metadataValue(channel string, metadata map[string]any) Value {
	if !isDateChannel(channel) {
		return valueOf(metadata[channel])
	}

	raw, ok := metadata[channel]
	if !ok || raw == nil {
		return absentValue()
	}

	dateString, ok := raw.(string)
	if !ok {
		u.Log().Warn().Str("Method", "metadataValue").Str("Channel", channel).Interface("Value", raw).Msg("date field is not a string")
		return absentValue()
	}

	t, err := time.Parse(time.RFC3339, dateString)
	if err != nil {
		u.Log().Warn().Str("Method", "metadataValue").Str("Channel", channel).Str("Value", dateString).Err(err).Msg("unparsable date field")
		return absentValue()
	}

	return dateTimeValue(t.In(u.location()))
}
