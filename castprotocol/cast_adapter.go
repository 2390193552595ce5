package castprotocol

import (
	"github.com/vishen/go-chromecast/cast"
)

// FromCastStatus translates the application/media/volume triple returned by
// a go-chromecast session into this package's snapshot messages, so a live
// session can drive the status updater directly. Any of the three inputs
// may be nil.
func FromCastStatus(app *cast.Application, media *cast.Media, vol *cast.Volume) (*DeviceStatus, *MediaStatus) {
	device := &DeviceStatus{}

	if app != nil {
		device.Applications = []Application{{
			AppID:        app.AppId,
			DisplayName:  app.DisplayName,
			StatusText:   app.StatusText,
			SessionID:    app.SessionId,
			TransportID:  app.TransportId,
			IsIdleScreen: app.IsIdleScreen,
		}}
	}

	if vol != nil {
		device.Volume = &Volume{
			Level: vol.Level,
			Muted: vol.Muted,
		}
	}

	if media == nil {
		return device, nil
	}

	status := &MediaStatus{
		PlayerState: PlayerState(media.PlayerState),
		CurrentTime: media.CurrentTime,
	}

	// A zero item means the receiver reported no media payload with this
	// status, which the mapper treats differently from an empty one.
	if media.Media.ContentId == "" && media.Media.Duration == 0 {
		return device, status
	}

	item := &Media{
		ContentID:   media.Media.ContentId,
		ContentType: media.Media.ContentType,
		StreamType:  media.Media.StreamType,
		Metadata:    map[string]any{},
	}

	if media.Media.Duration > 0 {
		duration := media.Media.Duration
		item.Duration = &duration
	}

	if media.Media.Metadata.Title != "" {
		item.Metadata["title"] = media.Media.Metadata.Title
	}
	if media.Media.Metadata.Artist != "" {
		item.Metadata["artist"] = media.Media.Metadata.Artist
	}
	if media.Media.Metadata.Subtitle != "" {
		item.Metadata["subtitle"] = media.Media.Metadata.Subtitle
	}

	status.Media = item

	return device, status
}
