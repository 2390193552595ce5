package caststate

import (
	"io"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/castbridge/castbridge/castprotocol"
	"github.com/rs/zerolog"
)

// volumeUnset marks the cached volume slot before the first volume message.
const volumeUnset = -1

// StatusUpdater translates device-status snapshots into channel states on
// the injected sink. It never queries the device itself; message delivery,
// scheduling and reconnects happen elsewhere.
//
// It keeps a little state of its own: the last published volume percent,
// the app session id (only while an application is reported running) and
// the last-seen image source URL.
type StatusUpdater struct {
	sink    Sink
	fetcher Fetcher

	// Location is the zone date-typed metadata channels are rendered in.
	// Defaults to the system zone when nil.
	Location *time.Location

	appSessionID string
	imageSrc     string
	volume       atomic.Int32

	Logger      zerolog.Logger
	LogOutput   io.Writer
	initLogOnce sync.Once
}

// NewStatusUpdater returns an updater publishing into sink. fetcher resolves
// image URLs for the image channel and may be nil when no binary image
// resolution is available.
func NewStatusUpdater(sink Sink, fetcher Fetcher) *StatusUpdater {
	u := &StatusUpdater{
		sink:    sink,
		fetcher: fetcher,
	}
	u.volume.Store(volumeUnset)

	return u
}

// Log returns the zerolog logger, initializing it lazily if LogOutput is set.
func (u *StatusUpdater) Log() *zerolog.Logger {
	if u.LogOutput != nil {
		u.initLogOnce.Do(func() {
			u.Logger = zerolog.New(u.LogOutput).With().Timestamp().Logger()
		})
	}
	return &u.Logger
}

// Volume returns the last published volume percent. The second return is
// false before the first volume message of the session. Safe to call
// concurrently with status processing.
func (u *StatusUpdater) Volume() (int, bool) {
	v := u.volume.Load()
	if v == volumeUnset {
		return 0, false
	}
	return int(v), true
}

// AppSessionID returns the session id of the running application, or the
// empty string when none is running.
func (u *StatusUpdater) AppSessionID() string {
	return u.appSessionID
}

// SetAppSessionID records the session id of an application the command path
// launched itself.
func (u *StatusUpdater) SetAppSessionID(id string) {
	u.appSessionID = id
}

// ProcessStatusUpdate maps a top-level device status onto the connectivity,
// application and volume channels. A nil status means the device went away:
// connectivity goes offline and the app projection is cleared. The call is
// total, there are no error conditions.
func (u *StatusUpdater) ProcessStatusUpdate(status *castprotocol.DeviceStatus) {
	if status == nil {
		u.sink.SetConnectivity(ConnectivityOffline)
		u.UpdateAppStatus(nil)
		u.UpdateVolumeStatus(nil)
		return
	}

	if len(status.Applications) == 0 {
		u.appSessionID = ""
	}

	u.sink.SetConnectivity(ConnectivityOnline)
	u.UpdateAppStatus(status.RunningApp())
	u.UpdateVolumeStatus(status.Volume)
}

// UpdateAppStatus projects the running application onto the four app
// channels. All four are always re-emitted; with no application running the
// device is showing its idle screen, so idling defaults to on.
func (u *StatusUpdater) UpdateAppStatus(app *castprotocol.Application) {
	name := Undef
	id := Undef
	statusText := Undef
	idling := On

	if app != nil {
		name = StringState(app.DisplayName)
		id = StringState(app.AppID)
		statusText = StringState(app.StatusText)
		idling = OnOffState(app.IsIdleScreen)
	}

	u.sink.UpdateState(ChannelAppName, name)
	u.sink.UpdateState(ChannelAppID, id)
	u.sink.UpdateState(ChannelStatusText, statusText)
	u.sink.UpdateState(ChannelIdling, idling)
}

// UpdateVolumeStatus publishes the device volume as a percent plus a mute
// flag and caches the percent. A nil volume message is a no-op, not a reset.
func (u *StatusUpdater) UpdateVolumeStatus(volume *castprotocol.Volume) {
	if volume == nil {
		return
	}

	percent := int(math.Round(float64(volume.Level) * 100))
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	u.volume.Store(int32(percent))

	u.sink.UpdateState(ChannelVolume, PercentState(percent))
	u.sink.UpdateState(ChannelMute, OnOffState(volume.Muted))
}

// UpdateMediaStatus maps a media status onto the control, position and
// metadata-derived channels.
func (u *StatusUpdater) UpdateMediaStatus(status *castprotocol.MediaStatus) {
	u.Log().Debug().Str("Method", "UpdateMediaStatus").Interface("Status", status).Msg("media status received")

	// No media status at all: the receiver is between tracks or idle.
	if status == nil {
		u.sink.UpdateState(ChannelCurrentTime, Undef)
		u.updateMediaInfo(nil)
		return
	}

	switch status.PlayerState {
	case castprotocol.PlayerStateIdle:
	case castprotocol.PlayerStatePaused:
		u.sink.UpdateState(ChannelControl, Pause)
	case castprotocol.PlayerStateBuffering, castprotocol.PlayerStatePlaying:
		u.sink.UpdateState(ChannelControl, Play)
	default:
		u.Log().Debug().Str("Method", "UpdateMediaStatus").Str("PlayerState", string(status.PlayerState)).Msg("unknown player state")
	}

	u.sink.UpdateState(ChannelCurrentTime, DecimalState(status.CurrentTime))

	// An active player state without a media payload is a transient gap
	// between tracks; keep the metadata channels as they are.
	if status.Media == nil && (status.PlayerState == castprotocol.PlayerStatePlaying ||
		status.PlayerState == castprotocol.PlayerStatePaused ||
		status.PlayerState == castprotocol.PlayerStateBuffering) {
		return
	}

	u.updateMediaInfo(status.Media)
}

func (u *StatusUpdater) location() *time.Location {
	if u.Location != nil {
		return u.Location
	}
	return time.Local
}
