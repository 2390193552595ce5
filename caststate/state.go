package caststate

import "time"

// Connectivity mirrors whether the device session behind the updater is
// currently reachable.
type Connectivity int

const (
	ConnectivityOffline Connectivity = iota
	ConnectivityOnline
)

func (c Connectivity) String() string {
	if c == ConnectivityOnline {
		return "ONLINE"
	}
	return "OFFLINE"
}

// State is one typed channel value. The set of implementations is closed;
// sinks switch over the concrete types.
type State interface {
	isState()
}

// UndefType is the "no value" state. Channels are set to Undef whenever the
// device stops reporting the underlying data.
type UndefType struct{}

func (UndefType) isState() {}

// Undef is the shared undefined state value.
var Undef State = UndefType{}

// StringState is a plain text channel value.
type StringState string

func (StringState) isState() {}

// DecimalState is a numeric channel value. Integers are promoted to the
// same representation, there is no separate integer state.
type DecimalState float64

func (DecimalState) isState() {}

// PercentState is an integer percentage in [0,100].
type PercentState int

func (PercentState) isState() {}

// OnOffState is a boolean channel value.
type OnOffState bool

func (OnOffState) isState() {}

const (
	On  OnOffState = true
	Off OnOffState = false
)

// PlayPauseState is the playback control signal.
type PlayPauseState string

func (PlayPauseState) isState() {}

const (
	Play  PlayPauseState = "PLAY"
	Pause PlayPauseState = "PAUSE"
)

// DateTimeState is a point in time carrying its rendering zone.
type DateTimeState time.Time

func (DateTimeState) isState() {}

// PointState is a combined latitude/longitude pair.
type PointState struct {
	Lat float64
	Lon float64
}

func (PointState) isState() {}

// Image is binary image content plus its sniffed MIME type.
type Image struct {
	Data     []byte
	MIMEType string
}

// ImageState is a resolved image channel value.
type ImageState Image

func (ImageState) isState() {}
