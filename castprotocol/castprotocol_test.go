package castprotocol_test

import (
	"encoding/json"
	"testing"

	"github.com/castbridge/castbridge/castprotocol"
	"github.com/stretchr/testify/require"
)

func TestDeviceStatusDecode(t *testing.T) {
	raw := `{
		"applications": [{
			"appId": "CC1AD845",
			"displayName": "Default Media Receiver",
			"statusText": "Now Casting",
			"sessionId": "89cdb84f-3a04-4acc-a811-d62d2e1b8c68",
			"transportId": "web-5",
			"isIdleScreen": false
		}],
		"volume": {"level": 0.37, "muted": false}
	}`

	status := &castprotocol.DeviceStatus{}
	require.NoError(t, json.Unmarshal([]byte(raw), status))

	app := status.RunningApp()
	require.NotNil(t, app)
	require.Equal(t, "CC1AD845", app.AppID)
	require.Equal(t, "Default Media Receiver", app.DisplayName)
	require.False(t, app.IsIdleScreen)

	require.NotNil(t, status.Volume)
	require.InDelta(t, 0.37, float64(status.Volume.Level), 0.0001)
}

func TestRunningAppAbsent(t *testing.T) {
	require.Nil(t, (*castprotocol.DeviceStatus)(nil).RunningApp())
	require.Nil(t, (&castprotocol.DeviceStatus{}).RunningApp())
}

func TestMediaStatusDecode(t *testing.T) {
	raw := `{
		"playerState": "PLAYING",
		"currentTime": 42.5,
		"media": {
			"contentId": "http://example.com/track.mp3",
			"contentType": "audio/mpeg",
			"streamType": "BUFFERED",
			"duration": 180.5,
			"metadata": {
				"metadataType": 3,
				"title": "Some Track",
				"images": [{"url": "http://example.com/art.png"}]
			}
		}
	}`

	status := &castprotocol.MediaStatus{}
	require.NoError(t, json.Unmarshal([]byte(raw), status))

	require.Equal(t, castprotocol.PlayerStatePlaying, status.PlayerState)
	require.NotNil(t, status.Media)
	require.NotNil(t, status.Media.Duration)
	require.InDelta(t, 180.5, float64(*status.Media.Duration), 0.0001)
	require.Equal(t, castprotocol.MetadataMusicTrack, status.Media.MetadataKind())
	require.Equal(t, "Some Track", status.Media.Metadata["title"])
}

func TestMediaDurationAbsent(t *testing.T) {
	// Duration can legitimately be missing when a new track is about to
	// start.
	raw := `{"playerState": "BUFFERING", "currentTime": 0, "media": {"contentId": "x"}}`

	status := &castprotocol.MediaStatus{}
	require.NoError(t, json.Unmarshal([]byte(raw), status))
	require.Nil(t, status.Media.Duration)
}

func TestMetadataKind(t *testing.T) {
	tests := []struct {
		name  string
		media *castprotocol.Media
		want  castprotocol.MetadataType
	}{
		{"nil media", nil, castprotocol.MetadataGeneric},
		{"nil metadata", &castprotocol.Media{}, castprotocol.MetadataGeneric},
		{"no type key", &castprotocol.Media{Metadata: map[string]any{"title": "x"}}, castprotocol.MetadataGeneric},
		{"movie", &castprotocol.Media{Metadata: map[string]any{"metadataType": float64(1)}}, castprotocol.MetadataMovie},
		{"photo", &castprotocol.Media{Metadata: map[string]any{"metadataType": 4}}, castprotocol.MetadataPhoto},
		{"out of range", &castprotocol.Media{Metadata: map[string]any{"metadataType": float64(42)}}, castprotocol.MetadataGeneric},
		{"wrong kind", &castprotocol.Media{Metadata: map[string]any{"metadataType": "MOVIE"}}, castprotocol.MetadataGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.media.MetadataKind())
		})
	}
}

func TestMetadataTypeString(t *testing.T) {
	require.Equal(t, "GENERIC", castprotocol.MetadataGeneric.String())
	require.Equal(t, "TV_SHOW", castprotocol.MetadataTVShow.String())
	require.Equal(t, "GENERIC", castprotocol.MetadataType(99).String())
}
