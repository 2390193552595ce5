package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/castbridge/castbridge/castprotocol"
	"github.com/castbridge/castbridge/caststate"
	"github.com/castbridge/castbridge/imagefetch"
	"github.com/castbridge/castbridge/internal/config"
	"github.com/rs/zerolog"
)

var (
	version  string
	build    string
	fileArg  = flag.String("f", "", "Path to a newline-delimited JSON capture of receiver messages. Defaults to stdin.")
	debugPtr = flag.Bool("debug", false, "Enable debug logging.")
	verPtr   = flag.Bool("version", false, "Print version.")
)

// envelope is one captured receiver message. MEDIA_STATUS messages carry
// their statuses as an array, RECEIVER_STATUS as a single object or null.
type envelope struct {
	Type   string          `json:"type"`
	Status json.RawMessage `json:"status"`
}

func main() {
	flag.Parse()

	if *verPtr {
		fmt.Printf("castbridge %s, build %s\n", version, build)
		os.Exit(0)
	}

	conf, err := config.GetAppConfig()
	check(err)

	loc, err := conf.Location()
	check(err)

	in := os.Stdin
	if *fileArg != "" {
		f, err := os.Open(*fileArg)
		check(err)
		defer f.Close()
		in = f
	}

	updater := caststate.NewStatusUpdater(&consoleSink{}, imagefetch.New(conf.FetchRetries))
	updater.Location = loc

	if *debugPtr || conf.Debug {
		updater.LogOutput = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var env envelope
		if err := json.Unmarshal(line, &env); err != nil {
			fmt.Fprintf(os.Stderr, "skipping unparsable line: %s\n", err)
			continue
		}

		dispatch(updater, env)
	}
	check(scanner.Err())
}

func dispatch(updater *caststate.StatusUpdater, env envelope) {
	switch env.Type {
	case "RECEIVER_STATUS":
		if isNull(env.Status) {
			updater.ProcessStatusUpdate(nil)
			return
		}

		status := &castprotocol.DeviceStatus{}
		if err := json.Unmarshal(env.Status, status); err != nil {
			fmt.Fprintf(os.Stderr, "skipping unparsable receiver status: %s\n", err)
			return
		}
		updater.ProcessStatusUpdate(status)

	case "MEDIA_STATUS":
		if isNull(env.Status) {
			updater.UpdateMediaStatus(nil)
			return
		}

		var statuses []castprotocol.MediaStatus
		if err := json.Unmarshal(env.Status, &statuses); err != nil {
			// Some captures carry a single status object instead.
			status := &castprotocol.MediaStatus{}
			if err := json.Unmarshal(env.Status, status); err != nil {
				fmt.Fprintf(os.Stderr, "skipping unparsable media status: %s\n", err)
				return
			}
			updater.UpdateMediaStatus(status)
			return
		}

		if len(statuses) == 0 {
			updater.UpdateMediaStatus(nil)
			return
		}
		updater.UpdateMediaStatus(&statuses[0])

	default:
		fmt.Fprintf(os.Stderr, "skipping message type %q\n", env.Type)
	}
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// consoleSink prints every channel transition. All channels count as
// linked, so the full projection runs.
type consoleSink struct{}

func (consoleSink) SetConnectivity(c caststate.Connectivity) {
	fmt.Printf("connectivity: %s\n", c)
}

func (consoleSink) UpdateState(channel string, state caststate.State) {
	switch s := state.(type) {
	case caststate.UndefType:
		fmt.Printf("%s: UNDEF\n", channel)
	case caststate.ImageState:
		fmt.Printf("%s: %d bytes (%s)\n", channel, len(s.Data), s.MIMEType)
	default:
		fmt.Printf("%s: %v\n", channel, state)
	}
}

func (consoleSink) IsLinked(string) bool {
	return true
}

func (consoleSink) Channels() []string {
	return []string{
		caststate.ChannelAlbumArtist,
		caststate.ChannelAlbumName,
		caststate.ChannelArtist,
		caststate.ChannelBroadcastDate,
		caststate.ChannelComposer,
		caststate.ChannelCreationDate,
		caststate.ChannelDiscNumber,
		caststate.ChannelEpisodeNumber,
		caststate.ChannelLocationName,
		caststate.ChannelReleaseDate,
		caststate.ChannelSeasonNumber,
		caststate.ChannelSeriesTitle,
		caststate.ChannelStudio,
		caststate.ChannelSubtitle,
		caststate.ChannelTitle,
		caststate.ChannelTrackNumber,
	}
}

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}
