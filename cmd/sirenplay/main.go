// Command sirenplay is a small demo host for the siren engine: it builds
// a mixer, optionally loads a Lua songscript and WAV samples, and plays
// the result through the default audio sink until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/sqrew/siren"
	"github.com/sqrew/siren/audiosink"
	"github.com/sqrew/siren/playback"
	"github.com/sqrew/siren/songscript"
	"github.com/sqrew/siren/wavload"
)

func main() {
	songPath := flag.String("song", "", "path to a Lua songscript file")
	songName := flag.String("name", "main", "song name to play, as registered by defsong")
	samplePath := flag.String("sample", "", "path to a WAV file to play on a sample slot")
	bpm := flag.Float64("bpm", 120, "tempo, only printed in the startup message")
	live := flag.Bool("live", false, "play notes live from the keyboard (ZXCVBNM, row), raw-mode stdin")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	mix, err := siren.NewMixer(siren.SFXPoolSize, siren.SamplePoolSize)
	if err != nil {
		logger.Fatal("new mixer", "err", err)
	}

	if *songPath != "" {
		if err := playSong(mix, *songPath, *songName, logger); err != nil {
			logger.Fatal("play song", "err", err)
		}
	}

	if *samplePath != "" {
		buf := wavload.Load(*samplePath)
		if len(buf) == 0 {
			logger.Warn("sample did not load (wrong format, or IO error)", "path", *samplePath)
		} else {
			mix.LoadSample(0, buf, 0, 0)
			mix.Sample(0).Play()
		}
	}

	sink, err := audiosink.NewOtoSink(siren.SampleRate, 2)
	if err != nil {
		logger.Fatal("open audio sink", "err", err)
	}
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *live {
		kb := playback.NewKeyboardHost(mix, siren.PluckSquare(0.7))
		if err := kb.Start(); err != nil {
			logger.Fatal("enable live keyboard (is stdin a TTY?)", "err", err)
		}
		defer kb.Stop()
		fmt.Println("live mode: ZXCVBNM, row plays notes, ctrl-C to stop")
	} else {
		fmt.Printf("playing at %.0f bpm, ctrl-C to stop\n", *bpm)
	}
	playback.Loop(ctx, mix, sink, logger)
}

func playSong(mix *siren.Mixer, path, name string, logger *log.Logger) error {
	script, err := songscript.Load(path)
	if err != nil {
		return err
	}
	notes, ok := script.Song(name)
	if !ok {
		return fmt.Errorf("songscript: no song named %q in %s", name, path)
	}

	voice := siren.PluckSquare(0.6)
	seq := siren.NewSeq(notes)
	mix.AddVoice(name, voice, seq, 0)
	logger.Info("loaded song", "name", name, "notes", len(notes))
	return nil
}
