// Command audiounits converts between seconds and samples and reports the
// shape of WAV files in audio units.
//
// Usage:
//
//	audiounits -rate 48000 -seconds 1.5
//	audiounits -rate 44100 -samples 132300
//	audiounits -wav input.wav
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	units "github.com/tphakala/go-audio-units"
)

func main() {
	// Command-line flags
	var (
		rate    = flag.Uint("rate", defaultSampleRate, "Sample rate in Hz")
		seconds = flag.Float64("seconds", 0, "Duration in seconds to convert to samples")
		samples = flag.Uint64("samples", 0, "Sample count to convert to seconds")
		wavPath = flag.String("wav", "", "WAV file to inspect")
	)
	flag.Parse()

	if *wavPath != "" {
		report, err := inspectWAV(*wavPath)
		if err != nil {
			log.Fatalf("Failed to inspect WAV file: %v", err)
		}
		printReport(os.Stdout, report)
		return
	}

	if *rate == 0 || *rate > maxSampleRate {
		log.Fatalf("Sample rate must be in [1, %d], got %d", uint64(maxSampleRate), *rate)
	}

	printConversion(os.Stdout, units.SampleRate(*rate), units.Seconds(*seconds), units.Samples(*samples))
}

// printConversion writes both conversion directions at the given rate.
func printConversion(w io.Writer, sr units.SampleRate, seconds units.Seconds, samples units.Samples) {
	_, _ = fmt.Fprintf(w, "Sample rate: %v (period %v)\n", sr, sr.Period())
	_, _ = fmt.Fprintf(w, "  %v -> %v\n", seconds, seconds.ToSamples(sr))
	_, _ = fmt.Fprintf(w, "  %v -> %v\n", samples, samples.ToSeconds(sr))
}

func printReport(w io.Writer, r *wavReport) {
	_, _ = fmt.Fprintf(w, "WAV file:\n")
	_, _ = fmt.Fprintf(w, "  Sample rate: %v\n", r.rate)
	_, _ = fmt.Fprintf(w, "  Channels: %v\n", r.channels)
	_, _ = fmt.Fprintf(w, "  Bit depth: %v\n", r.depth)
	_, _ = fmt.Fprintf(w, "  Length: %v\n", r.frames)
	_, _ = fmt.Fprintf(w, "  Duration: %v (%v)\n", r.duration, r.duration.Std())
	_, _ = fmt.Fprintf(w, "  Silent: %v\n", r.silent)
}
