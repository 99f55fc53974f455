package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/keyframe/anim"
)

func main() {
	frame := flag.Float64("frame", -1, "evaluate the track at this frame")
	additive := flag.Bool("additive", false, "convert the track to additive form")
	ref := flag.Float64("ref", 0, "reference frame for additive conversion")
	rangeName := flag.String("range", "", "named range for additive conversion")
	out := flag.String("out", "", "write the (possibly converted) track to this file")
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("usage: trackinfo [flags] <track.yaml>...")
	}
	if *out != "" && flag.NArg() > 1 {
		log.Fatal("-out takes a single input file")
	}

	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read %s: %v", path, err)
		}
		track, err := anim.Parse(data)
		if err != nil {
			log.Fatalf("parse %s: %v", path, err)
		}

		printSummary(path, track)

		if *frame >= 0 {
			value, err := track.Evaluate(*frame)
			if err != nil {
				log.Fatalf("evaluate %s at %g: %v", path, *frame, err)
			}
			fmt.Printf("  value at frame %g: %v\n", *frame, value)
		}

		if *additive {
			converted, err := anim.MakeAdditive(track, *ref, *rangeName, true)
			if err != nil {
				log.Fatalf("make additive %s: %v", path, err)
			}
			track = converted
			fmt.Printf("  converted to additive (reference frame %g)\n", *ref)
		}

		if *out != "" {
			data, err := track.Serialize()
			if err != nil {
				log.Fatalf("serialize %s: %v", path, err)
			}
			if err := os.WriteFile(*out, data, 0o644); err != nil {
				log.Fatalf("write %s: %v", *out, err)
			}
			fmt.Printf("  wrote %s\n", *out)
		}
	}
}

func printSummary(path string, track *anim.Track) {
	keys := track.Keys()
	fmt.Printf("%s: %q -> %q (%s, %g fps, %d keys)\n",
		path, track.Name, track.TargetProperty, track.DataType(), track.FramePerSecond, len(keys))
	if len(keys) > 0 {
		fmt.Printf("  frames %g..%g\n", keys[0].Frame, keys[len(keys)-1].Frame)
	}
	for _, name := range track.RangeNames() {
		r := track.Range(name)
		fmt.Printf("  range %q: %g..%g\n", r.Name, r.From, r.To)
	}
	if events := track.Events(); len(events) > 0 {
		fmt.Printf("  %d events\n", len(events))
	}
}
