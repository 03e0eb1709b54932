// Command captree is a demo harness for the capture-tree processor: it
// reads a JSON fixture describing a capture list, a subject and a
// ktable, runs it through the tree walker with the selected encoder,
// and writes the result. It is not a PEG compiler front end — building
// the capture list itself is out of scope.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	captree "github.com/rosietree/captree"
)

type fixture struct {
	Subject  string          `json:"subject"`
	Ktable   []string        `json:"ktable"`
	Captures []fixtureCap    `json:"captures"`
	MatchEnd int             `json:"match_end"`
	Extra    json.RawMessage `json:"extra_args,omitempty"`
}

type fixtureCap struct {
	S     int    `json:"s"`
	Siz   int    `json:"siz"`
	Kind  string `json:"kind"`
	Idx   int    `json:"idx"`
	Final bool   `json:"final,omitempty"`
}

var kindByName = map[string]captree.Kind{
	"close":       captree.Cclose,
	"position":    captree.Cposition,
	"arg":         captree.Carg,
	"simple":      captree.Csimple,
	"runtime":     captree.Cruntime,
	"string":      captree.Cstring,
	"backref":     captree.Cbackref,
	"table":       captree.Ctable,
	"function":    captree.Cfunction,
	"num":         captree.Cnum,
	"query":       captree.Cquery,
	"fold":        captree.Cfold,
	"rosiecap":    captree.Crosiecap,
	"rosiesimple": captree.Crosiesimple,
}

var encodingByName = map[string]captree.EncodingTag{
	"debug": captree.ENCODE_DEBUG,
	"byte":  captree.ENCODE_BYTE,
	"json":  captree.ENCODE_JSON,
	"line":  captree.ENCODE_LINE,
}

type cliArgs struct {
	capturesPath *string
	encoding     *string
	outputPath   *string
}

func readArgs() *cliArgs {
	a := &cliArgs{
		capturesPath: flag.String("captures", "", "Path to a capture-list fixture (JSON)"),
		encoding:     flag.String("encoding", "json", "Output encoding: debug, byte, json or line"),
		outputPath:   flag.String("output", "/dev/stdout", "Path to the output file"),
	}
	flag.Parse()
	return a
}

func loadFixture(path string) (*fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func buildCapState(f *fixture) (*captree.CapState, error) {
	caps := make([]captree.Capture, len(f.Captures))
	for i, fc := range f.Captures {
		kind, ok := kindByName[fc.Kind]
		if !ok {
			return nil, fmt.Errorf("unknown capture kind %q", fc.Kind)
		}
		caps[i] = captree.Capture{S: fc.S, Siz: fc.Siz, Kind: kind, Idx: fc.Idx, Final: fc.Final}
	}

	kt := make(captree.SliceKtable, len(f.Ktable))
	for i, name := range f.Ktable {
		kt[i] = captree.String(name)
	}

	return captree.NewCapState(caps, []byte(f.Subject), kt, nil), nil
}

func main() {
	a := readArgs()
	if *a.capturesPath == "" {
		log.Fatal("no -captures fixture given")
	}

	f, err := loadFixture(*a.capturesPath)
	if err != nil {
		log.Fatal(err)
	}

	tag, ok := encodingByName[*a.encoding]
	if !ok {
		log.Fatalf("unknown -encoding %q", *a.encoding)
	}

	cs, err := buildCapState(f)
	if err != nil {
		log.Fatal(err)
	}

	out, leftover, abend, err := captree.REncodedGetCaptures(cs, tag, f.MatchEnd, len(f.Subject), nil)
	if err != nil {
		log.Fatal(err)
	}

	w := os.Stdout
	if *a.outputPath != "" && *a.outputPath != "/dev/stdout" {
		wf, err := os.Create(*a.outputPath)
		if err != nil {
			log.Fatal(err)
		}
		defer wf.Close()
		w = wf
	}

	if _, err := w.Write(out); err != nil {
		log.Fatal(err)
	}
	if tag == captree.ENCODE_JSON {
		fmt.Fprintln(w)
	}
	if abend {
		fmt.Fprintf(os.Stderr, "abend: %d bytes unconsumed\n", leftover)
	}
}
