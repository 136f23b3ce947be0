package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/arbor/internal/lsystem"
)

// writeOBJ emits Wavefront OBJ line ("l") elements for branch segments and
// point ("p") elements for leaves. Vertices are deduplicated per emission,
// not globally; viewers do not care and the writer stays single-pass.
func writeOBJ(path string, result *lsystem.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# arbor generated plant geometry")
	vertex := 0
	writeVertex := func(p rl.Vector3) int {
		vertex++
		fmt.Fprintf(w, "v %g %g %g\n", p.X, p.Y, p.Z)
		return vertex
	}
	for _, seg := range result.Segments {
		a := writeVertex(seg.From)
		b := writeVertex(seg.To)
		fmt.Fprintf(w, "l %d %d\n", a, b)
	}
	for _, leaf := range result.Leaves {
		fmt.Fprintf(w, "p %d\n", writeVertex(leaf))
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

type jsonVec struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

type jsonSegment struct {
	From jsonVec `json:"from"`
	To   jsonVec `json:"to"`
}

type jsonGeometry struct {
	Segments []jsonSegment `json:"segments"`
	Leaves   []jsonVec     `json:"leaves"`
	Min      jsonVec       `json:"min"`
	Max      jsonVec       `json:"max"`
}

func writeJSON(path string, result *lsystem.Result) error {
	vec := func(p rl.Vector3) jsonVec { return jsonVec{X: p.X, Y: p.Y, Z: p.Z} }

	out := jsonGeometry{
		Segments: make([]jsonSegment, 0, len(result.Segments)),
		Leaves:   make([]jsonVec, 0, len(result.Leaves)),
		Min:      vec(result.Bounds.Min),
		Max:      vec(result.Bounds.Max),
	}
	for _, seg := range result.Segments {
		out.Segments = append(out.Segments, jsonSegment{From: vec(seg.From), To: vec(seg.To)})
	}
	for _, leaf := range result.Leaves {
		out.Leaves = append(out.Leaves, vec(leaf))
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
