package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/appengine-ltd/arbor/internal/lsystem"
	"github.com/appengine-ltd/arbor/internal/preset"
)

type paramList []string

func (p *paramList) String() string { return strings.Join(*p, ",") }

func (p *paramList) Set(v string) error {
	*p = append(*p, v)
	return nil
}

func main() {
	var presetName string
	var grammarPath string
	var iterations int
	var seed int64
	var angle float64
	var step float64
	var capacity int
	var outPath string
	var list bool
	var debug bool
	var params paramList

	flag.StringVar(&presetName, "preset", "", "built-in grammar name (see -list)")
	flag.StringVar(&grammarPath, "grammar", "", "path to a grammar file (.json, .yaml or .yml)")
	flag.IntVar(&iterations, "iterations", -1, "rewrite passes (-1 uses the grammar default)")
	flag.Int64Var(&seed, "seed", 0, "generation seed (0 picks a random seed)")
	flag.Float64Var(&angle, "angle", 0, "default rotation in degrees (0 uses the grammar default)")
	flag.Float64Var(&step, "step", 0, "default move distance (0 uses the grammar default)")
	flag.IntVar(&capacity, "capacity", 0, "symbol buffer capacity (0 uses the grammar default)")
	flag.StringVar(&outPath, "out", "", "write geometry to a .obj or .json file")
	flag.BoolVar(&list, "list", false, "list built-in grammars and exit")
	flag.BoolVar(&debug, "debug", false, "log rewrite passes to stderr")
	flag.Var(&params, "param", "parameter binding letter=value (repeatable)")
	flag.Parse()

	if list {
		for _, name := range preset.Names() {
			fmt.Println(name)
		}
		return
	}

	grammar, err := resolveGrammar(presetName, grammarPath)
	if err != nil {
		die(err.Error())
	}
	if iterations < 0 {
		iterations = grammar.Iterations
	}
	if angle != 0 {
		grammar.Angle = float32(angle)
	}
	if step != 0 {
		grammar.Step = float32(step)
	}
	if capacity != 0 {
		grammar.Capacity = capacity
	}

	bindings, err := parseParams(params)
	if err != nil {
		die(err.Error())
	}

	sys, err := lsystem.New(lsystem.Config{
		Axiom:          grammar.Axiom,
		Rules:          grammar.Rules,
		BufferCapacity: grammar.Capacity,
		DefaultAngle:   grammar.Angle,
		DefaultStep:    grammar.Step,
		Debug:          debug,
	})
	if err != nil {
		die(fmt.Sprintf("load grammar: %v", err))
	}

	result, err := sys.Generate(lsystem.Request{
		Iterations: iterations,
		Seed:       seed,
		Params:     bindings,
	})
	if err != nil {
		die(fmt.Sprintf("generate: %v", err))
	}

	if outPath != "" {
		if err := writeGeometry(outPath, result); err != nil {
			die(fmt.Sprintf("write %s: %v", outPath, err))
		}
		fmt.Printf("wrote %s\n", outPath)
	}
	b := result.Bounds
	fmt.Printf("grammar=%s iterations=%d seed=%d segments=%d leaves=%d bounds=(%.2f,%.2f,%.2f)..(%.2f,%.2f,%.2f)\n",
		grammar.Name, iterations, seed, len(result.Segments), len(result.Leaves),
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
}

func resolveGrammar(presetName, grammarPath string) (preset.Grammar, error) {
	switch {
	case presetName != "" && grammarPath != "":
		return preset.Grammar{}, fmt.Errorf("set either -preset or -grammar, not both")
	case grammarPath != "":
		return preset.Load(grammarPath)
	case presetName != "":
		return preset.Lookup(presetName)
	default:
		return preset.Grammar{}, fmt.Errorf("-preset or -grammar is required (see -list)")
	}
}

func parseParams(raw paramList) (map[byte]float32, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[byte]float32, len(raw))
	for _, entry := range raw {
		key, val, found := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		if !found || len(key) != 1 || key[0] < 'a' || key[0] > 'z' {
			return nil, fmt.Errorf("bad -param %q: want letter=value with a single lowercase letter", entry)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 32)
		if err != nil {
			return nil, fmt.Errorf("bad -param %q: %v", entry, err)
		}
		out[key[0]] = float32(f)
	}
	return out, nil
}

func writeGeometry(path string, result *lsystem.Result) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return writeOBJ(path, result)
	case ".json":
		return writeJSON(path, result)
	default:
		return fmt.Errorf("unsupported extension %q (want .obj or .json)", ext)
	}
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
