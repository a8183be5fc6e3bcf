package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/schollz/progressbar/v3"

	"outfitforge/logger"
	"outfitforge/nodes"
	"outfitforge/nodes/support"
	"outfitforge/settings"
	"outfitforge/store"
	"outfitforge/text/ollama"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the main configuration file")
	gender := flag.String("gender", "", "outfit node to run (gender folder name)")
	inputPath := flag.String("input", "", "JSON file of node inputs, - for stdin")
	validate := flag.Bool("validate", false, "validate all JSON data files and exit")
	listModels := flag.Bool("models", false, "list models the Ollama server reports and exit")
	rewrite := flag.Bool("rewrite", false, "rewrite the positive prompt through the LLM backend")
	backend := flag.String("backend", support.BackendOllama, "rewrite backend: ollama or gemini")
	model := flag.String("model", "", "rewrite model, defaults to the configured one")
	flag.Parse()

	config, err := settings.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}
	logger.Init(config.Logging)

	if *validate {
		os.Exit(validateData(config.Outfit.DataDir))
	}

	if *listModels {
		models, err := ollama.Models(config.Ollama)
		if err != nil {
			logger.Fatal("Could not list models", "error", err)
		}
		for _, model := range models {
			fmt.Println(model)
		}
		return
	}

	db, err := store.Open(config.Store.Path)
	if err != nil {
		logger.Fatal("Failed to open store", "error", err)
	}
	defer db.Close()
	if config.Store.MergeIntervalHrs > 0 {
		db.StartMergeLoop(time.Duration(config.Store.MergeIntervalHrs) * time.Hour)
	}

	deps := nodes.Deps{Store: db}
	if config.Outfit.EnableCache {
		if config.Outfit.PersistCache {
			deps.Cache = nodes.NewPersistentCache(db)
		} else {
			deps.Cache = nodes.NewCache()
		}
	}

	registry := nodes.BuildRegistry(config.Outfit, deps)
	if len(registry.Nodes) == 0 {
		logger.Fatal("No outfit nodes could be built", "dataDir", config.Outfit.DataDir)
	}

	if *gender == "" {
		for class, name := range registry.DisplayNames {
			fmt.Printf("%s\t%s\n", class, name)
		}
		return
	}

	node, ok := registry.Get(className(*gender))
	if !ok {
		logger.Fatal("No node for gender", "gender", *gender)
	}

	raw, err := readInput(*inputPath)
	if err != nil {
		logger.Fatal("Could not read inputs", "error", err)
	}
	in, err := nodes.InputsFromJSON(node.BodyParts(), raw)
	if err != nil {
		logger.Fatal("Could not parse inputs", "error", err)
	}

	started := time.Now()
	out := node.Process(in)

	positive := out.PositivePrompt
	if *rewrite {
		rewriter := support.Rewriter{
			Ollama:  config.Ollama,
			Gemini:  config.Gemini,
			Backend: *backend,
		}
		positive = rewriter.Rewrite(positive, *model, out.Seed)
	}
	elapsed := durafmt.Parse(time.Since(started)).LimitFirstN(2)

	fmt.Println("Positive:", positive)
	fmt.Println("Negative:", out.NegativePrompt)
	fmt.Println("Seed:", out.Seed)
	fmt.Println("Metadata:", out.MetadataJSON)
	fmt.Println("Elapsed:", elapsed)
}

func className(gender string) string {
	if gender == "" {
		return ""
	}
	return strings.ToUpper(gender[:1]) + gender[1:] + "OutfitNode"
}

func readInput(path string) ([]byte, error) {
	switch path {
	case "":
		return nil, nil
	case "-":
		return os.ReadFile("/dev/stdin")
	default:
		return os.ReadFile(path)
	}
}

// validateData walks every JSON file under the data directory and
// reports the ones that fail to parse.
func validateData(dataDir string) int {
	var files []string
	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".json") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		logger.Error("Could not walk data directory", "path", dataDir, "error", err)
		return 1
	}

	bar := progressbar.Default(int64(len(files)), "validating data files")
	var bad []string
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			bad = append(bad, path)
		} else if !json.Valid(raw) {
			bad = append(bad, path)
		}
		_ = bar.Add(1)
	}

	if len(bad) > 0 {
		for _, path := range bad {
			logger.Error("Invalid data file", "path", path)
		}
		return 1
	}
	logger.Info("All data files valid", "count", len(files))
	return 0
}
