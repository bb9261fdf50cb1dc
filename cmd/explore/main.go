// Command explore is an interactive shell over a pre-built exercise index.
//
// It loads a snapshot file (JSON or MessagePack, chosen by extension),
// builds the in-memory index and then serves a query loop: each input line
// is ranked, the facet distribution of the ranking is shown, and
// autocomplete suggestions for the line are printed through the trailing
// edge throttle the UI layer would use while typing.
//
// Facet selection uses key=value input, e.g.:
//
//	> bruch nenner
//	> age=5-6
//	> age=
//
// The second line narrows subsequent queries to the "5-6" age band, the
// third clears the selection again.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tafelwerk/explore"
	"github.com/tafelwerk/explore/internal/config"
)

func main() {
	indexPath := flag.String("index", "", "snapshot file to load (.json, .bin or .msgpack)")
	configPath := flag.String("config", "", "optional TOML config file")
	debug := flag.Bool("d", false, "enable debug logging")
	flag.Parse()

	if *debug {
		log.SetLevel(log.DebugLevel)
	}
	if *indexPath == "" {
		log.Fatal("missing -index flag")
	}

	cfg := config.Load(*configPath)

	engine := explore.NewEngine()

	// The load may take a while for large snapshots; run it off the input
	// loop the way a UI would and let the engine report readiness.
	go func() {
		start := time.Now()
		snap, err := explore.LoadSnapshotFile(*indexPath)
		if err != nil {
			log.Fatalf("Failed to load snapshot: %v", err)
		}
		idx, err := explore.BuildIndex(snap)
		if err != nil {
			log.Fatalf("Failed to build index: %v", err)
		}
		engine.SetIndex(idx)
		log.Info("Index ready", "docs", idx.NumDocs(), "took", time.Since(start))
	}()

	loop := &queryLoop{
		engine:    engine,
		cfg:       cfg,
		selection: make(map[string][]string),
	}
	loop.suggester = explore.NewThrottle(
		time.Duration(cfg.Suggest.ThrottleMs)*time.Millisecond,
		loop.printSuggestions,
	)
	defer loop.suggester.Stop()

	if err := loop.run(); err != nil {
		log.Fatalf("Input loop terminated: %v", err)
	}
}

type queryLoop struct {
	engine    *explore.Engine
	cfg       config.Config
	selection map[string][]string
	suggester *explore.Throttle[string]
}

func (l *queryLoop) run() error {
	log.Print("explore shell: type a query and press Enter (Ctrl+C to exit)")
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		l.handleInput(line)
	}
}

func (l *queryLoop) handleInput(line string) {
	if !l.engine.Ready() {
		log.Info("Index is still loading ...")
		return
	}

	if field, values, ok := parseFacetInput(line); ok {
		if len(values) == 0 {
			delete(l.selection, field)
			log.Info("Cleared facet selection", "field", field)
		} else {
			l.selection[field] = values
			log.Info("Facet selection", "field", field, "values", values)
		}
		return
	}

	l.suggester.Call(line)

	start := time.Now()
	results := l.engine.Rank(line, l.selection)
	log.Debug("Ranked", "query", line, "results", len(results), "took", time.Since(start))

	fmt.Printf("%d results\n", len(results))

	l.printFacetCounts(results)

	limit := l.cfg.Search.ResultLimit
	if limit <= 0 || limit > len(results) {
		limit = len(results)
	}
	for i, r := range results[:limit] {
		if l.cfg.CLI.ShowExplain {
			fmt.Printf("%2d) %d %.2f  %s\n", i+1, r.ID, r.Score, r.Explain)
		} else {
			fmt.Printf("%2d) %d %.2f\n", i+1, r.ID, r.Score)
		}
	}
}

// printFacetCounts shows the facet distribution of the ranking, most common
// value first. A facet with a single observed value is useless for further
// narrowing and is suppressed.
func (l *queryLoop) printFacetCounts(results []explore.RankedResult) {
	field := l.cfg.CLI.FacetField
	counts := l.engine.FacetCounts(results, field)
	if len(counts) <= 1 {
		return
	}

	type category struct {
		key   string
		count int
	}
	categories := make([]category, 0, len(counts))
	for key, count := range counts {
		categories = append(categories, category{key, count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].count != categories[j].count {
			return categories[i].count > categories[j].count
		}
		return categories[i].key < categories[j].key
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:", field)
	for _, cat := range categories {
		fmt.Fprintf(&sb, " %s (%d)", cat.key, cat.count)
	}
	fmt.Println(sb.String())
}

func (l *queryLoop) printSuggestions(partial string) {
	suggestions := l.engine.Suggest(partial)
	if len(suggestions) == 0 {
		return
	}
	fmt.Printf("suggestions: %s\n", strings.Join(suggestions, ", "))
}

// parseFacetInput recognises key=value facet selection lines. Values are
// comma-separated; an empty value list clears the field.
func parseFacetInput(line string) (field string, values []string, ok bool) {
	eq := strings.IndexByte(line, '=')
	if eq <= 0 || strings.ContainsAny(line[:eq], " \t") {
		return "", nil, false
	}
	field = line[:eq]
	for _, v := range strings.Split(line[eq+1:], ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return field, values, true
}
