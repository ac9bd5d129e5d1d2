// Command wingspan runs one or more headless matches of the engine from
// the command line, writing a narrated transcript to stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aviary-games/wingspan-engine/internal/agent"
	"github.com/aviary-games/wingspan-engine/internal/cards"
	"github.com/aviary-games/wingspan-engine/internal/logging"
	"github.com/aviary-games/wingspan-engine/internal/observer"
	"github.com/aviary-games/wingspan-engine/internal/orchestrator"
	"github.com/aviary-games/wingspan-engine/internal/state"
)

func main() {
	var (
		seed       = flag.Int64("seed", 0, "PRNG seed for the match; generated from the clock and printed to stderr when omitted")
		players    = flag.Int("players", 2, "number of seats (2-5)")
		matches    = flag.Int("matches", 1, "number of matches to run in sequence")
		agentKind  = flag.String("agent", "random", "agent kind: random or scripted")
		scriptPath = flag.String("script", "", "script file path, required when -agent=scripted")
		logLevel   = flag.String("log-level", "info", "debug, info, warn, or error")
		cardsPath  = flag.String("cards", "data/cards.json", "path to the bird card dataset")
		bonusPath  = flag.String("bonus-cards", "data/bonuscards.json", "path to the bonus card dataset")
	)
	flag.Parse()

	seedSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})
	if !seedSet {
		*seed = time.Now().UnixNano()
		fmt.Fprintln(os.Stderr, "seed:", *seed)
	}

	if err := logging.Init(*logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "init logging:", err)
		os.Exit(1)
	}
	defer logging.Sync()

	registry, err := cards.LoadRegistry(*cardsPath, *bonusPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load dataset:", err)
		os.Exit(1)
	}

	for i := 0; i < *matches; i++ {
		if err := runOneMatch(registry, *seed+int64(i), *players, agent.Kind(*agentKind), *scriptPath); err != nil {
			fmt.Fprintln(os.Stderr, "match failed:", err)
			os.Exit(1)
		}
	}
}

func runOneMatch(registry *state.Registry, seed int64, numPlayers int, kind agent.Kind, scriptPath string) error {
	matchID := uuid.NewString()
	playerIDs := make([]string, numPlayers)
	for i := range playerIDs {
		playerIDs[i] = fmt.Sprintf("player-%d", i+1)
	}

	agents := make(map[string]agent.Agent, numPlayers)
	for i, id := range playerIDs {
		a, err := agent.NewBySpec(kind, id, seed+int64(i)+1, scriptPath)
		if err != nil {
			return err
		}
		agents[id] = a
	}

	observers := []observer.Observer{
		observer.NewNarrativeLogger(logging.WithMatch(matchID)),
		observer.NewTerminalRenderer(os.Stdout),
	}

	match, err := orchestrator.NewMatch(matchID, seed, registry, playerIDs, agents, observers, logging.WithMatch(matchID))
	if err != nil {
		return err
	}

	totals, err := match.RunMatch(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(strings.Repeat("=", 40))
	for id, score := range totals {
		fmt.Printf("%s: %d\n", id, score)
	}
	return nil
}
