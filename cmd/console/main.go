// Command console runs a single local game in the terminal: it renders the
// shared biome, collects card plays and hunting choices, and feeds them to
// the rules engine. All game behavior lives in the engine; this binary is
// presentation only.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/pterm/pterm"

	"github.com/animaldominion/dominion-server-go/internal/catalog"
	"github.com/animaldominion/dominion-server-go/internal/game"
)

var (
	cardsPath = flag.String("cards", "data/cards.csv", "path to the card catalog CSV")
	decksPath = flag.String("decks", "data/decks.yaml", "path to the starter deck list")
	seed      = flag.Int64("seed", 0, "shuffle seed (0 seeds from the clock)")
	name1     = flag.String("p1", "Player 1", "name of player 1")
	name2     = flag.String("p2", "Player 2", "name of player 2")
)

func main() {
	flag.Parse()

	cat, err := catalog.Load(*cardsPath)
	if err != nil {
		pterm.Error.Printfln("loading catalog: %v", err)
		os.Exit(1)
	}
	decks, err := catalog.LoadDecks(*decksPath, cat)
	if err != nil {
		pterm.Error.Printfln("loading decks: %v", err)
		os.Exit(1)
	}

	shuffleSeed := *seed
	if shuffleSeed == 0 {
		shuffleSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(shuffleSeed))

	match, err := game.NewMatch(cat, game.DefaultParams(),
		[2]string{*name1, *name2},
		[2][]string{decks.Player1, decks.Player2},
		rng,
	)
	if err != nil {
		pterm.Error.Printfln("starting game: %v", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	shown := 0
	for {
		shown = printNewLogLines(match, shown)
		render(match)
		if match.Over() {
			pterm.DefaultBox.WithTitle(pterm.LightGreen("|GAME OVER|")).WithTitleTopCenter().
				Printfln("%s wins the game!", match.State.Winner)
			return
		}

		pterm.Print(pterm.LightCyan("> "))
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "play":
			if len(fields) < 2 {
				pterm.Warning.Println("usage: play <card id or name>")
				continue
			}
			playFromInput(match, cat, strings.Join(fields[1:], " "))
		case "end":
			choices := collectHuntingChoices(match, reader)
			match.EndTurn(choices)
		case "log":
			for _, entry := range match.State.Log {
				pterm.Println(entry)
			}
		case "help":
			pterm.Println("commands: play <card>, end, log, quit")
		case "quit", "exit":
			return
		default:
			pterm.Warning.Printfln("unknown command %q (try help)", fields[0])
		}
	}
}

// playFromInput resolves the player's text to a card in the active hand.
// Exact id and exact name win; otherwise the closest hand card by edit
// distance is offered as a suggestion.
func playFromInput(match *game.Match, cat *catalog.Catalog, input string) {
	hand := match.State.Players[match.State.ActivePlayerIndex].Hand
	lowered := strings.ToLower(input)

	for _, id := range hand {
		card := cat.MustGet(id)
		if id == input || strings.EqualFold(card.Name, input) {
			if _, err := match.PlayCard(id); err != nil {
				pterm.Error.Printfln("%v", err)
			}
			return
		}
	}

	best, bestDist := "", -1
	for _, id := range hand {
		card := cat.MustGet(id)
		for _, candidate := range []string{strings.ToLower(id), strings.ToLower(card.Name)} {
			dist := levenshtein.ComputeDistance(lowered, candidate)
			if bestDist == -1 || dist < bestDist {
				best, bestDist = card.Name, dist
			}
		}
	}
	if best != "" && bestDist <= 3 {
		pterm.Warning.Printfln("no card %q in hand. Did you mean %q?", input, best)
	} else {
		pterm.Warning.Printfln("no card %q in hand.", input)
	}
}

// collectHuntingChoices prompts for a prey per hungry predator before the
// turn resolves. Empty input skips the predator.
func collectHuntingChoices(match *game.Match, reader *bufio.Reader) map[int]int {
	predators := match.HungryPredators()
	if len(predators) == 0 {
		return nil
	}
	choices := make(map[int]int)
	for _, predator := range predators {
		options := match.PreyOptions(predator.Level)
		if len(options) == 0 {
			pterm.Println(pterm.Gray(fmt.Sprintf("%s (hunger %d) has no viable prey.", predator.Name, predator.Hunger)))
			continue
		}
		pterm.Printfln("%s (hunger %d) may hunt:", predator.Name, predator.Hunger)
		for i, prey := range options {
			pterm.Printfln("  %d) %s (level %d) - %s", i+1, prey.Name, prey.Level, prey.OwnerName)
		}
		pterm.Print(pterm.LightCyan("choice (empty to skip): "))
		line, err := reader.ReadString('\n')
		if err != nil {
			return choices
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		idx, err := strconv.Atoi(line)
		if err != nil || idx < 1 || idx > len(options) {
			pterm.Warning.Println("skipping: not a listed option")
			continue
		}
		choices[predator.InstanceID] = options[idx-1].InstanceID
	}
	return choices
}

func render(match *game.Match) {
	view := match.View()

	biome := pterm.Sprintf("CN %d  (base %d, carry %d)\nCC %d   Lmax %d",
		view.Biome.CN, view.Biome.CNBase, view.Biome.CNTemp, view.Biome.CC, view.Biome.Lmax)
	pterm.DefaultBox.WithTitle(pterm.LightYellow("|"+view.Biome.Name+"|")).WithTitleTopCenter().Println(biome)

	var table strings.Builder
	for level := 1; level <= view.Biome.Lmax; level++ {
		animals := view.AnimalsByLevel[level]
		if len(animals) == 0 {
			continue
		}
		fmt.Fprintf(&table, "Level %d:\n", level)
		for _, animal := range animals {
			fmt.Fprintf(&table, "  #%d %s (%s) - %s | hunger %d | %.0f kg\n",
				animal.InstanceID, animal.Name, animal.Type, animal.OwnerName, animal.Hunger, animal.WeightKg)
		}
	}
	for _, plant := range view.Plants {
		fmt.Fprintf(&table, "Plant: %s (+%d CN) - %s\n", plant.Name, plant.CNPerTurn, plant.OwnerName)
	}
	if table.Len() > 0 {
		pterm.DefaultBox.WithTitle(pterm.LightGreen("|TABLE|")).WithTitleTopCenter().Print(table.String())
	}

	active := view.Players[view.ActiveIndex]
	var hand strings.Builder
	fmt.Fprintf(&hand, "%s's turn %d - actions %d/%d\n", active.Name, view.TurnNumber, view.ActionsUsed, view.ActionsPerTurn)
	for _, id := range active.Hand {
		fmt.Fprintf(&hand, "  %s\n", id)
	}
	pterm.DefaultBox.WithTitle(pterm.LightMagenta("|HAND|")).WithTitleTopCenter().Print(hand.String())
}

func printNewLogLines(match *game.Match, shown int) int {
	entries := match.State.Log
	for _, entry := range entries[shown:] {
		pterm.Println(pterm.Gray(entry))
	}
	return len(entries)
}
