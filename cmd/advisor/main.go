package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/jkringel/fantasy-football-agent/internal/config"
	"github.com/jkringel/fantasy-football-agent/internal/espn"
	"github.com/jkringel/fantasy-football-agent/internal/fantasy"
	"github.com/jkringel/fantasy-football-agent/internal/host"
	"github.com/jkringel/fantasy-football-agent/internal/runner"
	"github.com/jkringel/fantasy-football-agent/tools"
)

const divider = "=================================================="

func main() {
	debug := flag.Bool("debug", false, "print the assembled prompt instead of calling the model")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "no .env file found, using system env")
	}

	// Cancel the run on Ctrl-C / SIGTERM so in-flight requests and retry
	// waits stop promptly.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, *debug); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		fmt.Fprintln(os.Stderr, "\nTroubleshooting:")
		fmt.Fprintln(os.Stderr, "1. Check your ESPN credentials are current")
		fmt.Fprintln(os.Stderr, "2. Ensure OPENAI_API_KEY is set in .env")
		fmt.Fprintln(os.Stderr, "3. Verify you have access to the league")
		os.Exit(1)
	}
}

func run(ctx context.Context, debug bool) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	fmt.Println("Fantasy Football AI Advisor")
	fmt.Println(divider)
	fmt.Println("Connecting to ESPN Fantasy...")

	client := espn.NewClient(cfg.LeagueID, cfg.Year, cfg.ESPNS2, cfg.SWID)
	lg, err := client.League(ctx)
	if err != nil {
		return fmt.Errorf("load league: %w", err)
	}

	myTeam, err := fantasy.IdentifyTeam(lg, cfg.SWID)
	if err != nil {
		return err
	}

	fmt.Printf("Connected to: %s\n", lg.Name)
	fmt.Printf("Your team: %s\n", myTeam.Name)
	if lg.CurrentWeek == 0 {
		fmt.Println("Current week: Pre-season")
		fmt.Println(strings.Repeat("-", 50))
		fmt.Println("\nThe season hasn't started yet. Come back when Week 1 begins for lineup, waiver, and matchup recommendations.")
		return nil
	}
	fmt.Printf("Current week: %d\n", lg.CurrentWeek)
	fmt.Println(strings.Repeat("-", 50))

	prompt := fantasy.BuildPrompt(lg, myTeam, time.Now())

	if debug {
		fmt.Println("\nDEBUG MODE - Showing Prompt")
		fmt.Println(divider)
		fmt.Println("PROMPT TO AI:")
		fmt.Println(strings.Repeat("-", 50))
		fmt.Println(prompt)
		fmt.Println(strings.Repeat("-", 50))
		fmt.Printf("\nPrompt length: %d characters\n", len(prompt))
		return nil
	}

	registry, err := tools.ForLeague(lg, client)
	if err != nil {
		return fmt.Errorf("build tool registry: %w", err)
	}

	fmt.Println("\nGenerating Comprehensive Weekly Analysis")
	fmt.Println(divider)
	fmt.Println("Analyzing roster, matchups, waiver wire, and league dynamics...")

	hc := host.NewOpenAI(cfg.OpenAIAPIKey, cfg.Model)
	r := runner.New(hc, registry, runner.Options{MaxTurns: cfg.MaxTurns})

	analysis, err := r.Run(ctx, fantasy.Instructions, prompt)
	if err != nil {
		if errors.Is(err, runner.ErrTurnLimit) {
			return fmt.Errorf("analysis did not converge: %w", err)
		}
		return err
	}

	fmt.Println(analysis)
	fmt.Println("\n" + divider)
	fmt.Println("Analysis complete!")
	return nil
}
