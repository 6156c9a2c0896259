package main

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/tatianab/zuul/internal/config"
	"github.com/tatianab/zuul/internal/engine"
	"github.com/tatianab/zuul/internal/logger"
	"github.com/tatianab/zuul/internal/models"
	"github.com/tatianab/zuul/internal/parser"
	"google.golang.org/api/option"
)

const maxTurns = 20

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireGemini(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logs, closer, err := logger.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closer.Close()

	world, err := models.DefaultWorld()
	if err != nil {
		log.Fatalf("Failed to build world: %v", err)
	}

	// Initialize the game engine
	eng, err := engine.NewEngine(ctx, world, engine.Options{
		TimeLimit: cfg.TimeLimit,
		Logger:    logs,
	})
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	defer eng.Close()

	// Initialize the Player LLM
	playerClient, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		log.Fatalf("Failed to create player client: %v", err)
	}
	defer playerClient.Close()
	playerModel := playerClient.GenerativeModel("gemini-2.5-flash")

	fmt.Println(eng.Welcome())
	fmt.Println()

	for turn := 1; turn <= maxTurns; turn++ {
		select {
		case <-eng.Done():
			fmt.Println(eng.EndMessage())
			return
		default:
		}

		fmt.Printf("--- Turn %d ---\n", turn)

		action := getPlayerAction(ctx, playerModel, eng)
		fmt.Printf("Player Action: %s\n", action)

		res := eng.ProcessTurn(parser.Parse(action))
		fmt.Printf("Outcome: %s\n", res.Output)
		if res.Err != nil {
			fmt.Printf("Rejected: %v\n", res.Err)
		}
		fmt.Println()

		if res.Ended {
			fmt.Println("Game Ended.")
			return
		}
	}
	fmt.Printf("Stopped after %d turns.\n", maxTurns)
}

func getPlayerAction(ctx context.Context, model *genai.GenerativeModel, eng *engine.Engine) string {
	historyText := ""
	for _, entry := range eng.Transcript() {
		historyText += fmt.Sprintf("Command: %s\nOutcome: %s\n", entry.Input, entry.Output)
	}

	prompt := fmt.Sprintf(`You are playing a text-based adventure game on a university campus.
You may only type these command words: %s
"go" needs a direction taken from the Exits line, for example "go east".
"back" returns to the previous room. "open" and "close" work the trap door.

Where you are:
%s

History:
%s

Explore as many rooms as you can. Return ONLY the command, no extra commentary.`,
		strings.Join(engine.CommandWords(), ", "),
		eng.CurrentRoom().LongDescription(),
		historyText,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "look"
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "look"
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]))
}
