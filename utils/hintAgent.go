package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"codecourse/config"
	"codecourse/models"

	"google.golang.org/genai"
)

const hintTimeout = 30 * time.Second

const hintSystemPrompt = `You are an expert JavaScript algorithms tutor helping students learn data structures and algorithms.

Your role:
- Analyze the user's code and automatically determine what type of help they need
- Provide helpful hints without giving away the complete solution
- Explain concepts clearly for beginners
- Guide students through problem-solving step by step
- Focus on JavaScript syntax and best practices

Analysis Guidelines:
- If code is empty/minimal: Focus on concepts and getting started
- If syntax errors exist: Help with JavaScript syntax
- If structure exists but logic is wrong: Guide through algorithmic thinking
- If code runs but fails tests: Help with debugging and edge cases
- If code is close to correct: Provide final optimization hints

Response Guidelines:
- Keep hints concise but informative
- Provide code snippets only when necessary for understanding
- Always include next steps to guide the student forward
- Adjust your language based on the difficulty level
- Set confidence_score between 0.1-1.0 based on how helpful you think your hint is
- Set detected_issue_type to describe what problem you identified (e.g., "missing base case", "syntax error", "wrong approach", "concept understanding")
`

// hintResponseSchema constrains the model output to the hint shape.
var hintResponseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"hint":                {Type: genai.TypeString},
		"explanation":         {Type: genai.TypeString},
		"code_snippet":        {Type: genai.TypeString},
		"next_steps":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"confidence_score":    {Type: genai.TypeNumber},
		"detected_issue_type": {Type: genai.TypeString},
	},
	Required: []string{"hint", "explanation", "next_steps", "confidence_score"},
}

var hintClient *genai.Client

// InitHintAgent connects to Gemini. Without an API key the agent stays
// offline and every request gets the fallback hint.
func InitHintAgent(ctx context.Context) {
	if config.AppConfig.GeminiApiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set. Hint generation will use fallback responses.")
		return
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  config.AppConfig.GeminiApiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return
	}
	hintClient = client
}

// GenerateHint asks the model for a contextual hint. It never fails:
// any model or transport problem yields the fallback response instead.
func GenerateHint(ctx context.Context, request *models.HintRequest) models.HintResponse {
	if hintClient == nil {
		return fallbackHint()
	}

	ctx, cancel := context.WithTimeout(ctx, hintTimeout)
	defer cancel()

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: hintSystemPrompt}},
		},
		ResponseMIMEType: "application/json",
		ResponseSchema:   hintResponseSchema,
	}
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: buildHintPrompt(request)}}},
	}

	result, err := hintClient.Models.GenerateContent(ctx, config.AppConfig.GeminiModel, contents, genConfig)
	if err != nil {
		log.Printf("Error generating hint: %v", err)
		return fallbackHint()
	}

	var response models.HintResponse
	if err := json.Unmarshal([]byte(result.Text()), &response); err != nil {
		log.Printf("Error parsing hint response: %v", err)
		return fallbackHint()
	}

	// Keep the score inside the documented band
	if response.ConfidenceScore < 0.1 {
		response.ConfidenceScore = 0.1
	}
	if response.ConfidenceScore > 1.0 {
		response.ConfidenceScore = 1.0
	}

	return response
}

func buildHintPrompt(request *models.HintRequest) string {
	previousHints := make([]string, 0, len(request.PreviousHints))
	for i := range request.PreviousHints {
		serialized, err := json.Marshal(request.PreviousHints[i])
		if err != nil {
			continue
		}
		previousHints = append(previousHints, string(serialized))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Exercise: %s\n\n", request.ExerciseDescription)
	fmt.Fprintf(&b, "User's current code:\n```javascript\n%s\n```\n\n", request.UserCode)
	fmt.Fprintf(&b, "Test cases that need to pass:\n```javascript\n%s\n```\n\n", request.TestCases)
	fmt.Fprintf(&b, "Student difficulty level: %s\n", request.DifficultyLevel)
	fmt.Fprintf(&b, "Previous hints given: %d\n", len(request.PreviousHints))
	if len(previousHints) > 0 {
		fmt.Fprintf(&b, "Previous hints were: %s\n", strings.Join(previousHints, "; "))
	}
	if request.Error != nil && *request.Error != "" {
		fmt.Fprintf(&b, "\nRunning the user code resulted in an error: %s\n", *request.Error)
	}
	b.WriteString("\nPlease provide a helpful hint that guides the student without giving away the complete solution.")

	return b.String()
}

func fallbackHint() models.HintResponse {
	issueType := "technical_error"
	return models.HintResponse{
		Hint:        "I'm having trouble generating a hint right now. Try reviewing the exercise description and your current approach.",
		Explanation: "Technical issue occurred while processing your request.",
		NextSteps: []string{
			"Review the problem statement",
			"Check your code syntax",
			"Try a different approach",
		},
		ConfidenceScore:   0.1,
		DetectedIssueType: &issueType,
	}
}
