package pistonController

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"

	"codecourse/middleware"
	"codecourse/models"
	"codecourse/utils"

	"github.com/gofiber/fiber/v2"
)

var (
	locationRegex = regexp.MustCompile(`\(/box/submission/(\S+:(\d+):(\d+))\)`)
	pointerRegex  = regexp.MustCompile(`(?m)^(\s*\^)\s*$`)
	errorRegex    = regexp.MustCompile(`(?m)^(\w+Error): (.+)$`)
)

// ExecuteCode proxies the submission to the sandbox. The sandbox runs
// untrusted code and reports failures through the run stage's stderr,
// not through HTTP errors, so a failing submission still comes back 200
// with a parsed error attached.
func ExecuteCode(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCodeRequest").(*models.CodeRequest)
	if !ok {
		return middleware.NewValidationError("Invalid request data!")
	}

	resp, err := utils.PistonClient().R().
		SetHeader("Content-Type", "application/json").
		SetBody(reqData).
		Post("/execute")
	if err != nil {
		return middleware.NewInternalServerError(fmt.Sprintf("Could not connect to Piston API: %v", err))
	}
	if resp.StatusCode() >= 400 {
		return middleware.NewPistonAPIError(resp.StatusCode(), resp.Body())
	}

	var result models.CodeResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		log.Printf("Error parsing Piston response: %v", err)
		return middleware.NewInternalServerError("Invalid response from Piston API")
	}

	if result.Run != nil && result.Run.Stderr != "" {
		parsed := parseError(result.Run.Stderr)
		result.Error = &parsed
	}

	return c.JSON(result)
}

// parseError lifts error details out of an interpreter traceback. Every
// field is best effort; an unrecognized stderr yields an empty error,
// never a failure.
func parseError(stderr string) models.CodeError {
	var codeErr models.CodeError

	if match := locationRegex.FindStringSubmatch(stderr); match != nil {
		codeErr.Location = &match[1]
		codeErr.Line = &match[2]
		codeErr.Column = &match[3]
	}

	if match := pointerRegex.FindStringSubmatch(stderr); match != nil {
		codeErr.Pointer = &match[1]
	}

	if match := errorRegex.FindStringSubmatch(stderr); match != nil {
		codeErr.Type = &match[1]
		codeErr.Message = &match[2]
	}

	return codeErr
}
