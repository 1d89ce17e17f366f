package authValidator

import (
	"net/url"
	"regexp"
	"strings"

	"codecourse/middleware"
	"codecourse/models"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// LoginForm carries the credential form fields. The username field
// holds the account email.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginForm)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		errors := make(map[string]string)

		// Validate Username
		if strings.TrimSpace(reqData.Username) == "" {
			errors["username"] = "This field is required!"
		}

		// Validate Password
		if reqData.Password == "" {
			errors["password"] = "This field is required!"
		}

		// Respond with errors if any exist
		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		// Pass validated credentials to the next middleware
		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// RecoverPassword validator middleware
func RecoverPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, err := url.PathUnescape(c.Params("email"))
		if err != nil || !isValidEmail(email) {
			return middleware.NewEmailValidationError("Invalid email!")
		}

		c.Locals("recoveryEmail", email)
		return c.Next()
	}
}

// ResetPassword validator middleware
func ResetPassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(models.NewPassword)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.NewValidationError("Invalid request body!")
		}

		errors := middleware.ValidateStruct(reqData)
		if len(errors) > 0 {
			return middleware.NewValidationFieldErrors(errors)
		}

		c.Locals("validatedNewPassword", reqData)
		return c.Next()
	}
}
