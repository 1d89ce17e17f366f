package utils

import (
	"codecourse/config"
	"fmt"
	"net/smtp"
	"net/url"
	"strings"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if smtpHost == "" || from == "" {
		return fmt.Errorf("email delivery is not configured")
	}

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CodeCourse <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML Wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1E1E2E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1E1E2E; line-height: 1.6; }
			.content h2 { color: #1E1E2E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #7C3AED; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CODECOURSE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 CodeCourse. Learn by writing code.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// --- Triggers ---

// Password recovery. The link carries the reset token and stops
// working once the token expires.
func SendPasswordResetEmail(email, token string) {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", config.AppConfig.FrontendHost, url.QueryEscape(token))

	subject := "CodeCourse - Password recovery"
	body := fmt.Sprintf(`
		<p>Hi,</p>
		<p>We received a request to reset the password for <strong>%s</strong>.</p>
		<p>Click the button below to choose a new password. The link is valid for %d hours.</p>
		<a class="btn" href="%s">Reset Password</a>
		<p>If you did not request a password reset, you can safely ignore this email.</p>
	`, email, config.AppConfig.ResetTokenExpireHours, resetLink)

	go SendEmail([]string{email}, subject, getEmailTemplate("Reset your password", body))
}

// Delivery smoke test for operators.
func SendTestEmail(email string) error {
	subject := "CodeCourse - Test email"
	body := fmt.Sprintf(`<p>Test email for <strong>%s</strong>.</p>`, email)

	return SendEmail([]string{email}, subject, getEmailTemplate("Test email", body))
}
