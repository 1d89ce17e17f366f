package utils

import (
	"time"

	"codecourse/config"

	"github.com/go-resty/resty/v2"
)

var pistonClient *resty.Client

// InitPistonClient builds the shared client for the code execution
// sandbox. Call once after configuration is loaded.
func InitPistonClient() {
	pistonClient = resty.New().
		SetBaseURL(config.AppConfig.PistonApiURL).
		SetTimeout(time.Duration(config.AppConfig.PistonTimeoutSeconds) * time.Second)
}

// PistonClient returns the shared sandbox client, building it on first
// use.
func PistonClient() *resty.Client {
	if pistonClient == nil {
		InitPistonClient()
	}
	return pistonClient
}
