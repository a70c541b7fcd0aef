// Package provider holds the request/response shapes shared by external
// service adapters and the services that call them.
package provider

// ClassifyRequest is one synchronous call to a generative classifier.
type ClassifyRequest struct {
	Model           string
	Temperature     float64
	MaxOutputTokens int
	Prompt          string
}
