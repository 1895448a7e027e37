// Package responses holds the fixed replies the assistant gives without
// consulting the model backend.
package responses

import "github.com/anshuchowdary926-eng/visamate/internal/scope"

const (
	greeting = "Hello! I'm VisaMate, your Schengen visa assistant for Indian applicants. " +
		"Ask me anything about Schengen visa requirements, documents, appointments, or the application process."

	capability = "I'm VisaMate, built to help Indian applicants with Schengen visas — eligibility, " +
		"required documents, appointment booking, fees, processing times, and embassy or VFS procedures " +
		"for any Schengen country. Ask me a Schengen visa question to get started."

	outOfScope = "I can only help with Schengen visa queries for Indian applicants. " +
		"Please ask me something about Schengen visa requirements, documents, appointments, or the application process."
)

// For returns the canned reply for a verdict. InScope has no canned reply;
// those messages go to the model backend.
func For(v scope.Verdict) (string, bool) {
	switch v {
	case scope.Greeting:
		return greeting, true
	case scope.CapabilityQuery:
		return capability, true
	case scope.OutOfScope:
		return outOfScope, true
	default:
		return "", false
	}
}
