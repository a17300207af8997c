// Package core provides the business logic for thermal label generation.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support
// reference. When users encounter errors, they can quote the error code to
// support staff for faster diagnosis.
//
// Error codes are grouped by category:
//
// # Parse Errors (PARSE001-PARSE099)
//
// Errors raised while reading pasted table text:
//
//	PARSE001 - Insufficient rows: paste had no header line or no data lines
//	           Action: Copy the table including its header row
//	           Patterns: "insufficient rows"
//
//	PARSE002 - Missing column: a required column header was not found
//	           Action: Check that the export includes all three columns
//	           Patterns: "missing column"
//
//	PARSE003 - No valid rows: every data row failed validation
//	           Action: Check codes, descriptions and quantities in the source
//	           Patterns: "no valid rows"
//
//	PARSE004 - Input too large: pasted text exceeds the configured limit
//	           Action: Paste the table in smaller batches
//	           Patterns: "input too large"
//
// # Registry Errors (SCH001, PROF001-PROF099)
//
// Errors raised when looking up schemas and profiles:
//
//	SCH001  - Unknown schema: the input schema key is not registered
//	          Action: Pick a schema from the schema list
//	          Patterns: "unknown input schema"
//
//	PROF001 - Profile mismatch: the format profile is internally inconsistent
//	          Action: This profile is misconfigured; pick a different one
//	          Patterns: "profile mismatch"
//
//	PROF002 - Unknown profile: the format profile key is not registered
//	          Action: Pick a profile from the profile list
//	          Patterns: "unknown format profile"
//
// # Record Errors (REC001-REC099)
//
// Errors raised while editing records in a session:
//
//	REC001 - Record not found: the record id does not exist in this session
//	         Action: Refresh the record list and try again
//	         Patterns: "record not found"
//
//	REC002 - Invalid quantity: label quantity must be zero or greater
//	         Action: Enter a whole number of labels, zero or more
//	         Patterns: "quantity must be"
//
//	REC003 - Empty field: code or description was empty after cleaning
//	         Action: Fill in both the article code and the description
//	         Patterns: "required field is empty"
//
// # Session Errors (SES001-SES099)
//
// Errors raised by the session store:
//
//	SES001 - Session expired: session not found or evicted
//	         Action: Start a new session; sessions expire after inactivity
//	         Patterns: "session not found"
//
//	SES002 - Session full: per-session record limit reached
//	         Action: Generate the current batch before adding more rows
//	         Patterns: "session record limit"
//
// # Request Errors (REQ001-REQ099)
//
// Errors raised by the transport layer:
//
//	REQ001 - Body too large: request body exceeds the configured limit
//	         Action: Paste the table in smaller batches
//	         Patterns: "request body too large"
//
//	REQ002 - Cancelled: the request was cancelled by the client
//	         Action: Retry when ready
//	         Patterns: "context canceled"
//
//	REQ003 - Timeout: the request took too long
//	         Action: Try again with a smaller paste
//	         Patterns: "deadline exceeded"
//
//	REQ004 - Validation failed: request fields missing or invalid
//	         Action: Correct the listed fields and resubmit
//	         (minted directly by the HTTP layer, which renders the
//	         per-field messages; no pattern entry)
//
//	REQ005 - Malformed body: the request body was not valid JSON
//	         Action: Send a JSON body matching the endpoint
//	         Patterns: "invalid request body"
//
// # Rate Limiting (RATE001-RATE099)
//
// Errors related to request throttling:
//
//	RATE001 - Rate limited: Too many requests
//	          Action: Please wait a moment before trying again
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
// Fallback when no specific pattern matches:
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Please try again or contact support
//
// # Pattern Matching
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins, so more specific patterns should be
// defined before general ones.
//
// # For Support Staff
//
// When a user reports an error code:
//  1. Look up the code in this reference
//  2. Check the associated patterns to understand what triggered it
//  3. Review the suggested action to guide the user
//  4. If ERR000, check application logs for the original technical error
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// Patterns are matched using strings.Contains, so partial matches work.
// The first matching pattern wins, so order matters:
//   - More specific patterns should come before general ones
//   - Multiple patterns can map to the same error code
//
// To add a new error pattern:
//  1. Choose the appropriate category and code range
//  2. Add the pattern in the correct position (specific before general)
//  3. Update the package documentation at the top of this file
var errorPatterns = []errorPattern{
	// =========================================================================
	// Parse Errors (PARSE001-PARSE004)
	// These errors occur while reading pasted table text.
	// =========================================================================
	{
		pattern: "insufficient rows",
		msg: UserMessage{
			Message: "The paste needs a header row and at least one data row",
			Action:  "Copy the table including its header row",
			Code:    "PARSE001",
		},
	},
	{
		pattern: "missing column",
		msg: UserMessage{
			Message: "A required column is missing from the paste",
			Action:  "Check that the export includes all three columns",
			Code:    "PARSE002",
		},
	},
	{
		pattern: "no valid rows",
		msg: UserMessage{
			Message: "No usable rows were found in the paste",
			Action:  "Check codes, descriptions and quantities in the source table",
			Code:    "PARSE003",
		},
	},
	{
		pattern: "input too large",
		msg: UserMessage{
			Message: "The pasted text is too large",
			Action:  "Paste the table in smaller batches",
			Code:    "PARSE004",
		},
	},

	// =========================================================================
	// Registry Errors (SCH001, PROF001-PROF002)
	// These errors occur when looking up schemas and profiles.
	// =========================================================================
	{
		pattern: "unknown input schema",
		msg: UserMessage{
			Message: "That input schema does not exist",
			Action:  "Pick a schema from the schema list",
			Code:    "SCH001",
		},
	},
	{
		pattern: "profile mismatch",
		msg: UserMessage{
			Message: "The format profile is misconfigured",
			Action:  "Pick a different format profile",
			Code:    "PROF001",
		},
	},
	{
		pattern: "unknown format profile",
		msg: UserMessage{
			Message: "That format profile does not exist",
			Action:  "Pick a profile from the profile list",
			Code:    "PROF002",
		},
	},

	// =========================================================================
	// Record Errors (REC001-REC003)
	// These errors occur while editing records in a session.
	// =========================================================================
	{
		pattern: "record not found",
		msg: UserMessage{
			Message: "That record no longer exists in this session",
			Action:  "Refresh the record list and try again",
			Code:    "REC001",
		},
	},
	{
		pattern: "quantity must be",
		msg: UserMessage{
			Message: "Label quantity must be zero or greater",
			Action:  "Enter a whole number of labels, zero or more",
			Code:    "REC002",
		},
	},
	{
		pattern: "required field is empty",
		msg: UserMessage{
			Message: "The article code and description are both required",
			Action:  "Fill in both fields before saving",
			Code:    "REC003",
		},
	},

	// =========================================================================
	// Session Errors (SES001-SES002)
	// These errors occur in the session store.
	// =========================================================================
	{
		pattern: "session not found",
		msg: UserMessage{
			Message: "Your session has expired",
			Action:  "Start a new session; sessions expire after inactivity",
			Code:    "SES001",
		},
	},
	{
		pattern: "session record limit",
		msg: UserMessage{
			Message: "This session has reached its record limit",
			Action:  "Generate the current batch before adding more rows",
			Code:    "SES002",
		},
	},

	// =========================================================================
	// Request Errors (REQ001-REQ003)
	// These errors come from the transport layer.
	// =========================================================================
	{
		pattern: "request body too large",
		msg: UserMessage{
			Message: "The request body is too large",
			Action:  "Paste the table in smaller batches",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The request was cancelled",
			Action:  "Retry when ready",
			Code:    "REQ002",
		},
	},
	{
		pattern: "deadline exceeded",
		msg: UserMessage{
			Message: "The request took too long",
			Action:  "Try again with a smaller paste",
			Code:    "REQ003",
		},
	},
	{
		pattern: "invalid request body",
		msg: UserMessage{
			Message: "The request body could not be read",
			Action:  "Send a JSON body matching the endpoint",
			Code:    "REQ005",
		},
	},

	// =========================================================================
	// Rate Limiting (RATE001)
	// These errors occur when request limits are exceeded.
	// =========================================================================
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
// This is the fallback for unexpected errors. Support staff should check
// application logs for the original technical error when users report ERR000.
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It searches through known error patterns (case-insensitive) and returns
// the first match. If no pattern matches, a generic fallback message with
// code ERR000 is returned.
//
// Example:
//
//	err := errors.New("session not found")
//	msg := MapError(err)
//	// msg.Code == "SES001"
//	// msg.Message == "Your session has expired"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
//
// Example output: "Your session has expired (Code: SES001). Start a new session; sessions expire after inactivity"
//
// This is the primary function for displaying errors to end users.
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing checks if an error matches a known pattern and should be shown to users.
// Returns true if the error matches a specific pattern (not the generic ERR000 fallback).
// Use this to decide whether to show the raw error or the mapped user message.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	msg := MapError(err)
	return msg.Code != defaultMessage.Code
}

// UserError wraps a technical error with a user-friendly message.
// The original error is preserved for logging while providing a clean
// message for users.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError creates a UserError by mapping a technical error to a
// user-friendly message. The returned UserError preserves the original
// technical error for logging via Unwrap(), while providing a clean user
// message via Error().
//
// Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
