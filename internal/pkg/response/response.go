// Package response defines the two JSON envelopes every endpoint answers
// with. Success bodies carry status "success", a flash-style message for
// the frontend and the data payload; failures carry status "error" with
// the message and HTTP status repeated inside the error object so clients
// can branch without inspecting transport-level state.
package response

import "github.com/gofiber/fiber/v2"

// Envelope is the success body.
type Envelope struct {
	Status   string      `json:"status"`
	Message  string      `json:"message"`
	Data     interface{} `json:"data"`
	Metadata interface{} `json:"metadata,omitempty"`
}

// Failure is the error body.
type Failure struct {
	Status string `json:"status"`
	Error  Fault  `json:"error"`
}

// Fault is the nested error object inside a Failure.
type Fault struct {
	Message    string      `json:"message"`
	StatusCode int         `json:"statusCode"`
	Details    interface{} `json:"details,omitempty"`
}

func envelope(message string, data, metadata interface{}) Envelope {
	if metadata == nil {
		metadata = map[string]interface{}{}
	}
	return Envelope{Status: "success", Message: message, Data: data, Metadata: metadata}
}

// Success sends 200 with the success envelope.
func Success(c *fiber.Ctx, message string, data interface{}, metadata interface{}) error {
	return c.Status(fiber.StatusOK).JSON(envelope(message, data, metadata))
}

// SuccessCreated sends 201 with the success envelope.
func SuccessCreated(c *fiber.Ctx, message string, data interface{}, metadata interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(envelope(message, data, metadata))
}

// Error sends the failure envelope with the given HTTP status.
func Error(c *fiber.Ctx, message string, statusCode int, details interface{}) error {
	if details == nil {
		details = map[string]interface{}{}
	}
	return c.Status(statusCode).JSON(Failure{
		Status: "error",
		Error:  Fault{Message: message, StatusCode: statusCode, Details: details},
	})
}

// Unauthorized is Error with 401, used by the auth middleware.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusUnauthorized, nil)
}
