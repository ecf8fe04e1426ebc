package utils

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ParseStrictBody decodes the request body into out, rejecting unknown
// fields. Fiber's BodyParser cannot do that, and the schemas here are
// strict: an unrecognized key is a validation error, not noise to ignore.
func ParseStrictBody(c *fiber.Ctx, out any) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}
