// Package respond turns core results into fiber responses.
package respond

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/social-graph-backend/internal/domain"
	"github.com/wichananm65/social-graph-backend/internal/store"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Status maps a core error kind to an HTTP status. Every client-side
// rejection is a 400; only a missing record is distinguished.
func Status(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return fiber.StatusNotFound
	case domain.KindBadRequest, domain.KindValidation, domain.KindReference:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// Error writes err as a JSON error body with the mapped status.
func Error(c *fiber.Ctx, err error) error {
	kind := domain.KindOf(err)
	msg := err.Error()
	var e *domain.Error
	if errors.As(err, &e) && e.Message != "" && kind != domain.KindInternal {
		msg = e.Message
	}
	return c.Status(Status(kind)).JSON(fiber.Map{
		"error":   string(kind),
		"message": msg,
	})
}

// Bind parses the request body into dst and runs its validate tags.
func Bind(c *fiber.Ctx, op string, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.BadRequest(op, "invalid body: %v", err)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return domain.BadRequest(op, "%s", describe(verrs))
		}
		return domain.BadRequest(op, "%v", err)
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s must satisfy %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// Predicates reads the list filter from ?key=&equals= or ?key=&inArray=.
// No key means no filter.
func Predicates(c *fiber.Ctx, op string) ([]store.Predicate, error) {
	key := c.Query("key")
	equals, hasEquals := query(c, "equals")
	member, hasMember := query(c, "inArray")
	if key == "" {
		if hasEquals || hasMember {
			return nil, domain.BadRequest(op, "filter needs a key")
		}
		return nil, nil
	}
	switch {
	case hasEquals && hasMember:
		return nil, domain.BadRequest(op, "use either equals or inArray, not both")
	case hasEquals:
		return []store.Predicate{store.Eq(key, equals)}, nil
	case hasMember:
		return []store.Predicate{store.Contains(key, member)}, nil
	}
	return nil, domain.BadRequest(op, "filter on %q needs equals or inArray", key)
}

func query(c *fiber.Ctx, name string) (string, bool) {
	args := c.Context().QueryArgs()
	if !args.Has(name) {
		return "", false
	}
	return string(args.Peek(name)), true
}
