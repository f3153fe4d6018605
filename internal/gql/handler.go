package gql

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/wichananm65/social-graph-backend/internal/respond"
	"github.com/wichananm65/social-graph-backend/internal/service"
)

type Handler struct {
	schema graphql.Schema
	log    *zap.Logger
}

type graphqlRequest struct {
	Query         string                 `json:"query" validate:"required"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

func NewHandler(svc *service.Service, log *zap.Logger) (*Handler, error) {
	schema, err := NewSchema(svc)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{schema: schema, log: log}, nil
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Post("/graphql", h.execute)
}

// execute always answers 200 once the body parses; resolver failures are
// reported in the "errors" member of the result.
func (h *Handler) execute(c *fiber.Ctx) error {
	var req graphqlRequest
	if err := respond.Bind(c, "graphql", &req); err != nil {
		return respond.Error(c, err)
	}
	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.UserContext(),
	})
	if result.HasErrors() {
		h.log.Debug("graphql errors",
			zap.String("operation", req.OperationName),
			zap.Int("count", len(result.Errors)),
			zap.String("first", result.Errors[0].Message),
		)
	}
	return c.JSON(result)
}
