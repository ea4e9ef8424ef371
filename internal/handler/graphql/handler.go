package graphql

import (
	"encoding/json"
	"errors"
	"net/http"

	"petstore-backend/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/graphql-go"
)

var errMissingQuery = errors.New("graphql request has no query")

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	// accepted and ignored
	Extensions    map[string]any `json:"extensions"`
}

type Handler struct {
	schema *graphql.Schema
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{schema: NewSchema(resolver)}
}

// @Summary GraphQL endpoint
// @Description Executes a GraphQL operation; mutations require a bearer token
// @Tags graphql
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /graphql [post]
func (h *Handler) Serve(c *gin.Context) {
	var req request
	switch c.Request.Method {
	case http.MethodGet:
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if vars := c.Query("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
				httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid variables", nil)
				return
			}
		}
	default:
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid GraphQL request", nil)
			return
		}
	}

	if req.Query == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingQuery, "Missing query", nil)
		return
	}

	resp := h.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	c.JSON(http.StatusOK, resp)
}
