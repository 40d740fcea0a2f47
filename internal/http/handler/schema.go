package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"
)

// SchemaHandler publishes the JSON Schemas of the request and response bodies
type SchemaHandler struct {
	schemas map[string]*jsonschema.Schema
}

// NewSchemaHandler reflects a schema for every named value
func NewSchemaHandler(types map[string]any) *SchemaHandler {
	schemas := make(map[string]*jsonschema.Schema, len(types))
	r := &jsonschema.Reflector{ExpandedStruct: true}
	for name, v := range types {
		schemas[name] = r.Reflect(v)
	}
	return &SchemaHandler{schemas: schemas}
}

func (h *SchemaHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.schemas)
}
