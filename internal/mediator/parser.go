package mediator

import (
	"bytes"
	"encoding/json"

	"github.com/mcpbridge/mcpbridge/pkg/types"
)

// ParseRequest turns a raw request body into a request envelope.
// It performs only structural validation:
//   - an empty or whitespace-only body is an InvalidRequest
//   - text that is not valid JSON, or not a JSON object, is a ParseError
//   - a missing method decodes to "" and routes to method-not-found downstream
//
// Deeper validation belongs to the dispatcher and the tool invoker.
func ParseRequest(body []byte) (*types.Request, *types.ErrorObject) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, &types.ErrorObject{
			Code:    types.CodeInvalidRequest,
			Message: "Empty request body",
		}
	}

	var req types.Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, &types.ErrorObject{
			Code:    types.CodeParseError,
			Message: "Parse error",
			Data:    err.Error(),
		}
	}
	return &req, nil
}
