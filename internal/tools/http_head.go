package tools

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mcpbridge/mcpbridge/internal/mediator"
	"github.com/mcpbridge/mcpbridge/pkg/schema"
	"github.com/mcpbridge/mcpbridge/pkg/types"
)

// headClient caps how long a probe may hang on an unresponsive host.
// The inbound request's context still cancels earlier on client disconnect.
var headClient = &http.Client{Timeout: 15 * time.Second}

func httpHeadTool() *mediator.Tool {
	inputSchema := schema.NewBuilder().
		String("url", "The URL to probe with an HTTP HEAD request",
			schema.Required(),
			schema.Format("uri"),
		).
		Build()

	return &mediator.Tool{
		Name:        "http_head",
		Description: "Sends an HTTP HEAD request to a URL and reports the status code and response headers.",
		InputSchema: inputSchema,
		Annotations: &types.ToolAnnotations{
			ReadOnlyHint:  true,
			OpenWorldHint: true,
		},
		Handler: func(ctx context.Context, args map[string]any) (any, error) {
			rawURL, err := requiredStringArg(args, "url")
			if err != nil {
				return nil, err
			}

			u, err := url.Parse(rawURL)
			if err != nil {
				return nil, mediator.NewArgumentError("'url' is not a valid URL: %v", err)
			}
			if u.Scheme != "http" && u.Scheme != "https" {
				return nil, mediator.NewArgumentError("'url' must use the http or https scheme")
			}

			req, err := http.NewRequestWithContext(ctx, http.MethodHead, u.String(), nil)
			if err != nil {
				return nil, mediator.NewArgumentError("failed to build request for '%s': %v", rawURL, err)
			}

			resp, err := headClient.Do(req)
			if err != nil {
				return nil, mediator.NewDomainError("HEAD request to %s failed: %v", rawURL, err)
			}
			defer resp.Body.Close()

			headers := make(map[string]string, len(resp.Header))
			for name := range resp.Header {
				headers[name] = resp.Header.Get(name)
			}

			return map[string]any{
				"url":     rawURL,
				"status":  fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
				"headers": headers,
			}, nil
		},
	}
}
