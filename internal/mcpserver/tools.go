package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"github.com/corpac/coba/internal/api/request"
	"github.com/corpac/coba/internal/client"
)

// recordCollections are the REST collections get_record can read.
var recordCollections = []string{
	"services", "slas", "incidents", "audits", "non-conformities",
	"risks", "assets", "problems", "reports",
}

// Tools exposes the dashboard to agents. Every handler goes through the
// REST API, so validation and derived fields are the API's.
type Tools struct {
	api    *client.Client
	logger zerolog.Logger
}

func NewTools(api *client.Client, logger zerolog.Logger) *Tools {
	return &Tools{api: api, logger: logger.With().Str("component", "mcp-tools").Logger()}
}

// All returns every tool with its handler.
func (t *Tools) All() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_dashboard",
				mcp.WithDescription("Current KPIs (availability, active incidents, SLA compliance, satisfaction) with their bands and the dashboard alerts."),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			Handler: t.getDashboard,
		},
		{
			Tool: mcp.NewTool("list_slas",
				mcp.WithDescription("List SLAs newest first with target, current value and derived status."),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("status", mcp.Description("Comma-separated statuses: compliant, at_risk, non_compliant")),
				mcp.WithString("search", mcp.Description("Case-insensitive text matched against the SLA name")),
				mcp.WithNumber("limit", mcp.Description("Page size, 1 to 200"), mcp.Min(1), mcp.Max(200)),
				mcp.WithString("cursor", mcp.Description("next_cursor of the previous page")),
			),
			Handler: t.list("/slas", "status", "search", "cursor"),
		},
		{
			Tool: mcp.NewTool("list_incidents",
				mcp.WithDescription("List incidents and service requests newest first."),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("status", mcp.Description("Comma-separated statuses: open, in_progress, resolved, closed")),
				mcp.WithString("priority", mcp.Enum("low", "medium", "high", "critical")),
				mcp.WithString("type", mcp.Enum("incident", "request")),
				mcp.WithString("search", mcp.Description("Case-insensitive text matched against title and description")),
				mcp.WithNumber("limit", mcp.Description("Page size, 1 to 200"), mcp.Min(1), mcp.Max(200)),
				mcp.WithString("cursor", mcp.Description("next_cursor of the previous page")),
			),
			Handler: t.list("/incidents", "status", "priority", "type", "search", "cursor"),
		},
		{
			Tool: mcp.NewTool("get_record",
				mcp.WithDescription("Fetch one record by collection and ID."),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("collection", mcp.Required(), mcp.Enum(recordCollections...)),
				mcp.WithString("id", mcp.Required(), mcp.Description("Record ID, e.g. INC482913")),
			),
			Handler: t.getRecord,
		},
		{
			Tool: mcp.NewTool("create_incident",
				mcp.WithDescription("Open an incident (INC ID) or a service request (REQ ID)."),
				mcp.WithDestructiveHintAnnotation(false),
				mcp.WithString("title", mcp.Required()),
				mcp.WithString("description", mcp.Required()),
				mcp.WithString("priority", mcp.Required(), mcp.Enum("low", "medium", "high", "critical")),
				mcp.WithString("category", mcp.Required(), mcp.Enum("hardware", "software", "network", "access", "other")),
				mcp.WithString("type", mcp.Enum("incident", "request")),
				mcp.WithString("service_id", mcp.Description("ID of an active service")),
			),
			Handler: t.createIncident,
		},
		{
			Tool: mcp.NewTool("list_iso_requirements",
				mcp.WithDescription("ISO clauses tracked for a standard with their status, evidence module and compliance percentage."),
				mcp.WithReadOnlyHintAnnotation(true),
				mcp.WithString("standard", mcp.Required(), mcp.Enum("iso20000", "iso9001")),
			),
			Handler: t.listISO,
		},
	}
}

func (t *Tools) getDashboard(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := t.api.Dashboard(ctx)
	if err != nil {
		return t.fail(req, err), nil
	}
	return jsonResult(snap)
}

// list builds a handler that forwards the named string arguments, plus
// limit, as query parameters and returns the API page unchanged.
func (t *Tools) list(path string, params ...string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		q := url.Values{}
		for _, p := range params {
			if v := strings.TrimSpace(req.GetString(p, "")); v != "" {
				q.Set(p, v)
			}
		}
		if limit := req.GetInt("limit", 0); limit > 0 {
			q.Set("limit", strconv.Itoa(limit))
		}

		resp, err := t.api.Get(ctx, path, q)
		if err != nil {
			return t.fail(req, err), nil
		}
		return mcp.NewToolResultText(string(resp.Body)), nil
	}
}

func (t *Tools) getRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collection, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !slices.Contains(recordCollections, collection) {
		return mcp.NewToolResultError(fmt.Sprintf("unknown collection %q", collection)), nil
	}
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	resp, err := t.api.Get(ctx, "/"+collection+"/"+url.PathEscape(id), nil)
	if err != nil {
		return t.fail(req, err), nil
	}
	return mcp.NewToolResultText(string(resp.Body)), nil
}

func (t *Tools) createIncident(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	form := request.CreateIncident{
		Title:       req.GetString("title", ""),
		Description: req.GetString("description", ""),
		Priority:    req.GetString("priority", ""),
		Type:        req.GetString("type", ""),
		Category:    req.GetString("category", ""),
	}
	if sid := strings.TrimSpace(req.GetString("service_id", "")); sid != "" {
		form.ServiceID = &sid
	}

	resp, err := t.api.Post(ctx, "/incidents", form)
	if err != nil {
		return t.fail(req, err), nil
	}
	t.logger.Info().Str("tool", req.Params.Name).Msg("incident created through MCP")
	return mcp.NewToolResultText(string(resp.Body)), nil
}

func (t *Tools) listISO(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	standard, err := req.RequireString("standard")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	iso, err := t.api.ISO(ctx, standard)
	if err != nil {
		return t.fail(req, err), nil
	}
	return jsonResult(iso)
}

// fail turns an API error into a tool error the agent can read. Field
// messages from a rejected body are part of the text.
func (t *Tools) fail(req mcp.CallToolRequest, err error) *mcp.CallToolResult {
	t.logger.Warn().Err(err).Str("tool", req.Params.Name).Msg("tool call failed")
	return mcp.NewToolResultError(err.Error())
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
