package nocobase

import (
	"context"
	"fmt"
	"strings"
)

// CollectionsList lists collection definitions.
func (c *Client) CollectionsList(ctx context.Context, params Params) (Response, error) {
	return c.request(ctx, "GET", "collections:list", params, nil)
}

// CollectionsGet fetches one collection definition by name. Server
// versions differ on the query key, so the name is attempted as name=
// first and as filterByTk= if the server rejects that with a 4xx.
func (c *Client) CollectionsGet(ctx context.Context, name string) (Response, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return c.requestFallback(ctx, "GET", "collections:get", []attempt{
		{params: Params{"name": name}},
		{params: Params{"filterByTk": name}},
	})
}

// CollectionsCreate creates a collection. The payload usually carries
// name, title and a fields list.
func (c *Client) CollectionsCreate(ctx context.Context, payload Values) (Response, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	return c.request(ctx, "POST", "collections:create", nil, payload)
}

// CollectionsUpdate updates a collection definition. The payload must
// include the name of the collection it targets.
func (c *Client) CollectionsUpdate(ctx context.Context, payload Values) (Response, error) {
	if len(payload) == 0 {
		return nil, ErrEmptyPayload
	}
	name, ok := payload["name"]
	if !ok || strings.TrimSpace(fmt.Sprint(name)) == "" {
		return nil, ErrMissingName
	}
	return c.request(ctx, "POST", "collections:update", nil, payload)
}

// CollectionsDestroy deletes a collection by name. Three shapes are
// attempted in order, each only after the prior one is rejected with a
// 4xx: body {"name": ...}, query name=, query filterByTk=.
func (c *Client) CollectionsDestroy(ctx context.Context, name string) (Response, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	return c.requestFallback(ctx, "POST", "collections:destroy", []attempt{
		{body: Values{"name": name}},
		{params: Params{"name": name}},
		{params: Params{"filterByTk": name}},
	})
}

// CollectionsMove reorders or regroups collections.
func (c *Client) CollectionsMove(ctx context.Context, payload Values) (Response, error) {
	return c.request(ctx, "POST", "collections:move", nil, bodyOrNil(payload))
}

// CollectionsSetFields replaces the field definitions of a collection
// in one call.
func (c *Client) CollectionsSetFields(ctx context.Context, payload Values) (Response, error) {
	return c.request(ctx, "POST", "collections:setFields", nil, bodyOrNil(payload))
}

// bodyOrNil keeps a nil payload map from traveling as a JSON null body.
func bodyOrNil(payload Values) any {
	if payload == nil {
		return nil
	}
	return payload
}

// Action issues an arbitrary request against an action path such as
// "test1:create" or "collections:list". It is the escape hatch for
// endpoints the named methods do not cover: the request goes out
// exactly as given, with no fallback. Method defaults to POST.
func (c *Client) Action(ctx context.Context, method, path string, params Params, body any) (Response, error) {
	if strings.TrimSpace(path) == "" {
		return nil, ErrEmptyPath
	}
	if method == "" {
		method = "POST"
	}
	return c.request(ctx, strings.ToUpper(method), path, params, body)
}
