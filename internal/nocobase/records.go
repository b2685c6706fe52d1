package nocobase

import (
	"context"
)

// Create inserts one record. The values map is sent as the request body.
func (c *Client) Create(ctx context.Context, collection string, values Values) (Response, error) {
	if err := requireCollection(collection); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}
	return c.request(ctx, "POST", collection+":create", nil, values)
}

// List queries records. Common params include page, pageSize, sort,
// filter, fields and appends; they pass through unchanged.
func (c *Client) List(ctx context.Context, collection string, params Params) (Response, error) {
	if err := requireCollection(collection); err != nil {
		return nil, err
	}
	return c.request(ctx, "GET", collection+":list", params, nil)
}

// Get fetches one record by primary key. The pk travels as the
// filterByTk query parameter; extra params are merged in and may
// override it.
func (c *Client) Get(ctx context.Context, collection string, pk any, params Params) (Response, error) {
	if err := requireCollection(collection); err != nil {
		return nil, err
	}
	if err := requirePK(pk); err != nil {
		return nil, err
	}
	merged := Params{"filterByTk": pk}
	for k, v := range params {
		merged[k] = v
	}
	return c.request(ctx, "GET", collection+":get", merged, nil)
}

// Update modifies one record by primary key. filterByTk always travels
// in the query string; the body is attempted with the values at top
// level first, and once more wrapped as {"values": ...} if the server
// rejects that shape with a 4xx.
//
// Depending on the server version the response data member is either
// the updated object or a one-element list; use Response.Rows to
// consume it either way.
func (c *Client) Update(ctx context.Context, collection string, pk any, values Values) (Response, error) {
	if err := requireCollection(collection); err != nil {
		return nil, err
	}
	if err := requirePK(pk); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}
	return c.requestFallback(ctx, "POST", collection+":update", []attempt{
		{params: Params{"filterByTk": pk}, body: values},
		{params: Params{"filterByTk": pk}, body: Values{"values": values}},
	})
}

// Destroy deletes one record by primary key.
func (c *Client) Destroy(ctx context.Context, collection string, pk any) (Response, error) {
	if err := requireCollection(collection); err != nil {
		return nil, err
	}
	if err := requirePK(pk); err != nil {
		return nil, err
	}
	return c.request(ctx, "POST", collection+":destroy", Params{"filterByTk": pk}, nil)
}
