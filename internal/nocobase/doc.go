// Package nocobase is a client for the NocoBase HTTP API.
//
// NocoBase exposes everything through action-style endpoints of the
// form {resource}:{action}. The client wraps the common record and
// collection operations with typed methods and leaves everything else
// reachable through Action. Response bodies are decoded JSON objects
// returned verbatim as Response maps.
//
//	client, err := nocobase.FromEnv(".env")
//	if err != nil {
//		return err
//	}
//	if _, err := client.Create(ctx, "test1", nocobase.Values{"name": "alpha"}); err != nil {
//		return err
//	}
//	resp, err := client.List(ctx, "test1", nocobase.Params{"pageSize": 5})
//	if err != nil {
//		return err
//	}
//	for _, row := range resp.Rows() {
//		fmt.Println(row["id"], row["name"])
//	}
//
// Server versions disagree on the accepted request shape for a few
// actions. The affected methods try a fixed list of shapes in order,
// moving to the next only when the server answers with a 4xx status;
// server errors and transport failures are returned immediately.
package nocobase
