// Package postman models Postman Collection Format v2.1 documents and
// serializes them the way Postman itself exports them.
//
// The types cover the subset a generated collection uses: an info block, a
// collection-level bearer auth, pre-request and test events, collection
// variables, and one level of folders holding request items. Struct field
// order matches the exported key order, so Marshal output is stable and
// diff-friendly.
//
// # Quick Start
//
//	c := postman.NewCollection(postman.Settings{Name: "Pets API"})
//	c.Item = append(c.Item, &postman.ItemGroup{
//		Name:        "Pets",
//		Description: "Pets endpoints",
//		Item: []*postman.Item{{
//			Name: "List pets",
//			Request: &postman.Request{
//				Method: "GET",
//				Header: []*postman.Header{postman.JSONContentType()},
//				URL:    postman.NewURL("/pets"),
//			},
//			Response: []json.RawMessage{},
//		}},
//	})
//	if err := postman.WriteFile("pets.postman_collection.json", c); err != nil {
//		log.Fatal(err)
//	}
package postman
