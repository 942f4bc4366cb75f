// Package catalog implements the product catalog: a key-value store of
// product records exposed over HTTP, plus the client adapter other services
// use to resolve product references.
package catalog

// Product is a catalog record. Name and price are snapshotted into orders at
// creation time, so later catalog edits never rewrite order history.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}
