// Package catalog holds the static dish reference data a table serves
// to every new connection. The data is read-only at runtime; lookups go
// through an in-memory index, full listings keep menu order.
package catalog

import (
	"fmt"

	"github.com/hashicorp/go-memdb"
	"github.com/spf13/viper"
)

// Dish is one orderable catalog entry. CookingTime is in milliseconds.
type Dish struct {
	ID          string `json:"id" mapstructure:"id"`
	Name        string `json:"name" mapstructure:"name"`
	Category    string `json:"category" mapstructure:"category"`
	Price       int    `json:"price" mapstructure:"price"`
	Emoji       string `json:"emoji" mapstructure:"emoji"`
	CookingTime int64  `json:"cookingTime" mapstructure:"cookingTime"`
	Description string `json:"description" mapstructure:"description"`
	Spiciness   int    `json:"spiciness" mapstructure:"spiciness"`
}

type Catalog struct {
	db     *memdb.MemDB
	dishes []Dish
}

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"dishes": {
			Name: "dishes",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "ID"},
				},
				"category": {
					Name:    "category",
					Indexer: &memdb.StringFieldIndex{Field: "Category"},
				},
			},
		},
	},
}

func New(dishes []Dish) (*Catalog, error) {
	mdb, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, err
	}
	txn := mdb.Txn(true)
	for _, d := range dishes {
		if d.ID == "" {
			txn.Abort()
			return nil, fmt.Errorf("catalog dish %q has no id", d.Name)
		}
		if err := txn.Insert("dishes", d); err != nil {
			txn.Abort()
			return nil, err
		}
	}
	txn.Commit()
	out := make([]Dish, len(dishes))
	copy(out, dishes)
	return &Catalog{db: mdb, dishes: out}, nil
}

// Load builds the catalog from a JSON file with a top-level "dishes"
// key, or from the built-in data when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return New(defaultDishes)
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	var dishes []Dish
	if err := v.UnmarshalKey("dishes", &dishes); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if len(dishes) == 0 {
		return nil, fmt.Errorf("catalog %s contains no dishes", path)
	}
	return New(dishes)
}

// All returns every dish in menu order.
func (c *Catalog) All() []Dish {
	out := make([]Dish, len(c.dishes))
	copy(out, c.dishes)
	return out
}

func (c *Catalog) ByID(id string) (Dish, bool) {
	txn := c.db.Txn(false)
	defer txn.Abort()
	raw, err := txn.First("dishes", "id", id)
	if err != nil || raw == nil {
		return Dish{}, false
	}
	return raw.(Dish), true
}

func (c *Catalog) ByCategory(category string) []Dish {
	txn := c.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get("dishes", "category", category)
	if err != nil {
		return nil
	}
	var out []Dish
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, raw.(Dish))
	}
	return out
}

// QuickMessages lists the canned table-chat phrases.
func QuickMessages() []string {
	out := make([]string, len(quickMessages))
	copy(out, quickMessages)
	return out
}
