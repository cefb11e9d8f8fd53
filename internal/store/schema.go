package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const collectionsTableName = "collections"

var (
	// collectionsColumns holds one serialized collection per row.
	collectionsColumns = []*schema.Column{
		{Name: "name", Type: field.TypeString},
		{Name: "data", Type: field.TypeString, Size: 2147483647},
		{Name: "updated_at", Type: field.TypeTime},
	}
	collectionsTable = &schema.Table{
		Name:       collectionsTableName,
		Columns:    collectionsColumns,
		PrimaryKey: []*schema.Column{collectionsColumns[0]},
	}

	tables = []*schema.Table{
		collectionsTable,
	}
)
