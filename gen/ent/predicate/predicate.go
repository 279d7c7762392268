// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Audience is the predicate function for audience builders.
type Audience func(*sql.Selector)

// BusinessFunction is the predicate function for businessfunction builders.
type BusinessFunction func(*sql.Selector)

// Industry is the predicate function for industry builders.
type Industry func(*sql.Selector)

// Item is the predicate function for item builders.
type Item func(*sql.Selector)

// Team is the predicate function for team builders.
type Team func(*sql.Selector)
