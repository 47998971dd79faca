// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Credential is the predicate function for credential builders.
type Credential func(*sql.Selector)

// Draft is the predicate function for draft builders.
type Draft func(*sql.Selector)

// LLMCall is the predicate function for llmcall builders.
type LLMCall func(*sql.Selector)

// SessionRecord is the predicate function for sessionrecord builders.
type SessionRecord func(*sql.Selector)

// Setting is the predicate function for setting builders.
type Setting func(*sql.Selector)
