// Package postgres implements the store interfaces on PostgreSQL, accessed
// through database/sql with the pgx driver. It owns the schema migrations
// and the mapping from PostgreSQL error codes to store sentinel errors.
package postgres
