// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Key Principles:
// 1. Domain entities should be free of GORM tags and infrastructure concerns
// 2. Persistence models contain all GORM annotations and table mappings
// 3. Mappers convert between persistence records and domain types
// 4. Repositories use persistence models for database operations
//
// Structure:
// - accounting.go: chart-of-accounts, payment type, charge, and product
// mapping models, plus the flat join record the mapping reader projects into
package models
