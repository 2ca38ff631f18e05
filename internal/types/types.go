// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в рамках одного забега
type EntityID uint64
