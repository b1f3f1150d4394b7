package contextkeys

// Custom key type avoids collisions with other context users.
type contextKey string

// DBContextKey is the key under which *gorm.DB (pool or transaction)
// is stored in the request context.
const DBContextKey = contextKey("db")
