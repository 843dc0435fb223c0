package models

// ModelRegistry lists every model covered by gorm AutoMigrate in development.
// Production schemas are managed by the SQL files under migrations/.
var ModelRegistry = []interface{}{
	&WaitlistSignup{},
	&Comment{},
}
