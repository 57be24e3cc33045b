package snapshot

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	db      *gorm.DB
	store   *Store
	handler *Handler
}

// NewFeature creates a new Snapshot feature. A nil db disables the feature,
// keeping the server usable without a database.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	f := &Feature{db: db}
	if db != nil {
		f.store = NewStore(db)
		f.handler = NewHandler(f.store, logger)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "snapshot"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.store.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Store exposes the underlying store so commands can persist runs directly.
func (f *Feature) Store() *Store {
	return f.store
}
