package interfaces

import "context"

//go:generate mockgen -source=settings_store_interface.go -destination=mocks/settings_store_mock.go -package=mocks

// ISettingsStore is key/value configuration with per-key defaults. Get
// returns def when the key has never been written.
type ISettingsStore interface {
	Get(ctx context.Context, key, def string) (string, error)
	Set(ctx context.Context, key, value string) error
}
