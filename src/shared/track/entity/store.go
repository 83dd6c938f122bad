package trackentity

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Source
type Source interface {
	ListTracks(ctx context.Context) ([]Track, error)
}
