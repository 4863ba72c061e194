package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/harborlane/storefront-api/pkg/config"
	appErrors "github.com/harborlane/storefront-api/pkg/errors"
)

// PresentationService produces the viewer-facing strings that depend on the
// active display timezone: the own-vs-alternate toggle and the hour-banded
// greeting banner.
type PresentationService struct {
	cities    config.CitiesConfig
	locations LocationResolver
	logger    *zap.Logger
}

// NewPresentationService instantiates PresentationService.
func NewPresentationService(cities config.CitiesConfig, locations LocationResolver, logger *zap.Logger) *PresentationService {
	if locations == nil {
		locations = SystemLocationResolver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PresentationService{cities: cities, locations: locations, logger: logger}
}

// ActiveTimezone picks between the viewer's own timezone and the alternate
// city timezone.
func (p *PresentationService) ActiveTimezone(own, alternate *time.Location, useAlternate bool) *time.Location {
	if useAlternate {
		return alternate
	}
	return own
}

// ResolveTimezone resolves an IANA identifier through the injected resolver.
func (p *PresentationService) ResolveTimezone(name string) (*time.Location, error) {
	loc, err := p.locations.Resolve(name)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInvalidTimezone.Code, appErrors.ErrInvalidTimezone.Status, fmt.Sprintf("unknown timezone %q", name))
	}
	return loc, nil
}

// Greeting bands the instant's hour of day in its own location. Bands are
// half-open: [05,10) morning, [10,12) late morning, [12,17) afternoon,
// [17,21) evening, everything else night.
func (p *PresentationService) Greeting(instant time.Time, city string) string {
	switch hour := instant.Hour(); {
	case hour >= 5 && hour < 10:
		return fmt.Sprintf("Good Morning, %s!", city)
	case hour >= 10 && hour < 12:
		return fmt.Sprintf("Late Morning Vibes! %s", city)
	case hour >= 12 && hour < 17:
		return fmt.Sprintf("Good Afternoon, %s!", city)
	case hour >= 17 && hour < 21:
		return fmt.Sprintf("Good Evening, %s!", city)
	default:
		return fmt.Sprintf("Night Owl in %s!", city)
	}
}

// CityLabel derives a display label from an IANA identifier, e.g.
// "America/New_York" becomes "New York".
func (p *PresentationService) CityLabel(timezone string) string {
	label := timezone
	if idx := strings.LastIndex(label, "/"); idx >= 0 {
		label = label[idx+1:]
	}
	return strings.ReplaceAll(label, "_", " ")
}

// AlternateCity picks the alternate display city from the viewer's
// coordinates: inside the primary city's bounding box the alternate is the
// secondary city, everywhere else it is the primary one. This is a fixed
// two-way choice, not a nearest-city lookup.
func (p *PresentationService) AlternateCity(lat, lng float64) config.CityConfig {
	box := p.cities.PrimaryBox
	if lat >= box.MinLat && lat <= box.MaxLat && lng >= box.MinLng && lng <= box.MaxLng {
		return p.cities.Secondary
	}
	return p.cities.Primary
}
