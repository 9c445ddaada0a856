package out

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"mihrab/internal/modules/location/domain"
	locationout "mihrab/internal/modules/location/port/out"
	"mihrab/internal/platform/httpjson"
)

type NominatimGeocoder struct {
	client *httpjson.Client
	log    zerolog.Logger
}

func NewNominatimGeocoder(client *httpjson.Client, log zerolog.Logger) locationout.Geocoder {
	return &NominatimGeocoder{client: client, log: log}
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type nominatimReverse struct {
	Error   string `json:"error"`
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

func (g *NominatimGeocoder) Search(ctx context.Context, query string) ([]domain.Location, error) {
	var places []nominatimPlace
	params := url.Values{"format": {"json"}, "q": {query}}
	if err := g.client.GetJSON(ctx, "/search", params, &places); err != nil {
		return nil, fmt.Errorf("nominatim search: %w", err)
	}
	out := make([]domain.Location, 0, len(places))
	for _, p := range places {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lon, lonErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lonErr != nil {
			g.log.Debug().Str("lat", p.Lat).Str("lon", p.Lon).Msg("skipping place with bad coordinates")
			continue
		}
		out = append(out, domain.Location{
			Latitude:  lat,
			Longitude: lon,
			City:      domain.FirstNonEmpty(p.Name, firstSegment(p.DisplayName)),
			Country:   domain.CountryFromDisplayName(p.DisplayName),
		})
	}
	return out, nil
}

func (g *NominatimGeocoder) Reverse(ctx context.Context, fix domain.Fix) (domain.Location, error) {
	var body nominatimReverse
	params := url.Values{
		"format": {"json"},
		"lat":    {strconv.FormatFloat(fix.Latitude, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(fix.Longitude, 'f', -1, 64)},
		"zoom":   {"10"},
	}
	if err := g.client.GetJSON(ctx, "/reverse", params, &body); err != nil {
		return domain.Location{}, fmt.Errorf("nominatim reverse: %w", err)
	}
	if body.Error != "" {
		g.log.Debug().Str("error", body.Error).Msg("nominatim reverse returned no address")
	}
	return domain.Location{
		Latitude:  fix.Latitude,
		Longitude: fix.Longitude,
		City:      domain.FirstNonEmpty(body.Address.City, body.Address.Town, body.Address.Village),
		Country:   domain.FirstNonEmpty(body.Address.Country),
	}, nil
}

func firstSegment(displayName string) string {
	head, _, _ := strings.Cut(displayName, ",")
	return head
}
