package out

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"mihrab/internal/modules/prayer/domain"
	prayerout "mihrab/internal/modules/prayer/port/out"
	"mihrab/internal/platform/httpjson"
)

type AladhanClient struct {
	client *httpjson.Client
	log    zerolog.Logger
}

func NewAladhanClient(client *httpjson.Client, log zerolog.Logger) prayerout.TimingsProvider {
	return &AladhanClient{client: client, log: log}
}

type timingsResponse struct {
	Code int `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

type methodsResponse struct {
	Code int `json:"code"`
	Data map[string]struct {
		ID   *int   `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

func (c *AladhanClient) Timings(ctx context.Context, date time.Time, latitude, longitude float64, method int) (domain.Timings, error) {
	var body timingsResponse
	params := url.Values{
		"latitude":  {strconv.FormatFloat(latitude, 'f', -1, 64)},
		"longitude": {strconv.FormatFloat(longitude, 'f', -1, 64)},
		"method":    {strconv.Itoa(method)},
	}
	path := "/v1/timings/" + date.Format("02-01-2006")
	if err := c.client.GetJSON(ctx, path, params, &body); err != nil {
		return domain.Timings{}, fmt.Errorf("aladhan timings: %w", err)
	}
	prayers := make([]domain.Prayer, 0, len(domain.Names))
	for _, name := range domain.Names {
		value, ok := body.Data.Timings[name]
		if !ok {
			return domain.Timings{}, fmt.Errorf("aladhan timings: missing %s", name)
		}
		prayers = append(prayers, domain.Prayer{Name: name, Time: value})
	}
	return domain.Timings{Date: date, Prayers: prayers}, nil
}

func (c *AladhanClient) Methods(ctx context.Context) ([]domain.Method, error) {
	var body methodsResponse
	if err := c.client.GetJSON(ctx, "/v1/methods", nil, &body); err != nil {
		return nil, fmt.Errorf("aladhan methods: %w", err)
	}
	methods := make([]domain.Method, 0, len(body.Data))
	for key, m := range body.Data {
		if m.ID == nil {
			c.log.Debug().Str("key", key).Msg("skipping method without id")
			continue
		}
		name := m.Name
		if name == "" {
			name = key
		}
		methods = append(methods, domain.Method{ID: *m.ID, Name: name})
	}
	return domain.SortMethods(methods), nil
}
