// Package geocode - клиент Nominatim (OpenStreetMap): прямой поиск мест
// для формы чекина и обратное геокодирование координат.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ellenmartin11/newhaven-hangouts/internal/config"
	"github.com/ellenmartin11/newhaven-hangouts/internal/models"
	"github.com/sirupsen/logrus"
)

// MinQueryLen - минимальная длина запроса, короче - поиск не выполняется
const MinQueryLen = 3

// FallbackLocationName подставляется, когда обратное геокодирование
// не вернуло пригодного названия места
const FallbackLocationName = "Current Location"

// Nominatim просит идентифицировать приложение в User-Agent
const userAgent = "newhaven-hangouts-client/1.0"

type Client struct {
	baseURL    string
	viewBox    string
	bounded    bool
	limit      int
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL: cfg.NominatimURL,
		viewBox: cfg.SearchViewBox,
		bounded: cfg.SearchBounded,
		limit:   cfg.SearchLimit,
		httpClient: &http.Client{
			Timeout: cfg.GeocodeTimeout,
		},
		logger: logger,
	}
}

// nominatimResult - сырой ответ Nominatim; координаты приходят строками
type nominatimResult struct {
	DisplayName string           `json:"display_name"`
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Address     nominatimAddress `json:"address"`
}

type nominatimAddress struct {
	Shop     string `json:"shop"`
	Amenity  string `json:"amenity"`
	Building string `json:"building"`
	Road     string `json:"road"`
}

// Search выполняет прямой поиск мест по текстовому запросу.
// Для запроса короче MinQueryLen сетевой вызов не делается, результат пуст.
func (c *Client) Search(ctx context.Context, query string) ([]models.Place, error) {
	log := c.logger.WithFields(logrus.Fields{
		"client": "nominatim",
		"method": "Search",
		"query":  query,
	})

	if len([]rune(query)) < MinQueryLen {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(c.limit))
	params.Set("countrycodes", "us")
	if c.viewBox != "" {
		params.Set("viewbox", c.viewBox)
		if c.bounded {
			params.Set("bounded", "1")
		}
	}

	var raw []nominatimResult
	if err := c.get(ctx, "/search", params, &raw); err != nil {
		log.WithError(err).Error("Nominatim search failed")
		return nil, fmt.Errorf("geocode: search failed: %w", err)
	}

	places := make([]models.Place, 0, len(raw))
	for _, r := range raw {
		lat, errLat := strconv.ParseFloat(r.Lat, 64)
		lon, errLon := strconv.ParseFloat(r.Lon, 64)
		if errLat != nil || errLon != nil {
			log.Warn("Skipping result with malformed coordinates")
			continue
		}
		places = append(places, models.Place{
			DisplayName: r.DisplayName,
			Lat:         lat,
			Lon:         lon,
		})
	}

	log.WithField("results", len(places)).Debug("Nominatim search completed")
	return places, nil
}

// ReverseGeocode подбирает название места по координатам. Поля адреса
// пробуются в фиксированном порядке: shop, amenity, building, road.
// Функция не возвращает ошибок - при любом сбое отдается запасное название.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) string {
	log := c.logger.WithFields(logrus.Fields{
		"client": "nominatim",
		"method": "ReverseGeocode",
	})

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("format", "json")

	var raw nominatimResult
	if err := c.get(ctx, "/reverse", params, &raw); err != nil {
		log.WithError(err).Warn("Reverse geocoding failed, using fallback name")
		return FallbackLocationName
	}

	for _, name := range []string{raw.Address.Shop, raw.Address.Amenity, raw.Address.Building, raw.Address.Road} {
		if name != "" {
			return name
		}
	}
	return FallbackLocationName
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
