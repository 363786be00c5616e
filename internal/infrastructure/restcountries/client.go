package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/country-explorer/internal/config"
	"github.com/country-explorer/internal/domain"
	"github.com/country-explorer/internal/domain/repository"
	"github.com/country-explorer/internal/pkg/errors"
	"github.com/country-explorer/internal/pkg/utils"
	"github.com/country-explorer/internal/pkg/validator"
)

const (
	basicFields  = "cca2,name,flags,population,region,capital"
	detailFields = basicFields + ",subregion,area,languages,currencies,borders,timezones,latlng,demonyms"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient создает клиент REST Countries API. Транспорт с ретраями:
// публичный API периодически отвечает 5xx под нагрузкой.
func NewClient(cfg *config.CountriesConfig, logger *zap.Logger) repository.CountryRepository {
	rc := retryablehttp.NewClient()
	rc.RetryMax = cfg.MaxRetries
	rc.Logger = nil
	rc.HTTPClient.Timeout = time.Duration(cfg.RequestTimeout) * time.Second

	return &client{
		httpClient: rc.StandardClient(),
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		logger:     logger,
	}
}

// FetchAllBasic загружает каталог стран с базовым набором полей
func (c *client) FetchAllBasic(ctx context.Context) ([]domain.BasicCountry, error) {
	body, status, err := c.get(ctx, fmt.Sprintf("%s/all?fields=%s", c.baseURL, basicFields))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		c.logger.Error("Countries API returned error",
			zap.String("endpoint", "all"),
			zap.Int("status_code", status))
		return nil, errors.ErrUpstreamUnavailable
	}

	records, err := decodeRecords(body)
	if err != nil {
		c.logger.Error("Failed to decode countries list", zap.Error(err))
		return nil, errors.ErrInvalidCountryData
	}

	countries := make([]domain.BasicCountry, 0, len(records))
	dropped := 0
	for _, raw := range records {
		record, err := parseRecord(raw)
		if err != nil {
			// Невалидная запись в массовой выборке не фатальна
			dropped++
			c.logger.Warn("Dropping invalid country record",
				zap.String("endpoint", "all"),
				zap.Error(err))
			continue
		}
		countries = append(countries, record.toBasic())
	}

	c.logger.Debug("Fetched country catalog",
		zap.Int("count", len(countries)),
		zap.Int("dropped", dropped))

	return countries, nil
}

// FetchByCode загружает детальную запись по alpha-коду
func (c *client) FetchByCode(ctx context.Context, code string) (*domain.DetailedCountry, error) {
	if !utils.ValidateCode(code) {
		return nil, errors.ErrInvalidCountryCode
	}
	normalized := utils.NormalizeCode(code)

	body, status, err := c.get(ctx, fmt.Sprintf("%s/alpha/%s?fields=%s", c.baseURL, normalized, detailFields))
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		return nil, errors.ErrCountryNotFound
	case status != http.StatusOK:
		c.logger.Error("Countries API returned error",
			zap.String("endpoint", "alpha"),
			zap.String("code", normalized),
			zap.Int("status_code", status))
		return nil, errors.ErrUpstreamUnavailable
	}

	records, err := decodeRecords(body)
	if err != nil {
		c.logger.Error("Failed to decode country detail",
			zap.String("code", normalized),
			zap.Error(err))
		return nil, errors.ErrInvalidCountryData
	}
	if len(records) == 0 {
		return nil, errors.ErrCountryNotFound
	}

	record, err := parseRecord(records[0])
	if err != nil {
		c.logger.Error("Country detail failed validation",
			zap.String("code", normalized),
			zap.Error(err))
		return nil, errors.ErrInvalidCountryData
	}

	detailed := record.toDetailed()
	return &detailed, nil
}

// FetchManyByCodes загружает детальные записи по набору кодов
func (c *client) FetchManyByCodes(ctx context.Context, codes []string) ([]domain.DetailedCountry, error) {
	if len(codes) == 0 {
		// Без сетевого запроса
		return []domain.DetailedCountry{}, nil
	}

	normalized := make([]string, 0, len(codes))
	for _, code := range codes {
		if n := utils.NormalizeCode(code); n != "" {
			normalized = append(normalized, n)
		}
	}
	if len(normalized) == 0 {
		return []domain.DetailedCountry{}, nil
	}

	endpoint := fmt.Sprintf("%s/alpha?codes=%s&fields=%s",
		c.baseURL, url.QueryEscape(strings.Join(normalized, ",")), detailFields)

	body, status, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	switch {
	case status == http.StatusNotFound:
		// Ни один код не найден - пустой результат, не ошибка
		c.logger.Warn("No countries matched requested codes",
			zap.Strings("codes", normalized))
		return []domain.DetailedCountry{}, nil
	case status != http.StatusOK:
		c.logger.Error("Countries API returned error",
			zap.String("endpoint", "alpha?codes"),
			zap.Int("status_code", status))
		return nil, errors.ErrUpstreamUnavailable
	}

	records, err := decodeRecords(body)
	if err != nil {
		c.logger.Error("Failed to decode countries by codes", zap.Error(err))
		return nil, errors.ErrInvalidCountryData
	}

	countries := make([]domain.DetailedCountry, 0, len(records))
	for _, raw := range records {
		record, err := parseRecord(raw)
		if err != nil {
			c.logger.Warn("Dropping invalid country record",
				zap.String("endpoint", "alpha?codes"),
				zap.Error(err))
			continue
		}
		countries = append(countries, record.toDetailed())
	}

	return countries, nil
}

// get выполняет GET и возвращает тело со статусом. Транспортная ошибка
// (сеть, таймаут) типизируется как недоступность upstream.
func (c *client) get(ctx context.Context, endpoint string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, 0, errors.ErrUpstreamUnavailable
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request",
			zap.String("url", endpoint),
			zap.Error(err))
		return nil, 0, errors.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("Failed to read response body", zap.Error(err))
		return nil, 0, errors.ErrUpstreamUnavailable
	}

	return body, resp.StatusCode, nil
}

// decodeRecords разбирает ответ в сырые записи. API отдает массив; одиночный
// объект (часть endpoint'ов alpha) заворачивается в массив из одного элемента.
func decodeRecords(body []byte) ([]json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "{") {
		return []json.RawMessage{json.RawMessage(body)}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func parseRecord(raw json.RawMessage) (*apiCountry, error) {
	var record apiCountry
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := validator.Validate(&record); err != nil {
		return nil, fmt.Errorf("validate %q: %w", record.CCA2, err)
	}
	return &record, nil
}
