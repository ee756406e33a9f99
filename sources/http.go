package sources

import (
	"context"
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/tickerboard/tickerboard/constants"
	"github.com/tickerboard/tickerboard/utils"
	"go.uber.org/zap"
)

var (
	ErrUnexpectedStatusCode = errors.New("unexpected status code")
)

// httpGet fetch url once and decode the json payload into T.
// Resilience beyond a single attempt is left to the provider.
func httpGet[T any](ctx context.Context, url string) (T, error) {
	response := new(T)
	headers := map[string]string{
		"User-Agent": constants.UserAgent,
		"Referer":    constants.YahooReferer,
	}

	code, buffer, err := utils.TryDownloadBytesWithHeader(ctx, url, headers, 1, constants.RetryInterval)
	if err != nil {
		zap.S().Warnw("failed to do http request", "error", err, "url", url)
		return *response, err
	}

	if code != http.StatusOK {
		zap.S().Warnw("unexpected status code", "statusCode", code, "url", url)
		if code == http.StatusNotFound {
			return *response, constants.ErrDataUnavailable
		}
		return *response, ErrUnexpectedStatusCode
	}

	err = sonic.ConfigFastest.Unmarshal(buffer, response)
	if err != nil {
		zap.S().Warnw("failed to unmarshal response", "error", err)
		return *response, err
	}

	return *response, nil
}
