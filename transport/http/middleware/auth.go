package middleware

import (
	"crowd/config"
	"crowd/infras/otel"
	"crowd/shared/constant"
	"crowd/shared/failure"
	"crowd/transport/http/response"
	"crypto/subtle"
	"net/http"

	"github.com/rs/zerolog/log"
)

var (
	errAPIKeyNotConfigured = failure.Forbidden("admin operations are disabled")
	errAPIKeyInvalid       = failure.Forbidden("invalid api key")
)

// Auth guards the operator endpoints.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey admits a request only when its X-API-Key header matches APP_API_KEY.
// An empty APP_API_KEY rejects every request.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		scope.SetAttributes(map[string]any{
			"middleware.type": "api_key",
			"http.path":       request.URL.Path,
			"http.method":     request.Method,
		})

		var err error

		expected := m.cfg.App.APIKey
		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		switch {
		case expected == "":
			err = errAPIKeyNotConfigured
		case subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1:
			err = errAPIKeyInvalid
		}

		if err != nil {
			log.Warn().Str("path", request.URL.Path).Msg(err.Error())

			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
