package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/sealpoint/billing-api/internal/handlers"
	"github.com/sealpoint/billing-api/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

func TestSubscribe_RejectsInvalidCustomerIDs(t *testing.T) {
	// Customer ids are positive 32-bit integers; zero, negatives and garbage
	// must be rejected before any service is touched, so a nil tier service
	// is safe here.
	handler := handlers.NewBillingHandler(nil, nil, zap.NewNop(), nil, nil, nil, nil, nil)

	router := gin.New()
	router.POST("/v1/customers/:customerID/subscriptions", handler.Subscribe)

	for _, customerID := range []string{"0", "-5", "abc", "99999999999999"} {
		t.Run(customerID, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost,
				"/v1/customers/"+customerID+"/subscriptions",
				strings.NewReader(`{"service_type":"seal","tier":"starter"}`))
			req.Header.Set("Content-Type", "application/json")
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
		})
	}
}
