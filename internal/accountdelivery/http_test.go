package accountdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/golang/mock/gomock"

	"github.com/altx-finance/ledger-engine/internal/domain"
	"github.com/altx-finance/ledger-engine/internal/middleware"
	"github.com/altx-finance/ledger-engine/pkg/currencypkg"
	"github.com/altx-finance/ledger-engine/pkg/errorspkg"
	"github.com/altx-finance/ledger-engine/pkg/randompkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("currency", currencypkg.ValidCurrency); err != nil {
			panic(err)
		}
	}

	os.Exit(m.Run())
}

func randomAccount(owner string) domain.Account {
	return domain.Account{
		ID:        randompkg.Intn(1000) + 1,
		Owner:     owner,
		Balance:   randompkg.MoneyAmountBetween(100, 10000),
		Currency:  randompkg.Currency(),
		Status:    domain.StatusActive,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func newServer(service Service) *gin.Engine {
	handler := NewHandler(service)

	server := gin.New()
	server.Use(middleware.Identity())
	server.POST("/accounts", handler.Create)
	server.GET("/accounts/:id", handler.Get)
	server.PATCH("/accounts/:id/status", handler.SetStatus)

	return server
}

type errorResponse struct {
	Error string `json:"error"`
}

func TestCreate(t *testing.T) {
	owner := randompkg.Owner()
	account := randomAccount(owner)

	type requestBody struct {
		Currency string `json:"currency"`
		Balance  string `json:"balance,omitempty"`
	}

	testCases := []struct {
		name           string
		requestBody    requestBody
		actor          string
		buildStubs     func(service *MockService)
		wantStatusCode int
		wantError      string
	}{
		{
			name:        "OK",
			requestBody: requestBody{Currency: account.Currency, Balance: account.Balance},
			actor:       owner,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(owner), gomock.Eq(account.Balance), gomock.Eq(account.Currency)).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "BalanceDefaultsToZero",
			requestBody: requestBody{Currency: account.Currency},
			actor:       owner,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(owner), gomock.Eq("0"), gomock.Eq(account.Currency)).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "NoActorHeader",
			requestBody: requestBody{Currency: account.Currency},
			actor:       "",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "X-Actor header is required",
		},
		{
			name:        "UnsupportedCurrency",
			requestBody: requestBody{Currency: "RUB"},
			actor:       owner,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "ErrCurrencyAlreadyExists",
			requestBody: requestBody{Currency: account.Currency},
			actor:       owner,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(owner), gomock.Eq("0"), gomock.Eq(account.Currency)).
					Times(1).
					Return(domain.Account{}, domain.ErrCurrencyAlreadyExists)
			},
			wantStatusCode: http.StatusConflict,
			wantError:      domain.ErrCurrencyAlreadyExists.Error(),
		},
		{
			name:        "InternalServerError",
			requestBody: requestBody{Currency: account.Currency},
			actor:       owner,
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Create(gomock.Any(), gomock.Eq(owner), gomock.Eq("0"), gomock.Eq(account.Currency)).
					Times(1).
					Return(domain.Account{}, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newServer(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			req, err := http.NewRequest(http.MethodPost, "/accounts", bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if tc.actor != "" {
				req.Header.Set(middleware.ActorHeader, tc.actor)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if tc.wantStatusCode == http.StatusOK {
				var res response
				if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
					t.Fatalf("Decoding response body error: %v", err)
				}

				compareCreatedAt := cmpopts.EquateApproxTime(time.Second)
				if diff := cmp.Diff(account, res.Data.Account, compareCreatedAt); diff != "" {
					t.Errorf("Account mismatch (-want +got):\n%s", diff)
				}

				return
			}

			if tc.wantError == "" {
				return
			}

			var res errorResponse
			if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
				t.Fatalf("Decoding response body error: %v", err)
			}

			if res.Error != tc.wantError {
				t.Errorf("Error: got %q, want %q", res.Error, tc.wantError)
			}
		})
	}
}

func TestGet(t *testing.T) {
	owner := randompkg.Owner()
	account := randomAccount(owner)

	testCases := []struct {
		name           string
		uri            string
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name: "OK",
			uri:  fmt.Sprintf("/accounts/%d", account.ID),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(account, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name: "NotFound",
			uri:  fmt.Sprintf("/accounts/%d", account.ID),
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Eq(account.ID)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name: "InvalidID",
			uri:  "/accounts/0",
			buildStubs: func(service *MockService) {
				service.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newServer(service)

			req, err := http.NewRequest(http.MethodGet, tc.uri, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			req.Header.Set(middleware.ActorHeader, owner)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}
		})
	}
}

func TestSetStatus(t *testing.T) {
	owner := randompkg.Owner()
	account := randomAccount(owner)

	frozen := account
	frozen.Status = domain.StatusFrozen

	testCases := []struct {
		name           string
		requestBody    map[string]interface{}
		buildStubs     func(service *MockService)
		wantStatusCode int
	}{
		{
			name:        "OK",
			requestBody: map[string]interface{}{"status": "FROZEN"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					SetStatus(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(domain.StatusFrozen)).
					Times(1).
					Return(frozen, nil)
			},
			wantStatusCode: http.StatusOK,
		},
		{
			name:        "UnknownStatus",
			requestBody: map[string]interface{}{"status": "PAUSED"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					SetStatus(gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "NotFound",
			requestBody: map[string]interface{}{"status": "CLOSED"},
			buildStubs: func(service *MockService) {
				service.EXPECT().
					SetStatus(gomock.Any(), gomock.Eq(account.ID), gomock.Eq(domain.StatusClosed)).
					Times(1).
					Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockService(ctrl)
			tc.buildStubs(service)

			server := newServer(service)

			body, err := json.Marshal(tc.requestBody)
			if err != nil {
				t.Fatalf("Encoding request body error: %v", err)
			}

			uri := fmt.Sprintf("/accounts/%d/status", account.ID)

			req, err := http.NewRequest(http.MethodPatch, uri, bytes.NewReader(body))
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			req.Header.Set(middleware.ActorHeader, owner)

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}
		})
	}
}
