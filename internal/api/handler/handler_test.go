package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/rampp2p/escrow/internal/api/handler"
	"github.com/rampp2p/escrow/internal/api/handler/mocks"
	"github.com/rampp2p/escrow/internal/appeal"
	"github.com/rampp2p/escrow/internal/escrow"
	"github.com/rampp2p/escrow/internal/escrow/store"
	"github.com/rampp2p/escrow/internal/gateway"
	"github.com/rampp2p/escrow/internal/lifecycle"
)

const wallet = "buyer-wallet"

var validTxID = strings.Repeat("ab", 32)

type env struct {
	orders  *mocks.OrderServiceMock
	appeals *mocks.AppealServiceMock
	health  *mocks.HealthCheckerMock
	echo    *echo.Echo
}

func newEnv(secret string) *env {
	e := &env{
		orders:  &mocks.OrderServiceMock{},
		appeals: &mocks.AppealServiceMock{},
		health:  &mocks.HealthCheckerMock{},
		echo:    echo.New(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	sut := handler.New(logger, e.orders, e.appeals, e.health)
	sut.RegisterRoutes(e.echo, handler.Authenticate(secret))

	return e
}

func (e *env) do(method, path, body string, header map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.echo.ServeHTTP(rec, req)
	return rec
}

func asCaller(caller string) map[string]string {
	return map[string]string{handler.WalletHashHeader: caller}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()

	var resp handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Error)
	return resp
}

func TestStatusEndpoints(t *testing.T) {
	status := &escrow.Status{ID: 3, OrderID: 7, Status: escrow.StatusConfirmed}

	tt := []struct {
		name      string
		path      string
		changeErr error

		expectedCode int
	}{
		{
			name:         "confirm",
			path:         "/orders/7/confirm",
			expectedCode: http.StatusOK,
		},
		{
			name:         "escrow pending",
			path:         "/orders/7/escrow-pending",
			expectedCode: http.StatusOK,
		},
		{
			name:         "paid pending",
			path:         "/orders/7/paid-pending",
			expectedCode: http.StatusOK,
		},
		{
			name:         "paid",
			path:         "/orders/7/paid",
			expectedCode: http.StatusOK,
		},
		{
			name:         "cancel",
			path:         "/orders/7/cancel",
			expectedCode: http.StatusOK,
		},
		{
			name:         "release",
			path:         "/orders/7/release",
			expectedCode: http.StatusOK,
		},
		{
			name:         "refund",
			path:         "/orders/7/refund",
			expectedCode: http.StatusOK,
		},
		{
			name:         "appeal pending release",
			path:         "/orders/7/appeal/pending-release",
			expectedCode: http.StatusOK,
		},
		{
			name:         "appeal pending refund",
			path:         "/orders/7/appeal/pending-refund",
			expectedCode: http.StatusOK,
		},
		{
			name:         "permission denied",
			path:         "/orders/7/confirm",
			changeErr:    escrow.ErrPermissionDenied,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "state conflict",
			path:         "/orders/7/paid",
			changeErr:    escrow.ErrInvalidProgression,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "store unavailable",
			path:         "/orders/7/cancel",
			changeErr:    errors.Join(escrow.ErrStoreUnavailable, errors.New("connection refused")),
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name:         "uncategorized error",
			path:         "/orders/7/release",
			changeErr:    errors.New("boom"),
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			e := newEnv("")
			var calledWith []any
			change := func(_ context.Context, id int64, caller string) (*escrow.Status, error) {
				calledWith = []any{id, caller}
				if tc.changeErr != nil {
					return nil, tc.changeErr
				}
				return status, nil
			}
			e.orders.MarkConfirmedFunc = change
			e.orders.MarkEscrowPendingFunc = change
			e.orders.MarkPaidPendingFunc = change
			e.orders.MarkPaidFunc = change
			e.orders.CancelFunc = change
			e.orders.RequestReleaseFunc = change
			e.orders.RequestRefundFunc = change
			e.appeals.MarkPendingReleaseFunc = change
			e.appeals.MarkPendingRefundFunc = change

			// when
			rec := e.do(http.MethodPost, tc.path, "", asCaller(wallet))

			// then
			require.Equal(t, tc.expectedCode, rec.Code)
			require.Equal(t, []any{int64(7), wallet}, calledWith)

			if tc.expectedCode != http.StatusOK {
				decodeError(t, rec)
				return
			}

			var resp handler.StatusResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.True(t, resp.Success)
			require.Equal(t, status.ID, resp.Status.ID)
			require.Equal(t, escrow.StatusConfirmed, resp.Status.Status)
		})
	}
}

func TestInvalidOrderID(t *testing.T) {
	for _, path := range []string{"/orders/abc/confirm", "/orders/0/paid", "/orders/-4"} {
		t.Run(path, func(t *testing.T) {
			// given
			e := newEnv("")

			// when
			method := http.MethodPost
			if path == "/orders/-4" {
				method = http.MethodGet
			}
			rec := e.do(method, path, "", asCaller(wallet))

			// then
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, decodeError(t, rec).Error, "invalid order id")
		})
	}
}

func TestAuthenticate(t *testing.T) {
	const secret = "top-secret"

	sign := func(method jwt.SigningMethod, key string, claims jwt.RegisteredClaims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(key))
		require.NoError(t, err)
		return token
	}
	valid := jwt.RegisteredClaims{Subject: wallet, ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}

	tt := []struct {
		name   string
		secret string
		header map[string]string

		expectedCode   int
		expectedCaller string
	}{
		{
			name:           "wallet header without secret",
			header:         asCaller(wallet),
			expectedCode:   http.StatusOK,
			expectedCaller: wallet,
		},
		{
			name:         "no wallet header",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:           "valid bearer token",
			secret:         secret,
			header:         map[string]string{echo.HeaderAuthorization: "Bearer " + sign(jwt.SigningMethodHS256, secret, valid)},
			expectedCode:   http.StatusOK,
			expectedCaller: wallet,
		},
		{
			name:         "wallet header is ignored when a secret is set",
			secret:       secret,
			header:       asCaller(wallet),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong key",
			secret:       secret,
			header:       map[string]string{echo.HeaderAuthorization: "Bearer " + sign(jwt.SigningMethodHS256, "other", valid)},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "unexpected signing method",
			secret:       secret,
			header:       map[string]string{echo.HeaderAuthorization: "Bearer " + sign(jwt.SigningMethodHS512, secret, valid)},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			secret: secret,
			header: map[string]string{echo.HeaderAuthorization: "Bearer " + sign(jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{
				Subject:   wallet,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			})},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "token without subject",
			secret:       secret,
			header:       map[string]string{echo.HeaderAuthorization: "Bearer " + sign(jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{})},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			e := newEnv(tc.secret)
			var caller string
			e.orders.MarkStatusesReadFunc = func(_ context.Context, _ int64, c string) (int64, error) {
				caller = c
				return 2, nil
			}

			// when
			rec := e.do(http.MethodPost, "/orders/7/statuses/read", "", tc.header)

			// then
			require.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedCode != http.StatusOK {
				decodeError(t, rec)
				require.Empty(t, e.orders.MarkStatusesReadCalls())
				return
			}

			require.Equal(t, tc.expectedCaller, caller)
			require.JSONEq(t, `{"updated":2}`, rec.Body.String())
		})
	}
}

func TestPOSTOrder(t *testing.T) {
	// given
	e := newEnv("")
	e.orders.CreateOrderFunc = func(_ context.Context, caller string, req lifecycle.NewOrder) (*store.OrderRecord, error) {
		require.Equal(t, wallet, caller)
		require.Equal(t, uint64(100000), req.CryptoAmount)
		require.Equal(t, escrow.TradeTypeSell, req.TradeType)
		return &store.OrderRecord{
			Order:    escrow.Order{ID: 1, CryptoAmount: req.CryptoAmount, TradeType: req.TradeType},
			Contract: escrow.Contract{ID: 2, OrderID: 1, Address: "contract-addr"},
			Status:   escrow.Status{ID: 3, OrderID: 1, Status: escrow.StatusSubmitted},
		}, nil
	}

	// when
	rec := e.do(http.MethodPost, "/orders", `{"crypto_amount":100000,"trade_type":"SELL","fiat_currency":"PHP"}`, asCaller(wallet))

	// then
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(1), resp.Order.ID)
	require.Equal(t, "contract-addr", resp.Contract.Address)
	require.Equal(t, escrow.StatusSubmitted, resp.Status.Status)
}

func TestPOSTOrder_InvalidBody(t *testing.T) {
	// given
	e := newEnv("")

	// when
	rec := e.do(http.MethodPost, "/orders", `{"crypto_amount":`, asCaller(wallet))

	// then
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decodeError(t, rec).Error, "invalid request body")
	require.Empty(t, e.orders.CreateOrderCalls())
}

func TestPOSTVerifyEscrow(t *testing.T) {
	tt := []struct {
		name         string
		authorizeErr error
		verifyErr    error

		expectedCode        int
		expectedVerifyCalls int
	}{
		{
			name:                "verified",
			expectedCode:        http.StatusOK,
			expectedVerifyCalls: 1,
		},
		{
			name:         "caller is not a party",
			authorizeErr: escrow.ErrPermissionDenied,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:                "transaction not confirmed yet",
			verifyErr:           escrow.ErrTxUnconfirmed,
			expectedCode:        http.StatusServiceUnavailable,
			expectedVerifyCalls: 1,
		},
		{
			name:                "transaction does not pay the contract",
			verifyErr:           escrow.ErrInvalidTransaction,
			expectedCode:        http.StatusBadRequest,
			expectedVerifyCalls: 1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			e := newEnv("")
			e.orders.AuthorizeFunc = func(_ context.Context, id int64, _ string, roles ...escrow.Role) (*escrow.Order, error) {
				require.ElementsMatch(t, []escrow.Role{escrow.RoleBuyer, escrow.RoleSeller, escrow.RoleArbiter}, roles)
				return &escrow.Order{ID: id}, tc.authorizeErr
			}
			e.orders.VerifyEscrowFunc = func(_ context.Context, id int64, txID string) (*store.AppendResult, error) {
				require.Equal(t, validTxID, txID)
				if tc.verifyErr != nil {
					return nil, tc.verifyErr
				}
				return &store.AppendResult{Status: escrow.Status{OrderID: id, Status: escrow.StatusEscrowed}}, nil
			}

			// when
			rec := e.do(http.MethodPost, "/orders/7/verify-escrow", `{"txid":"`+validTxID+`"}`, asCaller(wallet))

			// then
			require.Equal(t, tc.expectedCode, rec.Code)
			require.Len(t, e.orders.VerifyEscrowCalls(), tc.expectedVerifyCalls)
			if tc.expectedCode != http.StatusOK {
				decodeError(t, rec)
				return
			}

			var resp handler.StatusResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, escrow.StatusEscrowed, resp.Status.Status)
		})
	}
}

func TestPOSTSettle(t *testing.T) {
	tt := []struct {
		name      string
		body      string
		settleErr error

		expectedCode int
		expectedBody string
	}{
		{
			name:         "release signed",
			body:         `{"action":"RELEASE","caller_pubkey":"pub","caller_sig":"sig"}`,
			expectedCode: http.StatusAccepted,
			expectedBody: `{"txid":"` + validTxID + `"}`,
		},
		{
			name:         "gateway failure",
			body:         `{"action":"REFUND","caller_pubkey":"pub","caller_sig":"sig"}`,
			settleErr:    escrow.ErrGateway,
			expectedCode: http.StatusServiceUnavailable,
		},
		{
			name:         "malformed body",
			body:         `[`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			e := newEnv("")
			e.orders.SettleFunc = func(_ context.Context, _ int64, caller string, action escrow.ActionType, auth lifecycle.SpendAuthorization) (*gateway.SpendResult, error) {
				require.Equal(t, wallet, caller)
				require.True(t, action.Valid())
				require.Equal(t, lifecycle.SpendAuthorization{CallerPubKey: "pub", CallerSig: "sig"}, auth)
				if tc.settleErr != nil {
					return nil, tc.settleErr
				}
				return &gateway.SpendResult{TxID: validTxID}, nil
			}

			// when
			rec := e.do(http.MethodPost, "/orders/7/settle", tc.body, asCaller(wallet))

			// then
			require.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedBody == "" {
				decodeError(t, rec)
				return
			}
			require.JSONEq(t, tc.expectedBody, rec.Body.String())
		})
	}
}

func TestPOSTAppeal(t *testing.T) {
	// given
	e := newEnv("")
	e.appeals.CreateAppealFunc = func(_ context.Context, id int64, caller string, appealType escrow.AppealType, reasons []string) (*store.AppendResult, error) {
		require.Equal(t, escrow.AppealRelease, appealType)
		require.Equal(t, []string{"paid", "no release"}, reasons)
		return &store.AppendResult{
			Status: escrow.Status{OrderID: id, Status: escrow.StatusAppealed},
			Appeal: &escrow.Appeal{OrderID: id, Owner: caller, Type: appealType, Reasons: reasons},
		}, nil
	}

	// when
	rec := e.do(http.MethodPost, "/orders/7/appeal", `{"type":"RLS","reasons":["paid","no release"]}`, asCaller(wallet))

	// then
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.AppealResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, wallet, resp.Appeal.Owner)
	require.Equal(t, escrow.StatusAppealed, resp.Status.Status)
}

func TestGETAppeal(t *testing.T) {
	tt := []struct {
		name      string
		appealErr error

		expectedCode int
	}{
		{
			name:         "found",
			expectedCode: http.StatusOK,
		},
		{
			name:         "no appeal",
			appealErr:    appeal.ErrAppealNotFound,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			e := newEnv("")
			e.appeals.GetAppealFunc = func(_ context.Context, id int64, _ string) (*escrow.Appeal, error) {
				if tc.appealErr != nil {
					return nil, tc.appealErr
				}
				return &escrow.Appeal{ID: 1, OrderID: id, Type: escrow.AppealRefund}, nil
			}

			// when
			rec := e.do(http.MethodGet, "/orders/7/appeal", "", asCaller(wallet))

			// then
			require.Equal(t, tc.expectedCode, rec.Code)
			if tc.appealErr != nil {
				decodeError(t, rec)
				return
			}

			var resp handler.AppealResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, escrow.AppealRefund, resp.Appeal.Type)
			require.Nil(t, resp.Status)
		})
	}
}

func TestGETAppeals(t *testing.T) {
	tt := []struct {
		name  string
		query string

		expectedCode  int
		expectedState store.AppealState
		expectedLimit int
		expectedPage  int
	}{
		{
			name:         "defaults",
			expectedCode: http.StatusOK,
		},
		{
			name:          "pending second page",
			query:         "?state=PENDING&limit=5&page=2",
			expectedCode:  http.StatusOK,
			expectedState: store.AppealStatePending,
			expectedLimit: 5,
			expectedPage:  2,
		},
		{
			name:         "limit not a number",
			query:        "?limit=ten",
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			e := newEnv("")
			e.appeals.ListAppealsFunc = func(_ context.Context, caller string, state store.AppealState, limit, page int) (*appeal.Page, error) {
				require.Equal(t, "arbiter-wallet", caller)
				require.Equal(t, tc.expectedState, state)
				require.Equal(t, tc.expectedLimit, limit)
				require.Equal(t, tc.expectedPage, page)
				return &appeal.Page{Appeals: []escrow.Appeal{{ID: 1}}, Count: 6, TotalPages: 2}, nil
			}

			// when
			rec := e.do(http.MethodGet, "/appeals"+tc.query, "", asCaller("arbiter-wallet"))

			// then
			require.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedCode != http.StatusOK {
				decodeError(t, rec)
				require.Empty(t, e.appeals.ListAppealsCalls())
				return
			}

			var resp appeal.Page
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, int64(6), resp.Count)
			require.Equal(t, int64(2), resp.TotalPages)
		})
	}
}

func TestVerifySettlementEndpoints(t *testing.T) {
	tt := []struct {
		name      string
		path      string
		verifyErr error

		expectedCode int
	}{
		{
			name:         "release verified",
			path:         "/orders/7/verify-release",
			expectedCode: http.StatusOK,
		},
		{
			name:         "refund verified",
			path:         "/orders/7/verify-refund",
			expectedCode: http.StatusOK,
		},
		{
			name:         "release rejected",
			path:         "/orders/7/verify-release",
			verifyErr:    escrow.ErrContractNotSpender,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "refund chain unavailable",
			path:         "/orders/7/verify-refund",
			verifyErr:    escrow.ErrChainUnavailable,
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			e := newEnv("")
			verify := func(_ context.Context, id int64, caller, txID string) (*store.AppendResult, error) {
				require.Equal(t, int64(7), id)
				require.Equal(t, "arbiter-wallet", caller)
				require.Equal(t, validTxID, txID)
				if tc.verifyErr != nil {
					return nil, tc.verifyErr
				}
				return &store.AppendResult{}, nil
			}
			e.appeals.VerifyReleaseFunc = verify
			e.appeals.VerifyRefundFunc = verify

			// when
			rec := e.do(http.MethodPost, tc.path, `{"txid":"`+validTxID+`"}`, asCaller("arbiter-wallet"))

			// then
			require.Equal(t, tc.expectedCode, rec.Code)
			if tc.verifyErr != nil {
				decodeError(t, rec)
				return
			}
			require.Empty(t, rec.Body.String())
		})
	}
}

func TestPOSTTransactionWebhook(t *testing.T) {
	tt := []struct {
		name       string
		body       string
		jobErr     error
		enqueueErr error

		expectedCode         int
		expectedEnqueueCalls int
	}{
		{
			name:                 "queued",
			body:                 `{"address":"contract-addr","txid":"` + validTxID + `"}`,
			expectedCode:         http.StatusAccepted,
			expectedEnqueueCalls: 1,
		},
		{
			name:         "malformed txid",
			body:         `{"address":"contract-addr","txid":"xyz"}`,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "unknown contract address",
			body:         `{"address":"elsewhere","txid":"` + validTxID + `"}`,
			jobErr:       escrow.ErrOrderNotFound,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:                 "queue unavailable",
			body:                 `{"address":"contract-addr","txid":"` + validTxID + `"}`,
			enqueueErr:           escrow.ErrTransientInfra,
			expectedCode:         http.StatusServiceUnavailable,
			expectedEnqueueCalls: 1,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			e := newEnv("top-secret")
			e.orders.JobForAddressFunc = func(_ context.Context, address, txID string) (*lifecycle.VerifyJob, error) {
				if tc.jobErr != nil {
					return nil, tc.jobErr
				}
				require.Equal(t, "contract-addr", address)
				return &lifecycle.VerifyJob{OrderID: 7, Action: escrow.ActionEscrow, TxID: txID}, nil
			}
			e.orders.EnqueueVerificationFunc = func(_ context.Context, job lifecycle.VerifyJob) error {
				require.Equal(t, lifecycle.VerifyJob{OrderID: 7, Action: escrow.ActionEscrow, TxID: validTxID}, job)
				return tc.enqueueErr
			}

			// when
			rec := e.do(http.MethodPost, "/webhooks/transactions", tc.body, nil)

			// then
			require.Equal(t, tc.expectedCode, rec.Code)
			require.Len(t, e.orders.EnqueueVerificationCalls(), tc.expectedEnqueueCalls)
			if tc.expectedCode != http.StatusAccepted {
				decodeError(t, rec)
			}
		})
	}
}

func TestGETHealth(t *testing.T) {
	tt := []struct {
		name    string
		pingErr error

		expectedCode int
	}{
		{
			name:         "store reachable",
			expectedCode: http.StatusOK,
		},
		{
			name:         "store unreachable",
			pingErr:      errors.New("dial tcp: connection refused"),
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			// given
			e := newEnv("top-secret")
			e.health.PingFunc = func(_ context.Context) error {
				return tc.pingErr
			}

			// when
			rec := e.do(http.MethodGet, "/health", "", nil)

			// then
			require.Equal(t, tc.expectedCode, rec.Code)
			if tc.pingErr == nil {
				require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
			}
		})
	}
}
