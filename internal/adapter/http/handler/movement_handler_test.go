package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfgops/stockledger/internal/adapter/http/dto"
	"github.com/mfgops/stockledger/internal/usecase"
	"github.com/mfgops/stockledger/internal/usecase/mocks"
)

type ledgerFixture struct {
	movementRepo *mocks.MockMovementRepository
	itemRepo     *mocks.MockItemRepository
	outboxRepo   *mocks.MockOutboxRepository
	cache        *mocks.MockCache
	ledgerUC     *usecase.LedgerUseCase
	levelUC      *usecase.LevelUseCase
}

func newLedgerFixture() *ledgerFixture {
	movementRepo := mocks.NewMockMovementRepository()
	itemRepo := mocks.NewMockItemRepository()
	outboxRepo := mocks.NewMockOutboxRepository()
	cache := mocks.NewMockCache()

	return &ledgerFixture{
		movementRepo: movementRepo,
		itemRepo:     itemRepo,
		outboxRepo:   outboxRepo,
		cache:        cache,
		ledgerUC: usecase.NewLedgerUseCase(
			mocks.NewMockTransactionManager(),
			movementRepo,
			itemRepo,
			outboxRepo,
			cache,
			mocks.NewMockIDGenerator(),
			nil,
		),
		levelUC: usecase.NewLevelUseCase(movementRepo, itemRepo, cache, nil),
	}
}

func (f *ledgerFixture) record(t *testing.T, item, movementType string, quantity int64) {
	t.Helper()

	_, err := f.ledgerUC.RecordMovement(context.Background(), usecase.RecordMovementInput{
		ItemID:   item,
		Type:     movementType,
		Quantity: quantity,
	})
	require.NoError(t, err)
}

func TestMovementHandler_Create_Success(t *testing.T) {
	f := newLedgerFixture()
	handler := NewMovementHandler(f.ledgerUC)

	body, _ := json.Marshal(dto.RecordMovementRequest{
		Item:      "SKU-100",
		Type:      "in",
		Quantity:  25,
		Location:  "A-01",
		Reference: "PO-555",
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.MovementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "SKU-100", resp.Item)
	assert.Equal(t, "IN", resp.Type)
	assert.Equal(t, int64(0), resp.BalanceBefore)
	assert.Equal(t, int64(25), resp.BalanceAfter)
	assert.NotEmpty(t, resp.Date)
	assert.NotEmpty(t, resp.Time)
}

func TestMovementHandler_Create_InsufficientStock(t *testing.T) {
	f := newLedgerFixture()
	f.record(t, "SKU-100", "IN", 10)
	handler := NewMovementHandler(f.ledgerUC)

	body, _ := json.Marshal(dto.RecordMovementRequest{
		Item:     "SKU-100",
		Type:     "out",
		Quantity: 50,
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// The rejected movement must leave the ledger untouched.
	balance, _, err := f.movementRepo.LatestBalance(context.Background(), "SKU-100")
	require.NoError(t, err)
	assert.Equal(t, int64(10), balance)
}

func TestMovementHandler_Create_InvalidBody(t *testing.T) {
	handler := NewMovementHandler(newLedgerFixture().ledgerUC)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMovementHandler_Create_InvalidType(t *testing.T) {
	handler := NewMovementHandler(newLedgerFixture().ledgerUC)

	body, _ := json.Marshal(dto.RecordMovementRequest{Item: "SKU-100", Type: "transfer", Quantity: 5})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movements", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMovementHandler_List_FiltersByType(t *testing.T) {
	f := newLedgerFixture()
	f.record(t, "SKU-100", "IN", 100)
	f.record(t, "SKU-100", "OUT", 30)
	f.record(t, "SKU-200", "IN", 10)

	handler := NewMovementHandler(f.ledgerUC)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movements?type=out", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []*dto.MovementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp, 1)
	assert.Equal(t, "OUT", resp[0].Type)
	assert.Equal(t, "SKU-100", resp[0].Item)
}

func TestMovementHandler_List_ByItem(t *testing.T) {
	f := newLedgerFixture()
	f.record(t, "SKU-100", "IN", 100)
	f.record(t, "SKU-200", "IN", 10)
	f.record(t, "SKU-200", "RETURN", 5)

	handler := NewMovementHandler(f.ledgerUC)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movements?item=SKU-200", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []*dto.MovementResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Len(t, resp, 2)
	assert.Equal(t, int64(10), resp[0].BalanceAfter)
	assert.Equal(t, int64(15), resp[1].BalanceAfter)
}
