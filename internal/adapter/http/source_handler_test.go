package http

import (
	"context"
	"net/http"
	"testing"

	sourceDomain "wattledger/internal/domain/source"
	"wattledger/internal/domain/token"
	"wattledger/internal/domain/uow"
	"wattledger/internal/testutil/ledgermock"
	"wattledger/internal/testutil/sourcemock"
	"wattledger/internal/testutil/uowmock"
	"wattledger/internal/usecase/issuance"
	"wattledger/internal/usecase/source"

	"gorm.io/gorm"
)

func newSourceHandler(repo *sourcemock.Repo, ledger *ledgermock.Ledger) *SourceHandler {
	tx := uowmock.Passthrough(uow.Repos{Sources: repo, Ledger: ledger})
	uc := source.NewUsecase(repo, source.NewAllowlist([]string{testVerifier}), tx)
	return NewSourceHandler(uc, issuance.NewUsecase(tx))
}

func TestSourceHandler_Register(t *testing.T) {
	var created *sourceDomain.EnergySource
	repo := &sourcemock.Repo{
		GetByOwnerFn: func(ctx context.Context, owner string) (*sourceDomain.EnergySource, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, s *sourceDomain.EnergySource) error {
			created = s
			return nil
		},
	}
	h := newSourceHandler(repo, &ledgermock.Ledger{})

	body := mustJSON(t, map[string]any{"energy_type": "solar", "capacity": 1000})
	c, rec := newContext(t, http.MethodPost, "/sources", body, testOwner)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}

	var dto source.SourceDTO
	decodeBody(t, rec, &dto)
	if dto.Owner != testOwner || dto.EnergyType != "solar" || dto.Verified {
		t.Fatalf("dto = %+v", dto)
	}
	if created == nil || created.SourceID != dto.SourceID {
		t.Fatalf("persisted source mismatch: %+v vs %+v", created, dto)
	}
}

func TestSourceHandler_Register_MissingCaller(t *testing.T) {
	h := newSourceHandler(&sourcemock.Repo{}, &ledgermock.Ledger{})

	body := mustJSON(t, map[string]any{"energy_type": "solar"})
	c, rec := newContext(t, http.MethodPost, "/sources", body, "")
	if err := h.Register(c); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestSourceHandler_Register_ValidationFailure(t *testing.T) {
	h := newSourceHandler(&sourcemock.Repo{}, &ledgermock.Ledger{})

	body := mustJSON(t, map[string]any{"capacity": 5})
	c, rec := newContext(t, http.MethodPost, "/sources", body, testOwner)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
	var resp ErrorResponse
	decodeBody(t, rec, &resp)
	if len(resp.Details) == 0 {
		t.Fatalf("expected field errors, got %+v", resp)
	}
}

func TestSourceHandler_Register_Duplicate(t *testing.T) {
	repo := &sourcemock.Repo{
		GetByOwnerFn: func(ctx context.Context, owner string) (*sourceDomain.EnergySource, error) {
			return &sourceDomain.EnergySource{SourceID: testEntityID, Owner: owner}, nil
		},
	}
	h := newSourceHandler(repo, &ledgermock.Ledger{})

	body := mustJSON(t, map[string]any{"energy_type": "wind"})
	c, rec := newContext(t, http.MethodPost, "/sources", body, testOwner)
	if err := h.Register(c); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestSourceHandler_Verify(t *testing.T) {
	saved := false
	repo := &sourcemock.Repo{
		GetBySourceIDForUpdateFn: func(ctx context.Context, sourceID string) (*sourceDomain.EnergySource, error) {
			return &sourceDomain.EnergySource{SourceID: sourceID, Owner: testOwner, EnergyType: "solar"}, nil
		},
		SaveFn: func(ctx context.Context, s *sourceDomain.EnergySource) error {
			saved = true
			return nil
		},
	}
	h := newSourceHandler(repo, &ledgermock.Ledger{})

	c, rec := newContext(t, http.MethodPost, "/sources/"+testEntityID+"/verify", nil, testVerifier)
	c.SetParamNames("source_id")
	c.SetParamValues(testEntityID)
	if err := h.Verify(c); err != nil {
		t.Fatalf("Verify err: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var dto source.SourceDTO
	decodeBody(t, rec, &dto)
	if !dto.Verified || !saved {
		t.Fatalf("verified = %v, saved = %v", dto.Verified, saved)
	}
}

func TestSourceHandler_Verify_Unauthorized(t *testing.T) {
	h := newSourceHandler(&sourcemock.Repo{}, &ledgermock.Ledger{})

	c, rec := newContext(t, http.MethodPost, "/sources/"+testEntityID+"/verify", nil, testOwner)
	c.SetParamNames("source_id")
	c.SetParamValues(testEntityID)
	if err := h.Verify(c); err != nil {
		t.Fatalf("Verify err: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("code = %d", rec.Code)
	}
}

func TestSourceHandler_SubmitReading(t *testing.T) {
	var minted uint64
	var mintedTo token.Account
	repo := &sourcemock.Repo{
		GetBySourceIDForUpdateFn: func(ctx context.Context, sourceID string) (*sourceDomain.EnergySource, error) {
			return &sourceDomain.EnergySource{
				SourceID: sourceID, Owner: testOwner, EnergyType: "solar", Verified: true,
			}, nil
		},
	}
	ledger := &ledgermock.Ledger{
		MintFn: func(ctx context.Context, to token.Account, amount uint64) error {
			mintedTo, minted = to, amount
			return nil
		},
	}
	h := newSourceHandler(repo, ledger)

	body := mustJSON(t, map[string]any{"energy_amount": 500})
	c, rec := newContext(t, http.MethodPost, "/sources/"+testEntityID+"/readings", body, testOwner)
	c.SetParamNames("source_id")
	c.SetParamValues(testEntityID)
	if err := h.SubmitReading(c); err != nil {
		t.Fatalf("SubmitReading err: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	var dto issuance.ReadingDTO
	decodeBody(t, rec, &dto)
	if dto.MintedAmount != 500 || dto.TotalEnergyProduced != 500 {
		t.Fatalf("dto = %+v", dto)
	}
	if minted != 500 || mintedTo != token.UserAccount(testOwner) {
		t.Fatalf("mint = %d to %q", minted, mintedTo)
	}
}

func TestSourceHandler_SubmitReading_NotVerified(t *testing.T) {
	repo := &sourcemock.Repo{
		GetBySourceIDForUpdateFn: func(ctx context.Context, sourceID string) (*sourceDomain.EnergySource, error) {
			return &sourceDomain.EnergySource{SourceID: sourceID, Owner: testOwner, EnergyType: "solar"}, nil
		},
	}
	h := newSourceHandler(repo, &ledgermock.Ledger{})

	body := mustJSON(t, map[string]any{"energy_amount": 500})
	c, rec := newContext(t, http.MethodPost, "/sources/"+testEntityID+"/readings", body, testOwner)
	c.SetParamNames("source_id")
	c.SetParamValues(testEntityID)
	if err := h.SubmitReading(c); err != nil {
		t.Fatalf("SubmitReading err: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestSourceHandler_SubmitReading_ZeroAmount(t *testing.T) {
	h := newSourceHandler(&sourcemock.Repo{}, &ledgermock.Ledger{})

	body := mustJSON(t, map[string]any{"energy_amount": 0})
	c, rec := newContext(t, http.MethodPost, "/sources/"+testEntityID+"/readings", body, testOwner)
	c.SetParamNames("source_id")
	c.SetParamValues(testEntityID)
	if err := h.SubmitReading(c); err != nil {
		t.Fatalf("SubmitReading err: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("code = %d", rec.Code)
	}
}
