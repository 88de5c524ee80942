package almox_test

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/almox360/almox-api/internal/application/almox"
	"github.com/almox360/almox-api/internal/domain"
	"github.com/almox360/almox-api/internal/domain/entity"
	"github.com/almox360/almox-api/internal/domain/repository"
)

// fakeStore guarda o estado em memória dos testes. O fakeTxRunner opera
// sobre uma cópia e só confirma a mutação quando fn devolve nil, espelhando
// a semântica de rollback da transação real.
type fakeStore struct {
	reqs     map[string]*entity.Requisition
	items    map[string]*entity.Item
	receipts []*entity.Receipt
	batches  []*entity.Batch
	cycles   map[string]*entity.InventoryCycle
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		reqs:   make(map[string]*entity.Requisition),
		items:  make(map[string]*entity.Item),
		cycles: make(map[string]*entity.InventoryCycle),
	}
}

func copyRequisition(r *entity.Requisition) *entity.Requisition {
	out := *r
	out.Items = append([]entity.RequisitionItem(nil), r.Items...)
	out.Timeline = append([]entity.TimelineEvent(nil), r.Timeline...)
	return &out
}

func (s *fakeStore) clone() *fakeStore {
	out := newFakeStore()
	for id, r := range s.reqs {
		out.reqs[id] = copyRequisition(r)
	}
	for id, it := range s.items {
		c := *it
		out.items[id] = &c
	}
	for id, cy := range s.cycles {
		c := *cy
		out.cycles[id] = &c
	}
	out.receipts = append([]*entity.Receipt(nil), s.receipts...)
	out.batches = append([]*entity.Batch(nil), s.batches...)
	return out
}

type fakeTxRunner struct {
	store *fakeStore
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.RequisitionRepository, repository.ItemRepository, almox.StockLedger) error) error {
	tx := t.store.clone()
	if err := fn(&fakeReqRepo{tx}, &fakeItemRepo{tx}, &fakeLedger{tx}); err != nil {
		return err
	}
	*t.store = *tx
	return nil
}

func (t *fakeTxRunner) RunIntake(ctx context.Context, fn func(repository.ItemRepository, almox.StockLedger, repository.ReceiptRepository, repository.BatchRepository) error) error {
	tx := t.store.clone()
	if err := fn(&fakeItemRepo{tx}, &fakeLedger{tx}, &fakeReceiptRepo{tx}, &fakeBatchRepo{tx}); err != nil {
		return err
	}
	*t.store = *tx
	return nil
}

func (t *fakeTxRunner) RunAudit(ctx context.Context, fn func(repository.ItemRepository, almox.StockLedger, repository.InventoryCycleRepository) error) error {
	tx := t.store.clone()
	if err := fn(&fakeItemRepo{tx}, &fakeLedger{tx}, &fakeCycleRepo{tx}); err != nil {
		return err
	}
	*t.store = *tx
	return nil
}

type fakeReqRepo struct{ s *fakeStore }

func (r *fakeReqRepo) Create(req *entity.Requisition) error {
	r.s.reqs[req.ID] = copyRequisition(req)
	return nil
}

func (r *fakeReqRepo) GetByID(id string) (*entity.Requisition, error) {
	req, ok := r.s.reqs[id]
	if !ok {
		return nil, nil
	}
	return copyRequisition(req), nil
}

func (r *fakeReqRepo) GetByIDForUpdate(id string) (*entity.Requisition, error) {
	return r.GetByID(id)
}

func (r *fakeReqRepo) List(limit, offset int) ([]*entity.Requisition, error) {
	var out []*entity.Requisition
	for _, req := range r.s.reqs {
		out = append(out, copyRequisition(req))
	}
	return out, nil
}

func (r *fakeReqRepo) Update(req *entity.Requisition) error {
	if _, ok := r.s.reqs[req.ID]; !ok {
		return fmt.Errorf("requisição inexistente: %s", req.ID)
	}
	r.s.reqs[req.ID] = copyRequisition(req)
	return nil
}

func (r *fakeReqRepo) NextNumber(year int) (int, error) {
	n := 1
	for _, req := range r.s.reqs {
		if req.Year == year {
			n++
		}
	}
	return n, nil
}

func (r *fakeReqRepo) CountByStatus() (map[entity.Status]int, error) {
	out := make(map[entity.Status]int)
	for _, req := range r.s.reqs {
		out[req.Status]++
	}
	return out, nil
}

type fakeItemRepo struct{ s *fakeStore }

func (r *fakeItemRepo) Create(item *entity.Item) error {
	c := *item
	r.s.items[item.ID] = &c
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	c := *item
	return &c, nil
}

func (r *fakeItemRepo) GetByCode(code string) (*entity.Item, error) {
	for _, item := range r.s.items {
		if item.Code == code {
			c := *item
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, item := range r.s.items {
		c := *item
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeItemRepo) Update(item *entity.Item) error {
	stored, ok := r.s.items[item.ID]
	if !ok {
		return fmt.Errorf("item inexistente: %s", item.ID)
	}
	current := stored.CurrentStock
	c := *item
	c.CurrentStock = current // estoque só muda pelo ledger
	r.s.items[item.ID] = &c
	return nil
}

func (r *fakeItemRepo) UpdatePrice(itemID string, price decimal.Decimal) error {
	item, ok := r.s.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	item.Price = price
	return nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.s.items, id)
	return nil
}

func (r *fakeItemRepo) ListAlerts() ([]*entity.Item, error) {
	var out []*entity.Item
	for _, item := range r.s.items {
		if item.Active && !item.CurrentStock.GreaterThan(item.MinStock) {
			c := *item
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeLedger struct{ s *fakeStore }

func (l *fakeLedger) Increase(itemID string, qty decimal.Decimal) error {
	item, ok := l.s.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	item.CurrentStock = item.CurrentStock.Add(qty)
	return nil
}

func (l *fakeLedger) Decrease(itemID string, qty decimal.Decimal) error {
	item, ok := l.s.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	if item.CurrentStock.LessThan(qty) {
		return domain.ErrInsufficientStock
	}
	item.CurrentStock = item.CurrentStock.Sub(qty)
	return nil
}

func (l *fakeLedger) Overwrite(itemID string, qty decimal.Decimal) error {
	item, ok := l.s.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	item.CurrentStock = qty
	return nil
}

type fakeReceiptRepo struct{ s *fakeStore }

func (r *fakeReceiptRepo) Create(receipt *entity.Receipt) error {
	c := *receipt
	r.s.receipts = append(r.s.receipts, &c)
	return nil
}

func (r *fakeReceiptRepo) List(limit, offset int) ([]*entity.Receipt, error) {
	return append([]*entity.Receipt(nil), r.s.receipts...), nil
}

func (r *fakeReceiptRepo) CountSince(since time.Time) (int, error) {
	n := 0
	for _, rec := range r.s.receipts {
		if !rec.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

type fakeBatchRepo struct{ s *fakeStore }

func (r *fakeBatchRepo) Create(batch *entity.Batch) error {
	c := *batch
	r.s.batches = append(r.s.batches, &c)
	return nil
}

func (r *fakeBatchRepo) ListByItem(itemID string) ([]entity.Batch, error) {
	var out []entity.Batch
	for _, b := range r.s.batches {
		if b.ItemID == itemID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBatchRepo) ListAll() ([]entity.Batch, error) {
	out := make([]entity.Batch, 0, len(r.s.batches))
	for _, b := range r.s.batches {
		out = append(out, *b)
	}
	return out, nil
}

type fakeCycleRepo struct{ s *fakeStore }

func (r *fakeCycleRepo) Create(cycle *entity.InventoryCycle) error {
	c := *cycle
	r.s.cycles[cycle.ID] = &c
	return nil
}

func (r *fakeCycleRepo) GetByID(id string) (*entity.InventoryCycle, error) {
	cycle, ok := r.s.cycles[id]
	if !ok {
		return nil, nil
	}
	c := *cycle
	return &c, nil
}

func (r *fakeCycleRepo) List(limit, offset int) ([]*entity.InventoryCycle, error) {
	var out []*entity.InventoryCycle
	for _, cy := range r.s.cycles {
		c := *cy
		out = append(out, &c)
	}
	return out, nil
}

func (r *fakeCycleRepo) Update(cycle *entity.InventoryCycle) error {
	if _, ok := r.s.cycles[cycle.ID]; !ok {
		return fmt.Errorf("ciclo inexistente: %s", cycle.ID)
	}
	c := *cycle
	r.s.cycles[cycle.ID] = &c
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures
// ──────────────────────────────────────────────────────────────────────────────

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedItem(store *fakeStore, id, code string, stock string) *entity.Item {
	item := &entity.Item{
		ID:           id,
		Code:         code,
		Description:  "Item " + code,
		Unit:         "UN",
		CurrentStock: d(stock),
		Active:       true,
	}
	store.items[id] = item
	return item
}

func seedRequisition(store *fakeStore, id string, status entity.Status, items ...entity.RequisitionItem) *entity.Requisition {
	req := &entity.Requisition{
		ID:            id,
		Number:        "0001/2026",
		Year:          2026,
		Sector:        "Manutenção",
		RequesterID:   "user-req",
		RequesterName: "Requisitante",
		Date:          time.Now(),
		Priority:      entity.PriorityMedia,
		Status:        status,
		Items:         items,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	store.reqs[id] = req
	return req
}

func reqLine(itemID, requested, fulfilled, returned string) entity.RequisitionItem {
	return entity.RequisitionItem{
		ItemID:       itemID,
		Description:  "Item " + itemID,
		Unit:         "UN",
		RequestedQty: d(requested),
		FulfilledQty: d(fulfilled),
		ReturnedQty:  d(returned),
	}
}

var (
	almoxarife = almox.Actor{ID: "user-almox", Name: "Almoxarife", Role: entity.RoleAlmoxarife}
	aprovador  = almox.Actor{ID: "user-aprov", Name: "Aprovador", Role: entity.RoleAprovador}
	requisitor = almox.Actor{ID: "user-req", Name: "Requisitante", Role: entity.RoleRequisitante}
)
