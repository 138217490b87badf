package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"bge-backend/internal/models"

	"github.com/jackc/pgx/v5"
)

// In-memory stores backing the workflow tests. They return pgx.ErrNoRows
// for missing ids, same as the real repositories.

type memCustomers struct {
	nextID int
	byID   map[int]*models.Customer
}

func newMemCustomers() *memCustomers {
	return &memCustomers{byID: make(map[int]*models.Customer)}
}

func (m *memCustomers) Create(ctx context.Context, c *models.Customer) error {
	m.nextID++
	c.ID = m.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	m.byID[c.ID] = &cp
	return nil
}

func (m *memCustomers) Get(ctx context.Context, id int) (*models.Customer, error) {
	c, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *c
	return &cp, nil
}

func (m *memCustomers) List(ctx context.Context) ([]*models.Customer, error) {
	var out []*models.Customer
	for _, c := range m.byID {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memCustomers) Update(ctx context.Context, c *models.Customer) error {
	stored, ok := m.byID[c.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Name = c.Name
	stored.Phone = c.Phone
	stored.Email = c.Email
	stored.Address = c.Address
	stored.OldBalance = c.OldBalance
	return nil
}

func (m *memCustomers) UpdateBalance(ctx context.Context, id int, totalDebt, wallet float64) error {
	c, ok := m.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	c.TotalDebt = totalDebt
	c.Wallet = wallet
	return nil
}

func (m *memCustomers) Delete(ctx context.Context, id int) error {
	delete(m.byID, id)
	return nil
}

type memOrders struct {
	nextID int
	byID   map[int]*models.Order
}

func newMemOrders() *memOrders {
	return &memOrders{byID: make(map[int]*models.Order)}
}

func (m *memOrders) Create(ctx context.Context, o *models.Order) error {
	m.nextID++
	o.ID = m.nextID
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	cp := *o
	m.byID[o.ID] = &cp
	return nil
}

func (m *memOrders) Get(ctx context.Context, id int) (*models.Order, error) {
	o, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *o
	return &cp, nil
}

func (m *memOrders) List(ctx context.Context) ([]*models.OrderWithCustomer, error) {
	var out []*models.OrderWithCustomer
	for _, o := range m.byID {
		out = append(out, &models.OrderWithCustomer{Order: *o})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memOrders) ListByCustomer(ctx context.Context, customerID int) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range m.byID {
		if o.CustomerID == customerID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memOrders) ReplaceItems(ctx context.Context, o *models.Order) error {
	stored, ok := m.byID[o.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Items = o.Items
	stored.TotalAmount = o.TotalAmount
	return nil
}

func (m *memOrders) SetWalletUsed(ctx context.Context, id int, amount float64) error {
	o, ok := m.byID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	o.WalletUsed = amount
	return nil
}

func (m *memOrders) Delete(ctx context.Context, id int) error {
	delete(m.byID, id)
	return nil
}

func (m *memOrders) MaxNumber(ctx context.Context) (int, error) {
	max := 0
	for _, o := range m.byID {
		if n := parseSeq(o.OrderNumber); n > max {
			max = n
		}
	}
	return max, nil
}

func (m *memOrders) NumberExists(ctx context.Context, number string) (bool, error) {
	for _, o := range m.byID {
		if o.OrderNumber == number {
			return true, nil
		}
	}
	return false, nil
}

type memReturns struct {
	nextID int
	byID   map[int]*models.Return
}

func newMemReturns() *memReturns {
	return &memReturns{byID: make(map[int]*models.Return)}
}

func (m *memReturns) Create(ctx context.Context, ret *models.Return) error {
	m.nextID++
	ret.ID = m.nextID
	ret.CreatedAt = time.Now()
	ret.UpdatedAt = ret.CreatedAt
	cp := *ret
	m.byID[ret.ID] = &cp
	return nil
}

func (m *memReturns) Get(ctx context.Context, id int) (*models.Return, error) {
	ret, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *ret
	return &cp, nil
}

func (m *memReturns) ListByCustomer(ctx context.Context, customerID int) ([]*models.Return, error) {
	var out []*models.Return
	for _, ret := range m.byID {
		if ret.CustomerID == customerID {
			cp := *ret
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memReturns) ReplaceItems(ctx context.Context, ret *models.Return) error {
	stored, ok := m.byID[ret.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Items = ret.Items
	stored.TotalAmount = ret.TotalAmount
	stored.Reason = ret.Reason
	return nil
}

func (m *memReturns) Delete(ctx context.Context, id int) error {
	delete(m.byID, id)
	return nil
}

func (m *memReturns) MaxNumber(ctx context.Context) (int, error) {
	max := 0
	for _, ret := range m.byID {
		if n := parseSeq(ret.ReturnNumber); n > max {
			max = n
		}
	}
	return max, nil
}

func (m *memReturns) NumberExists(ctx context.Context, number string) (bool, error) {
	for _, ret := range m.byID {
		if ret.ReturnNumber == number {
			return true, nil
		}
	}
	return false, nil
}

type memPayments struct {
	nextID int
	byID   map[int]*models.Payment
}

func newMemPayments() *memPayments {
	return &memPayments{byID: make(map[int]*models.Payment)}
}

func (m *memPayments) Create(ctx context.Context, p *models.Payment) error {
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memPayments) Get(ctx context.Context, id int) (*models.Payment, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

func (m *memPayments) ListByCustomer(ctx context.Context, customerID int) ([]*models.Payment, error) {
	var out []*models.Payment
	for _, p := range m.byID {
		if p.CustomerID == customerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memPayments) Update(ctx context.Context, p *models.Payment) error {
	stored, ok := m.byID[p.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Amount = p.Amount
	stored.Note = p.Note
	return nil
}

func (m *memPayments) Delete(ctx context.Context, id int) error {
	delete(m.byID, id)
	return nil
}

func (m *memPayments) DeleteByCustomer(ctx context.Context, customerID int) error {
	for id, p := range m.byID {
		if p.CustomerID == customerID {
			delete(m.byID, id)
		}
	}
	return nil
}

type memProducts struct {
	nextID  int
	eventID int
	byID    map[int]*models.Product
	events  []*models.StockEvent
}

func newMemProducts() *memProducts {
	return &memProducts{byID: make(map[int]*models.Product)}
}

func (m *memProducts) Create(ctx context.Context, p *models.Product) error {
	m.nextID++
	p.ID = m.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProducts) Get(ctx context.Context, id int) (*models.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) GetByName(ctx context.Context, name string) (*models.Product, error) {
	for _, p := range m.byID {
		if strings.EqualFold(p.Name, name) {
			cp := *p
			return &cp, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *memProducts) List(ctx context.Context, search string, activeOnly bool) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range m.byID {
		if activeOnly && !p.IsActive {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memProducts) ListLowStock(ctx context.Context) ([]*models.Product, error) {
	var out []*models.Product
	for _, p := range m.byID {
		if p.IsActive && p.CurrentStock <= p.LowStockThreshold {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProducts) Update(ctx context.Context, p *models.Product) error {
	stored, ok := m.byID[p.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	cp := *p
	cp.CurrentStock = stored.CurrentStock
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProducts) Delete(ctx context.Context, id int) error {
	delete(m.byID, id)
	return nil
}

func (m *memProducts) UsedInOrders(ctx context.Context, id int) (bool, error) {
	for _, ev := range m.events {
		if ev.ProductID == id && ev.OrderID != nil {
			return true, nil
		}
	}
	return false, nil
}

func (m *memProducts) ApplyEvent(ctx context.Context, ev *models.StockEvent) error {
	p, ok := m.byID[ev.ProductID]
	if !ok {
		return pgx.ErrNoRows
	}
	m.eventID++
	ev.ID = m.eventID
	ev.CreatedAt = time.Now()
	cp := *ev
	m.events = append(m.events, &cp)
	p.CurrentStock = ev.NewStock
	return nil
}

func (m *memProducts) History(ctx context.Context, productID int) ([]*models.StockEvent, error) {
	var out []*models.StockEvent
	for _, ev := range m.events {
		if ev.ProductID == productID {
			cp := *ev
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProducts) EventsByOrder(ctx context.Context, orderID int) ([]*models.StockEvent, error) {
	var out []*models.StockEvent
	for _, ev := range m.events {
		if ev.OrderID != nil && *ev.OrderID == orderID {
			cp := *ev
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memProducts) EventsByReturn(ctx context.Context, returnID int) ([]*models.StockEvent, error) {
	var out []*models.StockEvent
	for _, ev := range m.events {
		if ev.ReturnID != nil && *ev.ReturnID == returnID {
			cp := *ev
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memExpenses struct {
	nextID int
	byID   map[int]*models.Expense
}

func newMemExpenses() *memExpenses {
	return &memExpenses{byID: make(map[int]*models.Expense)}
}

func (m *memExpenses) Create(ctx context.Context, e *models.Expense) error {
	m.nextID++
	e.ID = m.nextID
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt
	cp := *e
	m.byID[e.ID] = &cp
	return nil
}

func (m *memExpenses) Get(ctx context.Context, id int) (*models.Expense, error) {
	e, ok := m.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *e
	return &cp, nil
}

func (m *memExpenses) matches(e *models.Expense, f models.ExpenseFilter) bool {
	if f.StartDate != nil && e.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && e.Date.After(*f.EndDate) {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(e.Description), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func (m *memExpenses) List(ctx context.Context, f models.ExpenseFilter) ([]*models.Expense, error) {
	var out []*models.Expense
	for _, e := range m.byID {
		if m.matches(e, f) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memExpenses) Summary(ctx context.Context, f models.ExpenseFilter) (*models.ExpenseSummary, error) {
	var s models.ExpenseSummary
	for _, e := range m.byID {
		if m.matches(e, f) {
			s.TotalAmount += e.Amount
			s.TotalVAT += e.VATAmount
			s.Count++
		}
	}
	return &s, nil
}

func (m *memExpenses) Update(ctx context.Context, e *models.Expense) error {
	if _, ok := m.byID[e.ID]; !ok {
		return pgx.ErrNoRows
	}
	cp := *e
	m.byID[e.ID] = &cp
	return nil
}

func (m *memExpenses) Delete(ctx context.Context, id int) error {
	delete(m.byID, id)
	return nil
}

func parseSeq(number string) int {
	_, seq, found := strings.Cut(number, "-")
	if !found {
		return 0
	}
	n, err := strconv.Atoi(seq)
	if err != nil {
		return 0
	}
	return n
}

// fixture wires the fakes and the services under test together
type fixture struct {
	customers *memCustomers
	orders    *memOrders
	returns   *memReturns
	payments  *memPayments
	products  *memProducts
	expenses  *memExpenses

	customerSvc *CustomerService
	orderSvc    *OrderService
	returnSvc   *ReturnService
	paymentSvc  *PaymentService
	productSvc  *ProductService
	expenseSvc  *ExpenseService
}

func newFixture() *fixture {
	f := &fixture{
		customers: newMemCustomers(),
		orders:    newMemOrders(),
		returns:   newMemReturns(),
		payments:  newMemPayments(),
		products:  newMemProducts(),
		expenses:  newMemExpenses(),
	}
	f.customerSvc = NewCustomerService(f.customers, f.orders, f.returns, f.payments, f.products)
	f.orderSvc = NewOrderService(f.orders, f.customers, f.returns, f.payments, f.products)
	f.returnSvc = NewReturnService(f.returns, f.orders, f.customers, f.payments, f.products)
	f.paymentSvc = NewPaymentService(f.payments, f.customers, f.orders, f.returns)
	f.productSvc = NewProductService(f.products)
	f.expenseSvc = NewExpenseService(f.expenses)
	return f
}
