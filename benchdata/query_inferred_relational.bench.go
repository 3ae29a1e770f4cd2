//go:build ignore

// Query evaluation, schema-inferring relational-query-API style: joins are
// expressed as nested relationship declarations. Each Include nests the
// result type one level deeper, so the checker instantiates a new Loaded
// shape per relation.
package northwind_relational

type Table[T any] struct {
	name string
}

func NewTable[T any](name string) Table[T] {
	return Table[T]{name: name}
}

type Rel[P, C any] struct {
	name string
}

func HasMany[P, C any](name string) Rel[P, C] {
	return Rel[P, C]{name: name}
}

func BelongsTo[C, P any](name string) Rel[C, P] {
	return Rel[C, P]{name: name}
}

type Loaded[P, C any] struct {
	Parent   P
	Children []C
}

type QuerySet[T any] struct {
	table string
	rels  []string
}

func Query[T any](t Table[T]) QuerySet[T] {
	return QuerySet[T]{table: t.name}
}

func Include[P, C any](q QuerySet[P], rel Rel[P, C]) QuerySet[Loaded[P, C]] {
	return QuerySet[Loaded[P, C]]{table: q.table, rels: append(q.rels, rel.name)}
}

func (q QuerySet[T]) Take(n int) QuerySet[T] {
	return q
}

type CustomerRow struct {
	ID      string
	Company string
	Country string
}

type OrderRow struct {
	ID         int64
	CustomerID string
	OrderDate  int64
}

type OrderDetailRow struct {
	OrderID   int64
	ProductID int64
	Quantity  int16
}

type ProductRow struct {
	ID         int64
	Name       string
	SupplierID int64
}

type SupplierRow struct {
	ID      int64
	Company string
	Country string
}

var (
	Customers    = NewTable[CustomerRow]("customers")
	Orders       = NewTable[OrderRow]("orders")
	OrderDetails = NewTable[OrderDetailRow]("order_details")
	Products     = NewTable[ProductRow]("products")
	Suppliers    = NewTable[SupplierRow]("suppliers")

	OrderCustomer   = BelongsTo[OrderRow, CustomerRow]("customer")
	OrderLines      = HasMany[OrderRow, OrderDetailRow]("details")
	DetailProduct   = BelongsTo[OrderDetailRow, ProductRow]("product")
	ProductSupplier = BelongsTo[ProductRow, SupplierRow]("supplier")
	CustomerOrders  = HasMany[CustomerRow, OrderRow]("orders")
)

var ordersWithCustomer = Include(Query(Orders), OrderCustomer).Take(50)

var ordersWithLines = Include(
	Include(Query(Orders), OrderCustomer),
	HasMany[Loaded[OrderRow, CustomerRow], OrderDetailRow]("details"),
)

var customersDeep = Include(
	Include(Query(Customers), CustomerOrders),
	HasMany[Loaded[CustomerRow, OrderRow], OrderDetailRow]("details"),
).Take(20)
